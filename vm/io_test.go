package vm

import "testing"

func TestNextChFromInputBuffer(t *testing.T) {
	m := newTestVM(t, 200)
	m.buf.feed("ab")

	ok, err := m.nextCh()
	if err != nil || !ok {
		t.Fatalf("nextCh() = (%v, %v), want (true, nil)", ok, err)
	}
	if m.reg.a != 'a' {
		t.Errorf("A = %q, want %q", rune(m.reg.a), 'a')
	}

	ok, err = m.nextCh()
	if err != nil || !ok {
		t.Fatalf("nextCh() = (%v, %v), want (true, nil)", ok, err)
	}
	if m.reg.a != 'b' {
		t.Errorf("A = %q, want %q", rune(m.reg.a), 'b')
	}

	ok, err = m.nextCh()
	if err != nil {
		t.Fatalf("nextCh() err = %v, want nil", err)
	}
	if ok {
		t.Errorf("nextCh() on empty buffer = true, want false (NoInput)")
	}
}

func TestNextChReplaysFromStore(t *testing.T) {
	m := newTestVM(t, 200)
	if err := m.st.write(50, 'x'); err != nil {
		t.Fatal(err)
	}
	if err := m.st.write(51, 'y'); err != nil {
		t.Fatal(err)
	}
	m.reg.c = 50

	ok, err := m.nextCh()
	if err != nil || !ok || m.reg.a != 'x' {
		t.Fatalf("nextCh() = (A=%v, %v, %v), want ('x', true, nil)", rune(m.reg.a), ok, err)
	}
	if m.reg.c != 51 {
		t.Errorf("C = %d, want 51", m.reg.c)
	}
}

func TestLoadToOutputWhenHZero(t *testing.T) {
	m := newTestVM(t, 200)
	m.reg.a = 'z'

	if err := m.load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := m.End(); got != "z" {
		t.Errorf("End() = %q, want %q", got, "z")
	}
}

func TestLoadToStoreWhenHNonZero(t *testing.T) {
	m := newTestVM(t, 200)
	m.reg.h = 10
	m.reg.s = 60
	m.reg.a = 'q'

	if err := m.load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.reg.s != 61 {
		t.Errorf("S = %d, want 61", m.reg.s)
	}
	got, err := m.st.read(60)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 'q' {
		t.Errorf("ST[60] = %q, want %q", rune(got), 'q')
	}
}
