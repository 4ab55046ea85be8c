package vm

import "testing"

func TestFindLocatesBuiltinMacro(t *testing.T) {
	cases := []struct {
		name    string
		chars   []int64
		wantTag int64
	}{
		{"DEF", []int64{'D', 'E', 'F'}, -1},
		{"VAL", []int64{'V', 'A', 'L'}, -2},
		{"UPDATE", []int64{'U', 'P', 'D', 'A', 'T', 'E'}, -3},
		{"BIN", []int64{'B', 'I', 'N'}, -4},
		{"DEC", []int64{'D', 'E', 'C'}, -5},
		{"BAR", []int64{'B', 'A', 'R'}, -6},
	}

	for _, tc := range cases {
		m := newTestVM(t, 200)

		// Build a query item in the same [len, name...] shape as a
		// call's name item, len counting itself as the first
		// comparison.
		q := int64(100)
		nameLen := int64(len(tc.chars)) + 1
		if err := m.st.write(q, nameLen); err != nil {
			t.Fatalf("%s: write len: %v", tc.name, err)
		}
		for i, c := range tc.chars {
			if err := m.st.write(q+1+int64(i), c); err != nil {
				t.Fatalf("%s: write char: %v", tc.name, err)
			}
		}

		w, found, err := m.find(q)
		if err != nil {
			t.Fatalf("%s: find: %v", tc.name, err)
		}
		if !found {
			t.Fatalf("%s: find reported not found", tc.name)
		}
		tag, err := m.st.read(w)
		if err != nil {
			t.Fatalf("%s: read tag: %v", tc.name, err)
		}
		if tag != tc.wantTag {
			t.Errorf("%s: tag = %d, want %d", tc.name, tag, tc.wantTag)
		}
	}
}

func TestFindReportsNotFoundForUnknownName(t *testing.T) {
	m := newTestVM(t, 200)

	q := int64(100)
	chars := []int64{'N', 'O', 'P', 'E'}
	if err := m.st.write(q, int64(len(chars))+1); err != nil {
		t.Fatal(err)
	}
	for i, c := range chars {
		if err := m.st.write(q+1+int64(i), c); err != nil {
			t.Fatal(err)
		}
	}

	_, found, err := m.find(q)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found {
		t.Errorf("find reported found for a name never defined")
	}
}
