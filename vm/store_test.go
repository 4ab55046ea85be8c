package vm

import "testing"

func TestNewStoreRejectsUndersize(t *testing.T) {
	if _, err := newStore(minStoreSize - 1); err == nil {
		t.Errorf("newStore(%d) = nil error, wanted error", minStoreSize-1)
	}
}

func TestStoreReadWrite(t *testing.T) {
	s, err := newStore(minStoreSize)
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}

	cases := []struct {
		idx int64
		val int64
	}{
		{0, 42},
		{int64(minStoreSize - 1), -7},
		{5, Marker},
	}

	for _, tc := range cases {
		if err := s.write(tc.idx, tc.val); err != nil {
			t.Errorf("write(%d, %d): %v", tc.idx, tc.val, err)
			continue
		}
		got, err := s.read(tc.idx)
		if err != nil {
			t.Errorf("read(%d): %v", tc.idx, err)
			continue
		}
		if got != tc.val {
			t.Errorf("read(%d) = %d, want %d", tc.idx, got, tc.val)
		}
	}
}

func TestStoreOutOfBounds(t *testing.T) {
	s, err := newStore(minStoreSize)
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}

	for _, idx := range []int64{-1, int64(minStoreSize), int64(minStoreSize) + 100} {
		if _, err := s.read(idx); err == nil {
			t.Errorf("read(%d) = nil error, wanted overflow", idx)
		}
		if err := s.write(idx, 1); err == nil {
			t.Errorf("write(%d) = nil error, wanted overflow", idx)
		}
	}
}
