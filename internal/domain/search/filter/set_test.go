package filter

import "testing"

func TestSet(t *testing.T) {
	s := NewSet("a", "b", "b")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains("a") || s.Contains("c") {
		t.Error("Contains mismatch")
	}
	if !s.Intersects([]string{"x", "b"}) || s.Intersects([]string{"x"}) || s.Intersects(nil) {
		t.Error("Intersects mismatch")
	}
	if !s.ContainsAll(NewSet("a")) || s.ContainsAll(NewSet("a", "c")) || !s.ContainsAll(nil) {
		t.Error("ContainsAll mismatch")
	}
}

func TestNewStringSet_TrimsAndDropsBlank(t *testing.T) {
	s := NewStringSet(" EF ", "", "  ", "BE")
	if s.Len() != 2 || !s.Contains("EF") || !s.Contains("BE") {
		t.Errorf("NewStringSet = %v", Sorted(s))
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := NewSet("a")
	c := s.Clone()
	c["b"] = struct{}{}
	if s.Contains("b") {
		t.Error("clone shares storage with original")
	}
}

func TestSorted(t *testing.T) {
	got := Sorted(NewSet("104", "33", "90"))
	want := []string{"104", "33", "90"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted = %v, want %v", got, want)
		}
	}
}
