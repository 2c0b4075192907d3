package insight

import "testing"

func TestRotatorAdvance(t *testing.T) {
	r := New(nil)
	if r.Len() != 4 {
		t.Fatalf("expected 4 default insights, got %d", r.Len())
	}
	if r.Current() != defaultInsights[0] {
		t.Errorf("expected first insight, got %q", r.Current())
	}

	for k := 1; k <= 9; k++ {
		got := r.Advance()
		if got != defaultInsights[k%4] {
			t.Errorf("after %d advances got %q", k, got)
		}
		if r.Index() != k%4 {
			t.Errorf("after %d advances index = %d", k, r.Index())
		}
	}
}

func TestRotatorAt(t *testing.T) {
	r := New([]string{"a", "b", "c"})
	tests := []struct {
		k    int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{3, "a"},
		{7, "b"},
		{-1, "c"},
	}
	for _, tt := range tests {
		if got := r.At(tt.k); got != tt.want {
			t.Errorf("At(%d) = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestRotatorCopiesInput(t *testing.T) {
	items := []string{"x", "y"}
	r := New(items)
	items[0] = "changed"
	if r.Current() != "x" {
		t.Errorf("rotator should not alias its input, got %q", r.Current())
	}

	list := DefaultInsights()
	list[0] = "changed"
	if DefaultInsights()[0] == "changed" {
		t.Error("DefaultInsights should return a copy")
	}
}

func TestRotatorReset(t *testing.T) {
	r := New(nil)
	r.Advance()
	r.Advance()
	r.Reset()
	if r.Index() != 0 {
		t.Errorf("expected index 0 after reset, got %d", r.Index())
	}
}
