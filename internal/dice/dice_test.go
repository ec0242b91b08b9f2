package dice

import "testing"

func TestRollRange(t *testing.T) {
	r := New(42)
	total := 0
	for i := 0; i < 1000; i++ {
		v := r.Roll()
		if v < 1 || v > 6 {
			t.Fatalf("roll %d: got %d, want within [1, 6]", i, v)
		}
		total += v
	}
	avg := float64(total) / 1000
	if avg < 3.0 || avg > 4.0 {
		t.Errorf("average roll = %v, want near 3.5", avg)
	}
}

func TestSeededStreamsMatch(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		if got, want := a.Roll(), b.Roll(); got != want {
			t.Fatalf("roll %d: streams diverged (%d vs %d)", i, got, want)
		}
	}
	for i := 0; i < 100; i++ {
		if got, want := a.UniformFloat(0, 1), b.UniformFloat(0, 1); got != want {
			t.Fatalf("draw %d: streams diverged (%v vs %v)", i, got, want)
		}
	}
}

func TestMockCycles(t *testing.T) {
	r := NewMock(1, 2, 3)
	want := []int{1, 2, 3, 1, 2, 3, 1}
	for i, w := range want {
		if got := r.Roll(); got != w {
			t.Errorf("roll %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSum(t *testing.T) {
	if got := NewMock(4, 5, 6).Sum(3); got != 15 {
		t.Errorf("Sum(3) = %d, want 15", got)
	}

	r := New(11)
	for i := 0; i < 100; i++ {
		if v := r.Sum(3); v < 3 || v > 18 {
			t.Fatalf("Sum(3) = %d, want within [3, 18]", v)
		}
	}
}

func TestUniformFloat(t *testing.T) {
	r := New(3)
	for i := 0; i < 100; i++ {
		if v := r.UniformFloat(2, 5); v < 2 || v >= 5 {
			t.Fatalf("UniformFloat(2, 5) = %v, want within [2, 5)", v)
		}
	}
	if v := r.UniformFloat(7, 7); v != 7 {
		t.Errorf("UniformFloat(7, 7) = %v, want 7", v)
	}
}

func TestUniformInt(t *testing.T) {
	r := New(3)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := r.UniformInt(10, 12)
		if v < 10 || v > 12 {
			t.Fatalf("UniformInt(10, 12) = %d, want within [10, 12]", v)
		}
		seen[v] = true
	}
	// Both bounds are reachable.
	if !seen[10] || !seen[12] {
		t.Errorf("200 draws never hit both bounds: %v", seen)
	}
}
