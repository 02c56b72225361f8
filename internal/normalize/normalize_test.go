package normalize_test

import (
	"testing"

	"github.com/momentics/segbuf/internal/normalize"
)

func TestLength(t *testing.T) {
	cases := []struct {
		requested, floor, want int
	}{
		{-5, 64, 64},
		{0, 64, 64},
		{63, 64, 64},
		{64, 64, 64},
		{100, 64, 100},
	}
	for _, c := range cases {
		if got := normalize.Length(c.requested, c.floor); got != c.want {
			t.Errorf("Length(%d, %d) = %d, want %d", c.requested, c.floor, got, c.want)
		}
	}
}

func TestCeilPow2(t *testing.T) {
	cases := []struct{ in, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{1023, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, c := range cases {
		if got := normalize.CeilPow2(c.in); got != c.want {
			t.Errorf("CeilPow2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClasses(t *testing.T) {
	got := normalize.Classes([]int{512, 128, 128, 0, -4, 256})
	want := []int{128, 256, 512}
	if len(got) != len(want) {
		t.Fatalf("Classes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Classes = %v, want %v", got, want)
		}
	}
	if normalize.Classes(nil) != nil {
		t.Error("nil table must normalize to nil")
	}
	if normalize.Classes([]int{0, -1}) != nil {
		t.Error("all-junk table must normalize to nil")
	}
}
