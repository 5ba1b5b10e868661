package holdem

import "testing"

func TestCombGen(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	gen, d := NewCombinGen(s, 3)
	count := 0
	for gen.Next() {
		count++
		if len(d) != 3 {
			t.Fatalf("destination length = %d, want 3", len(d))
		}
	}
	if count != 10 { // C(5,3)
		t.Fatalf("got %d combinations, want 10", count)
	}
}

func TestCombinUnusedGen(t *testing.T) {
	s := []int{1, 2, 3, 4}
	gen, d := NewCombinUnusedGen(s, 2)
	count := 0
	for gen.Next() {
		count++
		if len(d) != 4 {
			t.Fatalf("destination length = %d, want 4", len(d))
		}
	}
	if count != 6 { // C(4,2)
		t.Fatalf("got %d combinations, want 6", count)
	}
}

func TestComb(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{5, 3, 10},
		{48, 5, 1712304},
		{52, 2, 1326},
		{7, 5, 21},
	}
	for _, c := range cases {
		if got := Comb(c.n, c.k); got != c.want {
			t.Fatalf("Comb(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestIxGenAtMatchesSequentialWalk(t *testing.T) {
	n, k := 8, 3
	gen := newIxGen(n, k)
	rank := 0
	for {
		v, ok := gen.Next()
		if !ok {
			break
		}
		want := ixGenAt(n, k, rank)
		for i := range v {
			if v[i] != want[i] {
				t.Fatalf("rank %d: got %v, want %v", rank, v, want)
			}
		}
		rank++
	}
	if rank != Comb(n, k) {
		t.Fatalf("walked %d combinations, want %d", rank, Comb(n, k))
	}
}
