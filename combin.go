package holdem

// BinGen is an index-based stateful k-subset generator. It advances through
// all k-subsets of a slice in lexicographic order by index, writing each
// combination into a fixed destination slice rather than allocating a new
// slice per call, so it is safe to call from the equity enumeration hot
// path (C(48,5) = 1,712,304 boards) without per-iteration garbage.
type BinGen[T any] struct {
	s []T
	i int
	n int
	k int
	v []int
	f func()
	d []T
}

// newBinGen creates an uninitialized generator; f must be set before use.
func newBinGen[T any](s []T, k int) *BinGen[T] {
	i, n, l := -1, len(s), k
	if 0 <= n && 0 <= k && k <= n {
		if n/2 < k {
			l = n - k
		}
		i = 1
		for j := 1; j <= l; j++ {
			i = (n - l + j) * i / j
		}
	}
	return &BinGen[T]{s: s, i: i, n: n, k: k, f: func() {}}
}

// NewCombinGen creates a generator over the k-subsets of s. Returns the
// generator and the destination slice that [BinGen.Next] fills on each call.
func NewCombinGen[T any](s []T, k int) (*BinGen[T], []T) {
	g := newBinGen(s, k)
	d := make([]T, k)
	g.f, g.d = g.cpy, d
	return g, d
}

// NewCombinUnusedGen creates a generator over the k-subsets of s, additionally
// writing the len(s)-k unused elements after the k chosen ones. Returns the
// generator and the full destination slice (length len(s)).
func NewCombinUnusedGen[T any](s []T, k int) (*BinGen[T], []T) {
	g := newBinGen(s, k)
	d := make([]T, len(s))
	g.f, g.d = g.unused, d
	return g, d
}

// Next advances to the next combination, writing it to the destination
// slice returned alongside the generator. Returns false once exhausted.
func (g *BinGen[T]) Next() bool {
	switch {
	case g.i <= 0:
		g.i = -1
		return false
	case g.v == nil:
		g.v = make([]int, g.k)
		for i := 0; i < g.k; i++ {
			g.v[i] = i
		}
	default:
		for i := g.k - 1; 0 <= i; i-- {
			if g.v[i] == g.n+i-g.k {
				continue
			}
			g.v[i]++
			for j := i + 1; j < g.k; j++ {
				g.v[j] = g.v[i] + j - i
			}
			break
		}
	}
	g.i--
	g.f()
	return true
}

// Remaining returns the number of combinations not yet produced (including
// the one about to be produced by the next call to Next), or -1 if the
// generator parameters were invalid.
func (g *BinGen[T]) Remaining() int {
	return g.i
}

// cpy copies the current index selection into d.
func (g *BinGen[T]) cpy() {
	for i := 0; i < g.k; i++ {
		g.d[i] = g.s[g.v[i]]
	}
}

// unused copies the current index selection into d, followed by the
// elements of s not selected, preserving their relative order.
func (g *BinGen[T]) unused() {
	m := make([]bool, g.n)
	for i := 0; i < g.k; i++ {
		m[g.v[i]] = true
		g.d[i] = g.s[g.v[i]]
	}
	k := g.k
	for i := 0; i < g.n; i++ {
		if !m[i] {
			g.d[k] = g.s[i]
			k++
		}
	}
}

// Comb returns the binomial coefficient C(n,k), used for sizing
// preallocated result slices (e.g. the 1,712,304 boards of C(48,5)).
func Comb(n, k int) int {
	if k < 0 || n < k {
		return 0
	}
	if n-k < k {
		k = n - k
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}

// ixGen is a zero-allocation generator over k-subsets of the integer range
// [0,n), used internally where the equity engine needs plain indices rather
// than a destination T slice (e.g. to partition work across workers without
// touching the card slice itself).
type ixGen struct {
	n, k int
	v    []int
	i    int
	done bool
}

// newIxGen creates a combination-index generator for k-subsets of [0,n).
func newIxGen(n, k int) *ixGen {
	return &ixGen{n: n, k: k}
}

// Next advances the generator, returning the current index selection (owned
// by the generator; copy if retaining across calls) and whether one exists.
func (g *ixGen) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if g.v == nil {
		if g.k > g.n {
			g.done = true
			return nil, false
		}
		g.v = make([]int, g.k)
		for i := range g.v {
			g.v[i] = i
		}
		return g.v, true
	}
	i := g.k - 1
	for i >= 0 && g.v[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return nil, false
	}
	g.v[i]++
	for j := i + 1; j < g.k; j++ {
		g.v[j] = g.v[j-1] + 1
	}
	return g.v, true
}

// ixGenAt returns the index vector of the k-subset of [0,n) at position rank
// (zero-based) in lexicographic order, used to seek a worker's start offset
// by deriving the index vector from its rank instead of calling Next
// repeatedly.
func ixGenAt(n, k, rank int) []int {
	v := make([]int, k)
	a, b, x := n, k, rank
	for i := 0; i < k; i++ {
		a--
		for {
			c := Comb(a, b-1)
			if x < c {
				break
			}
			x -= c
			a--
		}
		v[i] = n - 1 - a
		b--
	}
	return v
}
