package ucb

import "github.com/RoaringBitmap/roaring/v2"

// armSet tracks which arm indices (positions in [0, Round.NumArms), not
// the arms' domain meaning) are still in play during a UCB elimination
// loop. Backed by a Roaring Bitmap, the same structure vecgo's
// metadata.LocalBitmap uses for dense small-integer ID sets, because arm
// indices are exactly that: a dense range [0, NumArms) with up to
// k*n members (SWAP) that shrinks monotonically as the loop prunes losers.
type armSet struct {
	rb *roaring.Bitmap
}

func newArmSet(n int) *armSet {
	rb := roaring.New()
	for i := 0; i < n; i++ {
		rb.Add(uint32(i))
	}
	return &armSet{rb: rb}
}

func (s *armSet) remove(i int) {
	s.rb.Remove(uint32(i))
}

func (s *armSet) len() int {
	return int(s.rb.GetCardinality())
}

// each calls fn for every active arm index, in ascending order.
func (s *armSet) each(fn func(i int)) {
	it := s.rb.Iterator()
	for it.HasNext() {
		fn(int(it.Next()))
	}
}

// slice returns the active arm indices as a plain slice, for batch
// dispatch onto the worker pool.
func (s *armSet) slice() []int {
	out := make([]int, 0, s.len())
	s.each(func(i int) { out = append(out, i) })
	return out
}
