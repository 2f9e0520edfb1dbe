package service

// coverPack is one pack option in a single-family coverage problem
// (shirt-only or sheet-only packs).
type coverPack struct {
	label    string
	capacity int
	price    int64 // cents
}

// singleChoice marks a demand unit covered by one à-la-carte item.
const singleChoice = -1

// coverTable holds, for every demand 0..n, the minimum cost in cents of
// covering at least that demand with packs and à-la-carte items, plus the
// choice made at each demand so the allocation can be reconstructed.
type coverTable struct {
	cost   []int64
	choice []int // index into the pack slice, or singleChoice
}

// buildCoverTable solves the single-family coverage problem for all demands
// 0..n at once: cost[q] is the exact minimum of covering at least q items.
// Any cover of demand q contains a last element, either a single item
// (reducing the demand to q-1) or a pack (reducing it to q-capacity), so the
// recurrence enumerates both and keeps the cheaper.
func buildCoverTable(n int, packs []coverPack, unitPrice int64) coverTable {
	t := coverTable{
		cost:   make([]int64, n+1),
		choice: make([]int, n+1),
	}
	t.choice[0] = singleChoice

	for q := 1; q <= n; q++ {
		best := unitPrice + t.cost[q-1]
		chosen := singleChoice
		for i, p := range packs {
			rest := q - p.capacity
			if rest < 0 {
				rest = 0
			}
			if c := p.price + t.cost[rest]; c < best {
				best = c
				chosen = i
			}
		}
		t.cost[q] = best
		t.choice[q] = chosen
	}
	return t
}

// reconstruct walks the choice trail for demand q and returns per-pack
// purchase counts plus the number of items paid à la carte.
func (t coverTable) reconstruct(q int, packs []coverPack) (counts []int, singles int) {
	counts = make([]int, len(packs))
	for q > 0 {
		ch := t.choice[q]
		if ch == singleChoice {
			singles++
			q--
			continue
		}
		counts[ch]++
		q -= packs[ch].capacity
		if q < 0 {
			q = 0
		}
	}
	return counts, singles
}
