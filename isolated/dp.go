package isolated

import "sort"

// UpdateDPTable folds every pending (newly isolated) node's weight into the
// subset-sum DP table and clears the pending queue. Safe to call with an
// empty pending queue (no-op).
func (in *Nodes) UpdateDPTable() {
	for _, u := range in.pending {
		in.addWeight(u, in.hg.NodeWeight(u))
		in.runningTotal += in.hg.NodeWeight(u)
	}
	in.pending = in.pending[:0]
}

// addWeight folds a single node's weight w into the DP: for every existing
// summable range [from,to], every new target sum in [from+w, to+w] ∩
// [0,wMax] not yet reachable becomes reachable via witness u, with the
// range list merged accordingly.
func (in *Nodes) addWeight(u nodeID, w int64) {
	if w < 0 || w > in.wMax {
		return // can never participate in any sum within [0, wMax] alone
	}
	snapshot := append([]Range(nil), in.ranges...)
	for _, r := range snapshot {
		lo := r.From + w
		hi := r.To + w
		if hi > in.wMax {
			hi = in.wMax
		}
		if lo > in.wMax {
			continue
		}
		for x := lo; x <= hi; x++ {
			if in.reachable[x] {
				continue
			}
			in.reachable[x] = true
			in.witness[x] = u
			in.mergeInto(x)
		}
	}
}

// mergeInto restores the ordered-range invariant after x becomes reachable,
// handling all four cases: bridging two existing ranges, extending the left
// neighbor's right end, extending the right neighbor's left end, or
// inserting a new singleton range.
func (in *Nodes) mergeInto(x int64) {
	idx := sort.Search(len(in.ranges), func(i int) bool { return in.ranges[i].From > x })

	leftIdx, rightIdx := -1, -1
	if idx-1 >= 0 && in.ranges[idx-1].To == x-1 {
		leftIdx = idx - 1
	}
	if idx < len(in.ranges) && in.ranges[idx].From == x+1 {
		rightIdx = idx
	}

	switch {
	case leftIdx >= 0 && rightIdx >= 0:
		in.ranges[leftIdx].To = in.ranges[rightIdx].To
		in.ranges = append(in.ranges[:rightIdx], in.ranges[rightIdx+1:]...)
	case leftIdx >= 0:
		in.ranges[leftIdx].To = x
	case rightIdx >= 0:
		in.ranges[rightIdx].From = x
	default:
		in.ranges = append(in.ranges, Range{})
		copy(in.ranges[idx+1:], in.ranges[idx:])
		in.ranges[idx] = Range{From: x, To: x}
	}
}

// ExtractSubset walks the witness chain from x down to 0, returning the
// nodes whose weights sum to x. Precondition: Summable(x).
func (in *Nodes) ExtractSubset(x int64) []nodeID {
	var out []nodeID
	for x > 0 {
		u := in.witness[x]
		out = append(out, u)
		x -= in.hg.NodeWeight(u)
	}
	return out
}
