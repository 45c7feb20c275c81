package cutter

// IsBalanced tests whether the current source/target/unclaimed/isolated
// weight split admits a bipartition with both blocks ≤ wMax. Four
// short-circuiting parts (spec §4.5):
//
//  1. reject if either settled side already overflows;
//  2. reject if the unclaimed mass alone cannot save either side;
//  3. accept if dumping all isolated mass on one side, combined with either
//     placement of the unclaimed mass, fits both sides;
//  4. otherwise consult the isolated-nodes subset-sum DP for a finer split.
func (cs *CutterState) IsBalanced() bool {
	cs.iso.UpdateDPTable()
	cs.metrics.IncUpdate(cs.metricsAlgo)

	sw, tw := cs.sourceWeight, cs.targetWeight
	isoWeight := cs.iso.TotalWeight()
	total := cs.hg.TotalWeight()
	uw := total - sw - tw - isoWeight

	if sw > cs.wMax || tw > cs.wMax {
		return false
	}
	if sw+uw > cs.wMax && tw+uw > cs.wMax {
		return false
	}

	// Part 3: isolated mass entirely on one side.
	combos := [2]bool{true, false} // unclaimed -> source?
	for _, uwToSource := range combos {
		for _, isoToSource := range combos {
			b0, b1 := sw, tw
			if uwToSource {
				b0 += uw
			} else {
				b1 += uw
			}
			if isoToSource {
				b0 += isoWeight
			} else {
				b1 += isoWeight
			}
			if b0 <= cs.wMax && b1 <= cs.wMax {
				return true
			}
		}
	}

	// Part 4: fine split via the summable ranges.
	for _, r := range cs.iso.Ranges() {
		for _, uwToSource := range combos {
			var a, b int64 = sw, tw
			if uwToSource {
				a += uw
			} else {
				b += uw
			}
			xMax := cs.wMax - a
			xMin := isoWeight - (cs.wMax - b)
			lo, hi := r.From, r.To
			if xMin > lo {
				lo = xMin
			}
			if xMax < hi {
				hi = xMax
			}
			if lo <= hi {
				return true
			}
		}
	}
	return false
}
