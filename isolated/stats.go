package isolated

import "gonum.org/v1/gonum/stat"

// WeightStats summarizes the weight distribution of nodes currently folded
// into the subset-sum DP: mean and variance over their individual weights.
// Diagnostic only — never read by UpdateDPTable, Summable, or
// ExtractSubset, so computing it never touches the hot piercing-loop path.
type WeightStats struct {
	Count    int
	Mean     float64
	Variance float64
}

// Stats computes WeightStats over the current isolated set's node weights.
// Returns the zero value if no node is isolated yet.
func (in *Nodes) Stats() WeightStats {
	var weights []float64
	for i := 0; i < len(in.isIsolated); i++ {
		if in.isIsolated[i] {
			weights = append(weights, float64(in.hg.NodeWeight(nodeID(i))))
		}
	}
	if len(weights) == 0 {
		return WeightStats{}
	}
	mean, variance := stat.MeanVariance(weights, nil)
	return WeightStats{Count: len(weights), Mean: mean, Variance: variance}
}
