// Package queue provides the low-level collections shared by every flow
// algorithm in package flowalgo (spec §4.3, component C3):
//
//   - LayeredQueue: a FIFO that also tracks "the layer currently being
//     filled" for BFS, so a caller can drain one layer, call
//     FinishNextLayer, and know CurrentLayerEmpty refers to the next layer.
//   - FixedCapacityStack: a DFS frame stack bounded by the node count n,
//     with O(1) PopDownTo for backtracking to a bottleneck frame.
//   - BufferedVector: a concurrent append-only collector with per-goroutine
//     local buffers, used by ParallelPushRelabel to gather per-round active
//     node lists without contending on a single slice append.
package queue
