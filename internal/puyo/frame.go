package puyo

// Frame tables. The original C++/Rust puyo AI engines derive these from a
// frame-perfect model of controller input latency and animation timings;
// this module reimplements a faithful-enough approximation (the board layer
// is explicitly out of scope for exhaustive optimization per spec.md §1) that
// preserves the documented boundary behaviours in spec.md §8.

// FramesGrounding[i] is the number of frames needed to move the axis puyo
// horizontally by i columns from the start column and ground it, for a
// simple (non-double-rotation) placement. Indices past the end reuse the
// last entry.
var FramesGrounding = []int{6, 14, 22, 30, 38, 46}

// doubleRotationPenalty is the extra frames a rot=2 (180 degree) placement
// costs over the base grounding time for the same horizontal distance,
// because it needs two rotation inputs instead of zero or one.
const doubleRotationPenalty = 8

// chigiriPenalty is the extra frames a chigiri placement costs: the axis and
// child land at different times because they separate on drop.
const chigiriPenalty = 2

// FramesChain[i] is the number of frames the (i+1)-th simultaneous chain
// step (0-indexed) takes to resolve: erase animation plus the fall of
// whatever drops into the gap.
var FramesChain = []int{40, 46, 52, 58, 64, 70, 76, 82, 88, 94, 100, 106, 112, 118, 124, 130, 136, 142, 148, 154}

func frameGrounding(idx int) int {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(FramesGrounding) {
		idx = len(FramesGrounding) - 1
	}
	return FramesGrounding[idx]
}

func frameChain(idx int) int {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(FramesChain) {
		idx = len(FramesChain) - 1
	}
	return FramesChain[idx]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
