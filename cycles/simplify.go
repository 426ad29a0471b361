package cycles

import "github.com/katalvlaran/facewalk/core"

// simplifyWalk removes self-intersections from a closed walk by splicing
// out each repeated-vertex loop as it is found (SPEC_FULL.md §4.7.1 step
// 1): when the walk revisits a vertex already at index idx, every entry
// after idx is a simple sub-loop hanging off it and is dropped, and idx
// is recorded as a detachment point to reconsider for wedge processing.
//
// The returned walk still starts and ends on the same vertex as the
// input; detachments is sorted ascending and never contains a duplicate
// index.
//
// w's final element is expected to equal w[0] (the walk's closure); that
// pairing is never itself treated as a self-intersection — only a
// revisit among the open interior w[0:len(w)-1] triggers a splice.
func simplifyWalk(w []core.VertexHandle) ([]core.VertexHandle, []int) {
	open := w[:len(w)-1]

	seenAt := make(map[core.VertexHandle]int, len(open))
	out := make([]core.VertexHandle, 0, len(open))
	var detachments []int

	for _, v := range open {
		if idx, ok := seenAt[v]; ok {
			for _, dropped := range out[idx+1:] {
				delete(seenAt, dropped)
			}
			out = out[:idx+1]

			kept := detachments[:0]
			for _, d := range detachments {
				if d <= idx {
					kept = append(kept, d)
				}
			}
			detachments = kept
			if len(detachments) == 0 || detachments[len(detachments)-1] != idx {
				detachments = append(detachments, idx)
			}
			continue
		}
		seenAt[v] = len(out)
		out = append(out, v)
	}

	out = append(out, w[0])

	return out, detachments
}
