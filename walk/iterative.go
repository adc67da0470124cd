package walk

// frame is one level of the explicit search stack: the cell the walk
// occupies at that depth and the next Direction to try from it.
type frame struct {
	idx  int
	next int
}

// countIterative is count with the recursion replaced by an explicit stack.
// The stack is sized once to the remaining depth, so the loop never allocates.
func (w *walker) countIterative(start, step int) uint64 {
	if step == w.target {
		return 1
	}

	stack := make([]frame, 1, w.target-step)
	stack[0] = frame{idx: start}
	var total uint64

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == 0 && w.done != nil && w.interrupted() {
			top.next = len(w.delta)
		}
		if top.next == len(w.delta) {
			// The base frame's cell belongs to the caller.
			if len(stack) > 1 {
				w.cells[top.idx] = false
			}
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.idx + w.delta[top.next]
		top.next++
		if w.cells[next] {
			continue
		}
		if step+len(stack) == w.target {
			total++
			continue
		}
		w.cells[next] = true
		stack = append(stack, frame{idx: next})
	}

	return total
}
