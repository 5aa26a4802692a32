package board

// arrayMove returns a new slice with the element at from removed and
// reinserted at to; elements in between shift by one. Out-of-range indices
// return an unchanged copy.
func arrayMove[T any](xs []T, from, to int) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	if from < 0 || from >= len(xs) || to < 0 || to >= len(xs) || from == to {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
