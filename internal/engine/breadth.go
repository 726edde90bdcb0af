package engine

// CountBreadth converts a map of percent changes into up/down counts.
// A nil entry (data unavailable) and an exact zero change contribute to
// neither side; the zero-as-uncounted treatment affects breadth totals
// downstream and must stay as-is.
func CountBreadth(changes map[string]*float64) (up, down int) {
	for _, v := range changes {
		if v == nil {
			continue
		}
		switch {
		case *v > 0:
			up++
		case *v < 0:
			down++
		}
	}
	return up, down
}
