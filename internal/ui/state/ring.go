package state

// Ring is a rotating window over a fixed backing list of rows. Rotating the
// window gives wrap-around scrolling without copying or reallocating the
// backing rows.
type Ring struct {
	rows []string
	idx  int
}

// NewRing constructs a Ring over the provided rows with the window at the
// logical start.
func NewRing(rows []string) *Ring {
	return &Ring{rows: rows}
}

// Len returns the size of the backing list.
func (r *Ring) Len() int {
	return len(r.rows)
}

// Offset returns the current rotation offset in [0, Len).
func (r *Ring) Offset() int {
	return r.idx
}

// View returns the k logical elements starting at the rotation offset,
// wrapping around the backing list. Elements repeat when k exceeds the
// backing size; an empty ring yields an empty view for any k.
func (r *Ring) View(k int) []string {
	if len(r.rows) == 0 || k <= 0 {
		return nil
	}
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, r.rows[(r.idx+i)%len(r.rows)])
	}
	return out
}

// Shift rotates the logical start by steps, which may be negative. A shift
// on an empty ring is a no-op.
func (r *Ring) Shift(steps int) {
	n := len(r.rows)
	if n == 0 {
		return
	}
	r.idx = ((r.idx+steps)%n + n) % n
}
