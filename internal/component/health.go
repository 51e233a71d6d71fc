package component

// Health tracks current and maximum hit points.
type Health struct {
	Current, Max int
}

// Heal restores up to n points without exceeding Max and returns the amount
// actually restored.
func (h *Health) Heal(n int) int {
	before := h.Current
	h.Current += n
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// Hurt subtracts n points. Current may go negative.
func (h *Health) Hurt(n int) {
	h.Current -= n
}

// Grow raises both Max and Current by n.
func (h *Health) Grow(n int) {
	h.Max += n
	h.Current += n
}

// Dead reports whether Current has dropped to zero or below.
func (h Health) Dead() bool { return h.Current <= 0 }
