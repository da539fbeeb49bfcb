package life

// History keeps the hashes of the most recent generations so repeating
// states can be spotted.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History remembering up to depth states.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = 1
	}
	return &History{depth: depth, hashes: make([]string, 0, depth)}
}

// Record appends hash as the newest state, dropping the oldest when full.
func (h *History) Record(hash string) {
	if len(h.hashes) == h.depth {
		copy(h.hashes, h.hashes[1:])
		h.hashes = h.hashes[:h.depth-1]
	}
	h.hashes = append(h.hashes, hash)
}

// Period returns p when hash equals the state recorded p generations ago, or
// 0 when hash matches none of the remembered states.
func (h *History) Period(hash string) int {
	for p := 1; p <= len(h.hashes); p++ {
		if h.hashes[len(h.hashes)-p] == hash {
			return p
		}
	}
	return 0
}

// Reset forgets every recorded state.
func (h *History) Reset() { h.hashes = h.hashes[:0] }
