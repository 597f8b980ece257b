package panel

// ScrollState tracks the first visible button in the tool list
type ScrollState struct {
	Offset  int // First visible item index
	Total   int // Total item count
	Visible int // Visible item count
}

// ScrollBy adjusts offset by delta, clamping to valid range
// Returns true if the offset changed, never scrolls with nothing visible
func (s *ScrollState) ScrollBy(delta int) bool {
	if s.Visible == 0 {
		return false
	}
	prev := s.Offset
	s.Offset += delta
	s.Clamp()
	return s.Offset != prev
}

// EnsureVisible adjusts offset to make item at pos visible
// No-op until a visible count is known
func (s *ScrollState) EnsureVisible(pos int) {
	if s.Visible == 0 {
		return
	}
	if pos < s.Offset {
		s.Offset = pos
	} else if pos >= s.Offset+s.Visible {
		s.Offset = pos - s.Visible + 1
	}
	s.Clamp()
}

// SetVisible updates visible count and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = max(visible, 0)
	s.Clamp()
}

// Clamp floors offset at 0 and ceils it at Total-Visible
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
