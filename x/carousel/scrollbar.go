package carousel

// Scrollbar maps a horizontally scrolling strip onto a draggable thumb.
// Visible and Total are the viewport and content widths, Track is the scrollbar width.
type Scrollbar struct {
	Visible float64
	Total   float64
	Track   float64
}

// Scrollable reports whether the content overflows the viewport
func (s Scrollbar) Scrollable() bool {
	return s.Total > s.Visible && s.Visible > 0 && s.Track > 0
}

// ThumbSize is the track share of the visible/total ratio
func (s Scrollbar) ThumbSize() float64 {
	if !s.Scrollable() {
		return s.Track
	}
	return s.Track * s.Visible / s.Total
}

// MaxOffset is the furthest scroll offset of the content
func (s Scrollbar) MaxOffset() float64 {
	if !s.Scrollable() {
		return 0
	}
	return s.Total - s.Visible
}

// ThumbPosition converts a scroll offset into the thumb position on the track
func (s Scrollbar) ThumbPosition(offset float64) float64 {
	if !s.Scrollable() {
		return 0
	}
	offset = clamp(offset, 0, s.MaxOffset())
	return offset / s.MaxOffset() * (s.Track - s.ThumbSize())
}

// Offset converts a dragged thumb position back into a scroll offset
func (s Scrollbar) Offset(thumbPosition float64) float64 {
	if !s.Scrollable() {
		return 0
	}
	free := s.Track - s.ThumbSize()
	thumbPosition = clamp(thumbPosition, 0, free)
	return thumbPosition / free * s.MaxOffset()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
