package motion

// Viewport is the currently visible window into the scrolled content, in
// content coordinates: Top is the scroll offset, Height the visible extent.
type Viewport struct {
	Top    float32
	Height float32
}

// Bottom returns the content coordinate of the viewport's lower edge
func (v Viewport) Bottom() float32 {
	return v.Top + v.Height
}

// Span is the vertical extent of an element in content coordinates
type Span struct {
	Top    float32
	Bottom float32
}

// InView reports whether span overlaps the viewport, tolerant by offset: the
// span's top edge must be at or above the viewport bottom minus offset, and
// its bottom edge at or below the viewport top plus offset. Pure function of
// the arguments; callers must recompute spans on every call since layout can
// change between calls.
func InView(s Span, v Viewport, offset float32) bool {
	return s.Top <= v.Bottom()-offset && s.Bottom >= v.Top+offset
}
