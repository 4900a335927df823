package tile

// Rect is a pixel rectangle, X2 and Y2 exclusive.
type Rect struct {
	X1 int `json:"x1" yaml:"x1"`
	Y1 int `json:"y1" yaml:"y1"`
	X2 int `json:"x2" yaml:"x2"`
	Y2 int `json:"y2" yaml:"y2"`
}

// Size returns the width and height of r.
func (r Rect) Size() (width, height int) {
	return r.X2 - r.X1, r.Y2 - r.Y1
}

// Contains reports whether inner lies entirely within r.
func (r Rect) Contains(inner Rect) bool {
	return inner.X1 >= r.X1 && inner.Y1 >= r.Y1 && inner.X2 <= r.X2 && inner.Y2 <= r.Y2
}

// Region is a crop window.
type Region struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Extract returns the window of inner relative to r.
func (r Rect) Extract(inner Rect) Region {
	w, h := inner.Size()
	return Region{
		Left:   inner.X1 - r.X1,
		Top:    inner.Y1 - r.Y1,
		Width:  w,
		Height: h,
	}
}
