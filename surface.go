package ggedit

import "image"

// Surface is the capability contract a rendering backend implements.
// Draw nodes issue calls against it; they never see pixels.
//
// Transform calls compose with the current transform and are scoped by
// Save/Restore pairs.
type Surface interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	FillPath(p *Path, fill Paint)
	StrokePath(p *Path, pen Pen)
	FillRect(r Rect, fill Paint)
	StrokeRect(r Rect, pen Pen)
	FillEllipse(r Rect, fill Paint)
	StrokeEllipse(r Rect, pen Pen)

	// DrawText draws s with its baseline-left corner at origin.
	DrawText(s string, origin Point, font Font, fill Paint)

	// DrawImage draws img scaled into dst. A nil img draws nothing.
	DrawImage(img image.Image, dst Rect)
}
