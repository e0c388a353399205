package shape

import "fmt"

// Kind is the variant tag of a shape.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindArc
	KindQuadraticBezier
	KindCubicBezier
	KindRectangle
	KindEllipse
	KindPath
	KindText
	KindImage
	KindGroup
)

// Kinds lists every shape kind in declaration order.
var Kinds = []Kind{
	KindPoint, KindLine, KindArc, KindQuadraticBezier, KindCubicBezier,
	KindRectangle, KindEllipse, KindPath, KindText, KindImage, KindGroup,
}

var kindNames = [...]string{
	KindPoint:           "point",
	KindLine:            "line",
	KindArc:             "arc",
	KindQuadraticBezier: "quad",
	KindCubicBezier:     "cubic",
	KindRectangle:       "rect",
	KindEllipse:         "ellipse",
	KindPath:            "path",
	KindText:            "text",
	KindImage:           "image",
	KindGroup:           "group",
}

// String returns the short lowercase kind name. It doubles as the ID
// prefix for shapes of that kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
