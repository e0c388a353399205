package decorator

// Mode is the gesture a decorator is performing.
type Mode int

const (
	ModeNone Mode = iota
	ModeMove
	ModeRotate
	ModeTop
	ModeBottom
	ModeLeft
	ModeRight
	ModeTopLeft
	ModeTopRight
	ModeBottomLeft
	ModeBottomRight
)

var modeNames = [...]string{
	ModeNone:        "None",
	ModeMove:        "Move",
	ModeRotate:      "Rotate",
	ModeTop:         "Top",
	ModeBottom:      "Bottom",
	ModeLeft:        "Left",
	ModeRight:       "Right",
	ModeTopLeft:     "TopLeft",
	ModeTopRight:    "TopRight",
	ModeBottomLeft:  "BottomLeft",
	ModeBottomRight: "BottomRight",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(?)"
	}
	return modeNames[m]
}
