package shape

import "strings"

// State is the shape state bitset.
type State uint32

const (
	StateVisible State = 1 << iota
	StatePrintable
	StateLocked
	// StateSize keeps the shape a constant screen size regardless of zoom.
	StateSize
	// StateThickness keeps the stroke a constant screen width regardless of zoom.
	StateThickness
	StateConnector
	StateNone
	StateStandalone
	StateInput
	StateOutput

	// StateDefault is assigned by the factory to new top-level shapes.
	StateDefault = StateVisible | StatePrintable | StateStandalone

	// StateConnectorRoles are the flags cleared when a connector is
	// released back to a layer.
	StateConnectorRoles = StateConnector | StateNone | StateInput | StateOutput
)

// Has reports whether all bits of f are set.
func (s State) Has(f State) bool { return s&f == f }

func (s State) IsVisible() bool    { return s.Has(StateVisible) }
func (s State) IsPrintable() bool  { return s.Has(StatePrintable) }
func (s State) IsLocked() bool     { return s.Has(StateLocked) }
func (s State) IsStandalone() bool { return s.Has(StateStandalone) }
func (s State) IsConnector() bool  { return s.Has(StateConnector) }
func (s State) IsInput() bool      { return s.Has(StateInput) }
func (s State) IsOutput() bool     { return s.Has(StateOutput) }

// ScalesSize reports whether the shape is drawn at constant screen size.
func (s State) ScalesSize() bool { return s.Has(StateSize) }

// ScalesThickness reports whether the stroke is drawn at constant screen width.
func (s State) ScalesThickness() bool { return s.Has(StateThickness) }

// AsConnector returns s with the connector role r applied. The standalone
// flag and any previous role are cleared, so a connector is never
// standalone.
func (s State) AsConnector(role State) State {
	s &^= StateConnectorRoles | StateStandalone
	return s | StateConnector | role
}

// AsStandalone returns s with connector roles cleared and the standalone
// flag set.
func (s State) AsStandalone() State {
	s &^= StateConnectorRoles
	return s | StateStandalone
}

var stateNames = []struct {
	f    State
	name string
}{
	{StateVisible, "Visible"},
	{StatePrintable, "Printable"},
	{StateLocked, "Locked"},
	{StateSize, "Size"},
	{StateThickness, "Thickness"},
	{StateConnector, "Connector"},
	{StateNone, "None"},
	{StateStandalone, "Standalone"},
	{StateInput, "Input"},
	{StateOutput, "Output"},
}

func (s State) String() string {
	if s == 0 {
		return "Default"
	}
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.f) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
