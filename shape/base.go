package shape

// Property is a named value attached to a shape.
type Property struct {
	Name  string
	Value string
}

// Base is the record shared by every kind.
type Base struct {
	Name       string
	Style      *Style
	State      State
	IsStroked  bool
	IsFilled   bool
	Properties []*Property

	// Owner is the ID of the shape that holds this one, or empty for
	// shapes that live directly on a layer.
	Owner ID

	id    ID
	dirty bool
}

func newBase(k Kind, style *Style, state State) Base {
	return Base{
		id:         NewID(k.String()),
		Style:      style,
		State:      state,
		Properties: []*Property{},
		dirty:      true,
	}
}

// ID returns the stable identifier assigned at creation.
func (b *Base) ID() ID { return b.id }

// AsBase returns the receiver. Kinds embed Base, which promotes this
// method into the Shape interface.
func (b *Base) AsBase() *Base { return b }

// MarkDirty flags the shape for a geometry rebuild.
func (b *Base) MarkDirty() { b.dirty = true }

// Property returns the property with the given name.
func (b *Base) Property(name string) (*Property, bool) {
	for _, p := range b.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// SetProperty adds or replaces a named property.
func (b *Base) SetProperty(name, value string) {
	if p, ok := b.Property(name); ok {
		p.Value = value
		return
	}
	b.Properties = append(b.Properties, &Property{Name: name, Value: value})
}

func (b *Base) copyBase(k Kind) Base {
	out := *b
	out.id = NewID(k.String())
	out.dirty = true
	out.Properties = make([]*Property, len(b.Properties))
	for i, p := range b.Properties {
		cp := *p
		out.Properties[i] = &cp
	}
	return out
}

func (*Base) isShape() {}
