package menu

// SelectFunc is called when the player picks an option.
type SelectFunc func(m *Menu, o *Option)

// Option is a single menu line. Text and Disabled may be changed at any time;
// call Refresh on the owning menu afterwards.
type Option struct {
	Text     string
	Disabled bool
	SubMenu  *Menu
	OnSelect SelectFunc

	spacer bool
}

// IsSpacer reports whether the option is a blank separator line.
func (o *Option) IsSpacer() bool {
	return o.spacer
}

func (o *Option) selectable() bool {
	return !o.spacer && !o.Disabled
}
