package components

// ToggleState is the state of a checkbox or radio button.
type ToggleState int

const (
	Unchecked ToggleState = iota
	Checked
)

// StateOf converts a bool to a ToggleState.
func StateOf(on bool) ToggleState {
	if on {
		return Checked
	}
	return Unchecked
}

// Glyph is the three-cell marker drawn for the state. Checkboxes and
// radios share the same glyphs.
func (s ToggleState) Glyph() string {
	if s == Checked {
		return "(*)"
	}
	return "( )"
}

// RenderToggle draws the marker followed by label.
func RenderToggle(s ToggleState, label string) string {
	return s.Glyph() + " " + label
}
