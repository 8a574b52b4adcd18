package filter

// Mode selects what the filter text is matched against.
type Mode int

const (
	ModeName Mode = iota
	ModeID
	ModeLabel
)

// SwitchTo returns target, or ModeName when the mode is already target.
func (m Mode) SwitchTo(target Mode) Mode {
	if m == target {
		return ModeName
	}
	return target
}

func (m Mode) String() string {
	switch m {
	case ModeID:
		return "ID"
	case ModeLabel:
		return "Label"
	default:
		return "Name"
	}
}
