package core

// Mode is the active interaction mode of the board
type Mode uint8

const (
	ModeMapEditing Mode = iota
	ModeUnitPlacement
	ModePathfindingTesting
	modeCount
)

// Next returns the following mode, wrapping around
func (m Mode) Next() Mode { return (m + 1) % modeCount }

// Previous returns the preceding mode, wrapping around
func (m Mode) Previous() Mode { return (m + modeCount - 1) % modeCount }

func (m Mode) String() string {
	switch m {
	case ModeMapEditing:
		return "Map Editing"
	case ModeUnitPlacement:
		return "Unit Placement"
	case ModePathfindingTesting:
		return "Pathfinding Testing"
	}
	return "Unknown"
}

// Info returns the control hint shown for the mode
func (m Mode) Info() string {
	switch m {
	case ModeMapEditing:
		return "L/R click: cycle tile  Ctrl+C: copy map  Ctrl+S: save"
	case ModeUnitPlacement:
		return "L click: place player  R click: place enemy"
	case ModePathfindingTesting:
		return "L click: move or attack"
	}
	return ""
}

// ModeSwitch tracks the current mode and notifies on change
type ModeSwitch struct {
	Current  Mode
	OnChange func(from, to Mode)
}

// Change steps to the next or previous mode. Leaving pathfinding testing is refused
// while busy reports true. It returns whether the mode changed.
func (ms *ModeSwitch) Change(next bool, busy func() bool) bool {
	if ms.Current == ModePathfindingTesting && busy != nil && busy() {
		return false
	}
	from := ms.Current
	if next {
		ms.Current = from.Next()
	} else {
		ms.Current = from.Previous()
	}
	if ms.OnChange != nil {
		ms.OnChange(from, ms.Current)
	}
	return true
}
