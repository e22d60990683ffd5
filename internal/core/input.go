package core

// Command represents one logical input command, abstracted from physical key
// presses. The platform layer decodes at most one Command per simulation tick;
// ticks with no pending input carry CmdNone.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdShiftUp
	CmdShiftDown
	CmdShiftLeft
	CmdShiftRight
	CmdPickup
	CmdAction
	CmdToggleHelp
	CmdClear
	CmdQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdShiftUp:
		return "ShiftUp"
	case CmdShiftDown:
		return "ShiftDown"
	case CmdShiftLeft:
		return "ShiftLeft"
	case CmdShiftRight:
		return "ShiftRight"
	case CmdPickup:
		return "Pickup"
	case CmdAction:
		return "Action"
	case CmdToggleHelp:
		return "ToggleHelp"
	case CmdClear:
		return "Clear"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the command is one of the eight directional
// variants.
func (c Command) IsMovement() bool {
	switch c {
	case CmdUp, CmdDown, CmdLeft, CmdRight,
		CmdShiftUp, CmdShiftDown, CmdShiftLeft, CmdShiftRight:
		return true
	}
	return false
}

// Impulse returns the movement impulse for the command as column/row deltas.
// Horizontal motion covers two columns per step because terminal cells are
// roughly twice as tall as they are wide; shift variants double the stride.
func (c Command) Impulse() (dx, dy int) {
	switch c {
	case CmdLeft:
		return -2, 0
	case CmdRight:
		return 2, 0
	case CmdUp:
		return 0, -1
	case CmdDown:
		return 0, 1
	case CmdShiftLeft:
		return -4, 0
	case CmdShiftRight:
		return 4, 0
	case CmdShiftUp:
		return 0, -2
	case CmdShiftDown:
		return 0, 2
	}
	return 0, 0
}

// TickInput is the immutable per-tick input to the simulation: the monotonic
// elapsed time since startup in milliseconds, and the single logical command
// sampled for this tick.
type TickInput struct {
	Now     int64
	Command Command
}
