package core

// Action represents a semantic editor action, abstracted from physical key presses.
// This allows the editor to work with intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // move the keyboard cursor up
	ActionDown              // move the keyboard cursor down
	ActionLeft              // move the keyboard cursor left
	ActionRight             // move the keyboard cursor right
	ActionClick             // Enter/Space - click at the cursor
	ActionRectMode          // R - toggle rectangle mode
	ActionCircleMode        // C - toggle circle mode
	ActionFillMode          // F - toggle fill mode
	ActionGrow              // + - grow circle radius
	ActionShrink            // - - shrink circle radius
	ActionSelect            // 0-4 - select a cell code
	ActionSave              // S - save and exit
	ActionExport            // P - export blueprint and exit
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit without saving
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionClick:
		return "Click"
	case ActionRectMode:
		return "Rectangle"
	case ActionCircleMode:
		return "Circle"
	case ActionFillMode:
		return "Fill"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionSelect:
		return "Select"
	case ActionSave:
		return "Save"
	case ActionExport:
		return "Export"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
