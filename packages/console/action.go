package console

// region actions //////////////////////////////////////////////////////////////////////////////////////////////////////

// Action is a menu entry of the console.
type Action int

const (
	// ActionInvalid is returned for choices that do not map to a menu entry.
	ActionInvalid Action = iota
	ActionInsert
	ActionRemove
	ActionPrintForwards
	ActionPrintBackwards
	ActionExit
)

var actionNames = []string{"Insert", "Remove", "Print forwards", "Print backwards", "Exit"}

var actions = []Action{ActionInsert, ActionRemove, ActionPrintForwards, ActionPrintBackwards, ActionExit}

// ActionFromChoice maps a 1-based menu number to its Action.
func ActionFromChoice(choice int) Action {
	if choice < 1 || choice > len(actions) {
		return ActionInvalid
	}

	return actions[choice-1]
}

// ActionFromName maps the label of a menu entry to its Action.
func ActionFromName(name string) Action {
	for i, actionName := range actionNames {
		if actionName == name {
			return actions[i]
		}
	}

	return ActionInvalid
}

// String returns the label of the Action.
func (a Action) String() string {
	if a <= ActionInvalid || int(a) > len(actionNames) {
		return "Invalid"
	}

	return actionNames[a-1]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
