package todo

// Action is the closed set of state transitions Reduce understands. The
// store validates and normalizes input before building an action, so every
// variant carries ready-to-apply values.
type Action interface {
	isAction()
}

type AddAction struct {
	ID   string
	Text string
}

type ToggleAction struct {
	ID string
}

type RemoveAction struct {
	ID string
}

type EditAction struct {
	ID   string
	Text string
}

type ClearCompletedAction struct{}

type LoadAction struct {
	Items []Item
}

func (AddAction) isAction()            {}
func (ToggleAction) isAction()         {}
func (RemoveAction) isAction()         {}
func (EditAction) isAction()           {}
func (ClearCompletedAction) isAction() {}
func (LoadAction) isAction()           {}
