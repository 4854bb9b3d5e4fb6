package shutdown

const (
	// PriorityConsole is the shutdown priority of the interactive console.
	PriorityConsole = iota
)
