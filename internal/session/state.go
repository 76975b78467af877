package session

// State is a position in the session loop.
type State int

// Session states.
const (
	AwaitingCommand State = iota
	AwaitingOperand1
	AwaitingOperand2
	ComputingAndPrinting
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingCommand:
		return "awaiting command"
	case AwaitingOperand1:
		return "awaiting operand 1"
	case AwaitingOperand2:
		return "awaiting operand 2"
	case ComputingAndPrinting:
		return "computing"
	case Terminated:
		return "terminated"
	}

	return "unknown"
}
