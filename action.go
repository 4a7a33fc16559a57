package pidsuspend

// Action is what one invocation does to its target process.
type Action uint8

const (
	ActionSuspend Action = iota + 1
	ActionResume
	ActionCheck
)

func (a Action) String() string {
	switch a {
	case ActionSuspend:
		return "suspend"
	case ActionResume:
		return "resume"
	case ActionCheck:
		return "check"
	default:
		return "unknown"
	}
}

// State is the suspension state inferred by Check.
type State uint8

const (
	Running State = iota
	Suspended
)

func (s State) String() string {
	if s == Suspended {
		return "suspended"
	}
	return "running"
}
