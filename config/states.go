package config

// StateID identifies an animation state of an animated entity.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Flap
	Dead
)

// Animator parameter names fired by gameplay code.
const (
	ParamFlap   = "Flap"
	ParamIsDead = "Is Dead"
)

// RunState is the coordinator's top-level phase.
type RunState int

const (
	NotStarted RunState = iota
	Running
	GameOverState
)

func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOverState:
		return "game_over"
	}
	return "unknown"
}
