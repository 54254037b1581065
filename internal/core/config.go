package core

// RuntimeConfig contains settings handed to a simulation when it is reset.
// The platform fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (0 = scenario default)
	Seed     int64 // RNG seed for the turn chooser (0 = time based)
}

// Status is the lifecycle of a simulation run.
type Status string

const (
	StatusRunning Status = "running"
	StatusArrived Status = "arrived"
	StatusStalled Status = "stalled"
	StatusAborted Status = "aborted"
)

// Finished reports whether the run has ended.
func (s Status) Finished() bool {
	return s != StatusRunning && s != ""
}

// SimState represents the current state of a simulation.
// Returned by Scenario.State() to communicate status to the platform.
type SimState struct {
	Status  Status
	Updates int  // Turtle updates performed
	Moving  bool // Turtle has not reached its destination
	Paused  bool
}

// StepResult is returned by Scenario.Step() after each frame.
type StepResult struct {
	State   SimState
	Updated bool // A turtle update ran during this frame
}
