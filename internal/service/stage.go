package service

import "fmt"

// Stage is a state of the hook pipeline.
type Stage int

const (
	StageResolvingVersion Stage = iota
	StageDetectingPlatform
	StageBuildingURL
	StageFetchingBinary
	StageRunningDelegate
	StageTerminated
	StageFailed
)

// String returns the stage name used in log output.
func (s Stage) String() string {
	switch s {
	case StageResolvingVersion:
		return "ResolvingVersion"
	case StageDetectingPlatform:
		return "DetectingPlatform"
	case StageBuildingURL:
		return "BuildingURL"
	case StageFetchingBinary:
		return "FetchingBinary"
	case StageRunningDelegate:
		return "RunningDelegate"
	case StageTerminated:
		return "Terminated"
	case StageFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// StageError records the stage in which the pipeline failed. Its message is
// the underlying error's, so the top level prints the domain error unchanged.
type StageError struct {
	Stage Stage
	Err   error
}

// Error returns the underlying error message.
func (e *StageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
