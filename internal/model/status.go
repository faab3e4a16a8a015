package model

// TaskStatus represents the status of a search or detail request
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the request is not sent yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusLoading means the request is in flight
	TaskStatusLoading TaskStatus = "Loading"

	// TaskStatusCompleted means the response was received and mapped
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the request failed
	TaskStatusError TaskStatus = "Error"

	// TaskStatusSuperseded means a newer search replaced this one before it finished
	TaskStatusSuperseded TaskStatus = "Superseded"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusLoading
}

// IsFinished returns true if the task is in a finished state (completed, error, or superseded)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError || ts == TaskStatusSuperseded
}
