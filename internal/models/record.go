package models

// SlideRecord is the persisted form of one successful analysis. Records are
// never mutated or deleted after creation. The id is the creation time in
// unix milliseconds; collisions inside one millisecond are tolerated under
// the expected single-operator load.
type SlideRecord struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	FileName  string      `json:"fileName"`
	Data      SlideResult `json:"data"`
}

// LogEntry is one persisted activity event. Details is free-form.
type LogEntry struct {
	Timestamp string      `json:"timestamp"`
	Action    string      `json:"action"`
	Details   interface{} `json:"details"`
}

type LogRequest struct {
	Action  string      `json:"action"`
	Details interface{} `json:"details"`
}

type LogResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
