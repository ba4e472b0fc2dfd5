package project

import "github.com/BruksfildServices01/crm-api/internal/httperr"

// ===============================
// Project Status
// ===============================

type Status int

const (
	StatusTodo       Status = 1
	StatusInProgress Status = 2
	StatusCompleted  Status = 3
)

var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	return s >= StatusTodo && s <= StatusCompleted
}

// StatusText never fails; out-of-range values read as "Unknown".
func StatusText(s int) string {
	switch Status(s) {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ValidateStatus guards persistence against values outside the enumeration.
func ValidateStatus(s int) error {
	if !Status(s).Valid() {
		return httperr.ValidationFields("validation_failed", "The given data was invalid.",
			map[string][]string{"status": {"The selected status is invalid."}})
	}
	return nil
}
