package reminder

import "fmt"

// NotFoundError reports a lookup or delete that matched nothing. UserID is
// set only for owner-scoped operations; Error() renders the exact message
// clients of the old API expect.
type NotFoundError struct {
	ID     string
	UserID string
}

func (e *NotFoundError) Error() string {
	if e.UserID != "" {
		return fmt.Sprintf("Reminder with ID %s and userId %s not found", e.ID, e.UserID)
	}
	return fmt.Sprintf("Reminder with ID %s not found", e.ID)
}

// BatchFailedError reports a batch in which not a single record could be
// persisted. Errors holds one message per failed record, in input order.
type BatchFailedError struct {
	Errors []string
}

func (e *BatchFailedError) Error() string {
	return "No valid reminders found"
}
