package domain

import "time"

// TodoState is the closed set of lifecycle states a todo moves through.
type TodoState string

const (
	StateDraft TodoState = "draft"
	StateTodo  TodoState = "todo"
	StateDoing TodoState = "doing"
	StateDone  TodoState = "done"
	StateTrash TodoState = "trash"
)

// Valid reports whether s is one of the known states.
func (s TodoState) Valid() bool {
	switch s {
	case StateDraft, StateTodo, StateDoing, StateDone, StateTrash:
		return true
	}
	return false
}

type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	State       TodoState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
