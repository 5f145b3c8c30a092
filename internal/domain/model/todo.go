package model

import "time"

type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in-progress"
	TodoStatusCompleted  TodoStatus = "completed"
)

// TodoStatuses lists the accepted statuses in display order.
var TodoStatuses = []TodoStatus{TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted}

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	}
	return false
}

type Todo struct {
	ID          int64      `json:"id"`
	OwnerUUID   string     `json:"-"` // Never sent to clients
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TodoPatch holds the fields of a partial update; nil means "leave unchanged".
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *TodoStatus
}
