package domain

import "strings"

// TodoStatus represents the state of a TODO item.
type TodoStatus string

const (
	TodoStatusTodo    TodoStatus = "todo"
	TodoStatusDone    TodoStatus = "done"
	TodoStatusBlocked TodoStatus = "blocked"
)

// AllTodoStatuses returns all valid status values.
func AllTodoStatuses() []TodoStatus {
	return []TodoStatus{TodoStatusTodo, TodoStatusDone, TodoStatusBlocked}
}

// IsValid returns true if the status is a known value.
func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusTodo, TodoStatusDone, TodoStatusBlocked:
		return true
	default:
		return false
	}
}

// ParseTodoStatus normalizes and validates a status string.
func ParseTodoStatus(s string) (TodoStatus, error) {
	status := TodoStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Priority represents the urgency of a TODO item.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMed, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities from high (0) to low (2).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMed:
		return 1
	default:
		return 2
	}
}

// ParsePriority normalizes and validates a priority string.
// "medium" is accepted as an alias of "med".
func ParsePriority(s string) (Priority, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "medium" {
		v = string(PriorityMed)
	}
	p := Priority(v)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Category classifies a comment.
type Category string

const (
	CategoryNote    Category = "note"
	CategoryIdea    Category = "idea"
	CategoryBug     Category = "bug"
	CategoryWarning Category = "warning"
	CategoryDone    Category = "done"
	CategoryLog     Category = "log"
)

// AllCategories returns all valid categories.
func AllCategories() []Category {
	return []Category{CategoryNote, CategoryIdea, CategoryBug, CategoryWarning, CategoryDone, CategoryLog}
}

// IsValid returns true if the category is a known value.
func (c Category) IsValid() bool {
	for _, v := range AllCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategory normalizes and validates a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
