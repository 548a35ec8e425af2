package domain

import (
	"sort"
	"strings"
	"time"
)

// Todo is a lightweight work item stored per project.
// Fields are ordered to minimize memory padding.
type Todo struct {
	CreatedAt   time.Time  `yaml:"created_at"`
	UpdatedAt   time.Time  `yaml:"updated_at"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Status      TodoStatus `yaml:"status"`
	Priority    Priority   `yaml:"priority"`
	Tags        []string   `yaml:"tags,omitempty"`
	ID          int        `yaml:"id"`
}

// TodoList is the todos.yaml document.
type TodoList struct {
	NextID int    `yaml:"next_id"`
	Todos  []Todo `yaml:"todos"`
}

// TodoFilter narrows a listing. Zero values match everything.
type TodoFilter struct {
	Status     TodoStatus
	Priority   Priority
	Tag        string
	IncludeAll bool // Include done items when Status is unset
}

// Normalize repairs the id counter so it is greater than every stored id.
func (l *TodoList) Normalize() {
	ids := make([]int, len(l.Todos))
	for i, t := range l.Todos {
		ids[i] = t.ID
	}
	l.NextID = repairNextID(l.NextID, ids)
}

// Add assigns the next id to t, appends it and advances the counter.
func (l *TodoList) Add(t Todo) Todo {
	l.Normalize()
	t.ID = l.NextID
	t.Tags = NormalizeTags(t.Tags)
	l.Todos = append(l.Todos, t)
	l.NextID++
	return t
}

// Find returns a pointer to the item with id.
func (l *TodoList) Find(id int) (*Todo, error) {
	for i := range l.Todos {
		if l.Todos[i].ID == id {
			return &l.Todos[i], nil
		}
	}
	return nil, ErrTodoNotFound
}

// Remove deletes the item with id. The id counter is left untouched.
func (l *TodoList) Remove(id int) (Todo, error) {
	for i, t := range l.Todos {
		if t.ID == id {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
			return t, nil
		}
	}
	return Todo{}, ErrTodoNotFound
}

// Filter returns matching items in list order.
func (l *TodoList) Filter(f TodoFilter) []Todo {
	var out []Todo
	for _, t := range l.Todos {
		if f.Status != "" {
			if t.Status != f.Status {
				continue
			}
		} else if !f.IncludeAll && t.Status == TodoStatusDone {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Tag != "" && !HasTag(t.Tags, f.Tag) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search returns items whose title, description or tags contain query (case-insensitive).
func (l *TodoList) Search(query string) []Todo {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Todo
	for _, t := range l.Todos {
		if containsFold(q, t.Title, t.Description) || containsFold(q, t.Tags...) {
			out = append(out, t)
		}
	}
	return out
}

// CountOpen returns the number of items not done.
func (l *TodoList) CountOpen() int {
	n := 0
	for _, t := range l.Todos {
		if t.Status != TodoStatusDone {
			n++
		}
	}
	return n
}

// repairNextID returns a counter strictly greater than every id (minimum 1).
func repairNextID(next int, ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	if next <= maxID {
		next = maxID + 1
	}
	if next < 1 {
		next = 1
	}
	return next
}

// NormalizeTags trims, de-duplicates and sorts tags.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// UpdateTags returns tags with add merged in and remove taken out.
func UpdateTags(tags, add, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, r := range remove {
		drop[strings.TrimSpace(r)] = true
	}
	var out []string
	for _, t := range append(append([]string(nil), tags...), add...) {
		if !drop[strings.TrimSpace(t)] {
			out = append(out, t)
		}
	}
	return NormalizeTags(out)
}

// HasTag reports whether tags contains tag.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
