package domain

import (
	"strings"
	"time"
)

// Comment is a categorized note attached to a project.
// Fields are ordered to minimize memory padding.
type Comment struct {
	CreatedAt time.Time `yaml:"created_at"`
	Message   string    `yaml:"message"`
	Category  Category  `yaml:"category"`
	Author    string    `yaml:"author"`
	Tags      []string  `yaml:"tags,omitempty"`
	ID        int       `yaml:"id"`
}

// CommentList is the comments.yaml document.
type CommentList struct {
	NextID   int       `yaml:"next_id"`
	Comments []Comment `yaml:"comments"`
}

// CommentFilter narrows a listing. Zero values match everything.
type CommentFilter struct {
	Category Category
	Tag      string
	Limit    int // Keep only the last Limit entries when > 0
}

// Normalize repairs the id counter so it is greater than every stored id.
func (l *CommentList) Normalize() {
	ids := make([]int, len(l.Comments))
	for i, c := range l.Comments {
		ids[i] = c.ID
	}
	l.NextID = repairNextID(l.NextID, ids)
}

// Add assigns the next id to c, appends it and advances the counter.
func (l *CommentList) Add(c Comment) Comment {
	l.Normalize()
	c.ID = l.NextID
	c.Tags = NormalizeTags(c.Tags)
	l.Comments = append(l.Comments, c)
	l.NextID++
	return c
}

// Find returns a pointer to the comment with id.
func (l *CommentList) Find(id int) (*Comment, error) {
	for i := range l.Comments {
		if l.Comments[i].ID == id {
			return &l.Comments[i], nil
		}
	}
	return nil, ErrCommentNotFound
}

// Remove deletes the comment with id.
func (l *CommentList) Remove(id int) (Comment, error) {
	for i, c := range l.Comments {
		if c.ID == id {
			l.Comments = append(l.Comments[:i], l.Comments[i+1:]...)
			return c, nil
		}
	}
	return Comment{}, ErrCommentNotFound
}

// Filter returns matching comments in list order.
func (l *CommentList) Filter(f CommentFilter) []Comment {
	var out []Comment
	for _, c := range l.Comments {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Tag != "" && !HasTag(c.Tags, f.Tag) {
			continue
		}
		out = append(out, c)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out
}

// Search returns comments whose message, author or tags contain query (case-insensitive).
func (l *CommentList) Search(query string) []Comment {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Comment
	for _, c := range l.Comments {
		if containsFold(q, c.Message, c.Author) || containsFold(q, c.Tags...) {
			out = append(out, c)
		}
	}
	return out
}
