package models

import "slices"

// Course is a catalog record. Values are treated as immutable once fetched.
type Course struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Instructor     string   `json:"instructor"`
	Category       string   `json:"category"`
	Level          string   `json:"level"`
	Price          float64  `json:"price"`
	Rating         float64  `json:"rating"`
	Students       int64    `json:"students"`
	PopularityRank int      `json:"popularity_rank"`
	DurationHours  float64  `json:"duration_hours"`
	Thumbnail      string   `json:"thumbnail,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Clone returns a copy of c that shares no memory with it.
func (c Course) Clone() Course {
	c.Tags = slices.Clone(c.Tags)
	return c
}
