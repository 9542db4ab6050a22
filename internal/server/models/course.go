package models

// Course is a catalog record. ThumbnailKey is an object-storage key that is
// turned into a URL when the course is served.
type Course struct {
	ID             string
	Title          string
	Description    string
	Instructor     string
	Category       string
	Level          string
	Price          float64
	Rating         float64
	Students       int64
	PopularityRank int
	DurationHours  float64
	ThumbnailKey   string
	Tags           []string
}
