// Package seed holds the demo course catalog used to populate an empty
// course table and to back the in-process mock API.
package seed

import "github.com/dmitrijs2005/codecrafted/internal/client/models"

// Courses returns a fresh copy of the demo catalog, in listing order.
func Courses() []models.Course {
	out := make([]models.Course, len(courses))
	for i, c := range courses {
		c.Tags = append([]string(nil), c.Tags...)
		out[i] = c
	}
	return out
}

var courses = []models.Course{
	{
		ID: "1", Title: "Complete Web Development Bootcamp", Instructor: "Angela Yu",
		Description: "HTML, CSS, JavaScript, Node and React from zero to deployed apps.",
		Category:    "development", Level: "beginner", Price: 89.99, Rating: 4.8,
		Students: 24500, PopularityRank: 1, DurationHours: 62, Thumbnail: "courses/web-bootcamp.jpg",
		Tags: []string{"javascript", "react", "node"},
	},
	{
		ID: "2", Title: "Python for Data Science and Machine Learning", Instructor: "Jose Portilla",
		Description: "NumPy, pandas, matplotlib and scikit-learn through real projects.",
		Category:    "data-science", Level: "intermediate", Price: 94.99, Rating: 4.7,
		Students: 18200, PopularityRank: 2, DurationHours: 25, Thumbnail: "courses/python-ds.jpg",
		Tags: []string{"python", "pandas", "ml"},
	},
	{
		ID: "3", Title: "UI/UX Design Fundamentals", Instructor: "Daniel Scott",
		Description: "Wireframes, prototypes and usability testing in Figma.",
		Category:    "design", Level: "beginner", Price: 59.99, Rating: 4.6,
		Students: 9800, PopularityRank: 6, DurationHours: 14, Thumbnail: "courses/uiux.jpg",
		Tags: []string{"figma", "ux"},
	},
	{
		ID: "4", Title: "Go: Building Concurrent Services", Instructor: "Todd McLeod",
		Description: "Goroutines, channels, context and production-grade gRPC services.",
		Category:    "development", Level: "advanced", Price: 129.99, Rating: 4.9,
		Students: 7600, PopularityRank: 5, DurationHours: 30, Thumbnail: "courses/go-concurrency.jpg",
		Tags: []string{"go", "grpc"},
	},
	{
		ID: "5", Title: "Digital Marketing Masterclass", Instructor: "Phil Ebiner",
		Description: "SEO, social media, email and paid ads for growing a business online.",
		Category:    "marketing", Level: "beginner", Price: 49.99, Rating: 4.4,
		Students: 15300, PopularityRank: 3, DurationHours: 22, Thumbnail: "courses/marketing.jpg",
		Tags: []string{"seo", "ads"},
	},
	{
		ID: "6", Title: "Rust Programming: Zero to Systems", Instructor: "Nathan Stocks",
		Description: "Ownership, lifetimes, traits and async Rust by building a CLI and a server.",
		Category:    "development", Level: "intermediate", Price: 109.99, Rating: 4.7,
		Students: 5200, PopularityRank: 9, DurationHours: 28, Thumbnail: "courses/rust.jpg",
		Tags: []string{"rust", "systems"},
	},
	{
		ID: "7", Title: "Financial Modeling for Startups", Instructor: "Chris Haroun",
		Description: "Build three-statement models, forecasts and investor-ready valuations.",
		Category:    "business", Level: "intermediate", Price: 249.99, Rating: 4.5,
		Students: 4100, PopularityRank: 11, DurationHours: 18, Thumbnail: "courses/finance.jpg",
		Tags: []string{"finance", "excel"},
	},
	{
		ID: "8", Title: "Graphic Design Masterclass", Instructor: "Lindsay Marsh",
		Description: "Typography, colour theory and layout with Photoshop and Illustrator.",
		Category:    "design", Level: "beginner", Price: 0, Rating: 4.3,
		Students: 21000, PopularityRank: 4, DurationHours: 9, Thumbnail: "courses/graphic-design.jpg",
		Tags: []string{"photoshop", "illustrator"},
	},
	{
		ID: "9", Title: "SQL and PostgreSQL for Developers", Instructor: "Stephen Grider",
		Description: "Schema design, indexes, transactions and query tuning.",
		Category:    "development", Level: "intermediate", Price: 74.99, Rating: 4.8,
		Students: 11400, PopularityRank: 7, DurationHours: 22, Thumbnail: "courses/postgres.jpg",
		Tags: []string{"sql", "postgres"},
	},
	{
		ID: "10", Title: "Deep Learning with PyTorch", Instructor: "Daniel Bourke",
		Description: "Tensors, neural networks, computer vision and transfer learning.",
		Category:    "data-science", Level: "advanced", Price: 149.99, Rating: 4.8,
		Students: 8300, PopularityRank: 8, DurationHours: 40, Thumbnail: "courses/pytorch.jpg",
		Tags: []string{"python", "pytorch", "ml"},
	},
	{
		ID: "11", Title: "Leadership and Team Management", Instructor: "Chris Croft",
		Description: "Delegation, feedback, hiring and running effective one-on-ones.",
		Category:    "business", Level: "beginner", Price: 39.99, Rating: 4.2,
		Students: 6200, PopularityRank: 12, DurationHours: 6, Thumbnail: "courses/leadership.jpg",
		Tags: []string{"management"},
	},
	{
		ID: "12", Title: "Content Marketing and Copywriting", Instructor: "Ann Handley",
		Description: "Write landing pages, newsletters and campaigns that convert.",
		Category:    "marketing", Level: "intermediate", Price: 69.99, Rating: 4.5,
		Students: 3900, PopularityRank: 10, DurationHours: 11, Thumbnail: "courses/copywriting.jpg",
		Tags: []string{"copywriting"},
	},
}
