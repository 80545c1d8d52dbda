package store

import (
	"time"

	"github.com/bizbudz/bizbudz/models"
)

// Seed is the initial state a store can be constructed with. Production uses
// DemoSeed; tests inject whatever fixture they need.
type Seed struct {
	Users    []models.User
	Sessions []models.Session
	Notes    []models.Note
	Comments []models.Comment
}

// Catalog is the static dashboard content (courses, quizzes, downloadable
// materials). It is read-only and lives outside the engagement store.
type Catalog struct {
	Courses   []models.Course
	Quizzes   []models.Quiz
	Materials []models.Material
}

// DemoSeed returns the stock sessions, notes and comments shipped with the
// platform. Note like counts mirror the demo display data; comment counts
// match the seeded comment rows.
func DemoSeed() *Seed {
	now := time.Now().UTC()
	return &Seed{
		Sessions: []models.Session{
			{
				ID:          "t1",
				Title:       "Marketing Strategy Workshop",
				Description: "Learn to create effective marketing campaigns and understand customer acquisition strategies.",
				Date:        "Monday, Nov 18",
				Time:        "2:00 PM - 3:30 PM",
				ZoomLink:    "#",
				Type:        models.SessionTypeTutoring,
			},
			{
				ID:          "t2",
				Title:       "Financial Planning for Startups",
				Description: "Master the basics of budgeting, forecasting, and managing startup finances.",
				Date:        "Tuesday, Nov 19",
				Time:        "4:00 PM - 5:30 PM",
				ZoomLink:    "#",
				Type:        models.SessionTypeTutoring,
			},
			{
				ID:          "t3",
				Title:       "Pitch Deck Masterclass",
				Description: "Create compelling pitch decks that attract investors and communicate your vision.",
				Date:        "Friday, Nov 22",
				Time:        "1:00 PM - 2:30 PM",
				ZoomLink:    "#",
				Type:        models.SessionTypeTutoring,
			},
			{
				ID:          "t4",
				Title:       "Customer Discovery Workshop",
				Description: "Learn interview techniques and frameworks to validate your business ideas.",
				Date:        "Saturday, Nov 23",
				Time:        "10:00 AM - 12:00 PM",
				ZoomLink:    "#",
				Type:        models.SessionTypeTutoring,
			},
			{
				ID:          "g1",
				Title:       "Downtown Study Hub",
				Description: "Group study opportunity at Central Library",
				Location:    "Central Library - Room 204",
				Address:     "123 Main Street, Downtown",
				Date:        "Weekdays",
				Time:        "3-6 PM",
				Type:        models.SessionTypeGroupStudy,
			},
			{
				ID:          "g2",
				Title:       "Campus Business Center",
				Description: "Group study at Student Union Building",
				Location:    "Student Union Building",
				Address:     "University Campus, Building C",
				Date:        "Mon, Wed, Fri",
				Time:        "5-8 PM",
				Type:        models.SessionTypeGroupStudy,
			},
			{
				ID:          "g3",
				Title:       "Startup Co-working Space",
				Description: "Weekend study sessions",
				Location:    "Innovation Hub",
				Address:     "456 Tech Ave, Suite 300",
				Date:        "Saturdays",
				Time:        "1-5 PM",
				Type:        models.SessionTypeGroupStudy,
			},
		},
		Notes: []models.Note{
			{
				ID:        "n1",
				Title:     "5 Customer Discovery Interview Mistakes to Avoid",
				Content:   "After conducting 50+ customer interviews, here are the biggest mistakes I made and what I learned from them. First, avoid leading questions...",
				Preview:   "After conducting 50+ customer interviews, here are the biggest mistakes I made and what I learned from them...",
				Author:    "Sarah Miller",
				AuthorID:  "u1",
				Hashtags:  models.HashtagList{"#customerdev", "#startups", "#lean"},
				Likes:     42,
				Comments:  2,
				Helpful:   true,
				CreatedAt: now.Add(-2 * time.Hour),
			},
			{
				ID:        "n2",
				Title:     "Growth Hacking Tactics That Got Us to 1000 Users",
				Content:   "We went from 0 to 1000 users in 6 weeks using these specific growth tactics...",
				Preview:   "We went from 0 to 1000 users in 6 weeks using these specific growth tactics. Here's exactly what we did...",
				Author:    "Mike Chang",
				AuthorID:  "u2",
				Hashtags:  models.HashtagList{"#growth", "#marketing", "#saas"},
				Likes:     87,
				Comments:  1,
				Helpful:   true,
				CreatedAt: now.Add(-5 * time.Hour),
			},
			{
				ID:        "n3",
				Title:     "How to Validate Your Business Idea Without Building Anything",
				Content:   "Validation doesn't require code. Here are 7 ways to test demand...",
				Preview:   "Validation doesn't require code. Here are 7 ways to test demand before you build a single feature...",
				Author:    "Emma Torres",
				AuthorID:  "u3",
				Hashtags:  models.HashtagList{"#validation", "#mvp", "#entrepreneurship"},
				Helpful:   false,
				CreatedAt: now.Add(-24 * time.Hour),
			},
		},
		Comments: []models.Comment{
			{
				ID:        "c1",
				NoteID:    "n1",
				UserID:    "u10",
				Author:    "Alex Johnson",
				Content:   "Great insights! The part about leading questions really resonated.",
				CreatedAt: now.Add(-time.Hour),
			},
			{
				ID:        "c2",
				NoteID:    "n1",
				UserID:    "u11",
				Author:    "Jordan Lee",
				Content:   "This helped me prepare for my interviews next week. Thanks!",
				CreatedAt: now.Add(-30 * time.Minute),
			},
			{
				ID:        "c3",
				NoteID:    "n2",
				UserID:    "u12",
				Author:    "Taylor Brooks",
				Content:   "Which tactic worked best for you?",
				CreatedAt: now.Add(-2 * time.Hour),
			},
		},
	}
}

// DefaultCatalog returns the stock course/quiz/material dashboards.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Courses: []models.Course{
			{ID: "c1", Title: "Business Fundamentals", Description: "Master the core concepts of business strategy, finance, and operations.", Category: "Business", Modules: 10, Progress: 60},
			{ID: "c2", Title: "Marketing & Sales Mastery", Description: "Learn digital marketing, content creation, and sales techniques that work.", Category: "Marketing", Modules: 12, Progress: 35},
			{ID: "c3", Title: "Entrepreneurship 101", Description: "From idea validation to product-market fit and scaling your startup.", Category: "Entrepreneurship", Modules: 8, Progress: 80},
		},
		Quizzes: []models.Quiz{
			{ID: "q1", CourseID: "c1", Title: "Business Strategy Fundamentals", Questions: 15, Completed: true},
			{ID: "q2", CourseID: "c2", Title: "Intro to Marketing", Questions: 20, Completed: true},
			{ID: "q3", CourseID: "c2", Title: "Digital Marketing Channels", Questions: 18, Completed: false},
			{ID: "q4", CourseID: "c3", Title: "Startup Validation", Questions: 12, Completed: false},
		},
		Materials: []models.Material{
			{ID: "m1", Title: "Business Plan Template", Description: "Comprehensive template with examples from successful startups.", FileType: "PDF", DownloadURL: "/static/materials/business-plan-template.pdf", Downloads: 3420},
			{ID: "m2", Title: "Marketing Funnel Cheat Sheet", Description: "Visual guide to building effective marketing funnels.", FileType: "PDF", DownloadURL: "/static/materials/marketing-funnel-cheatsheet.pdf", Downloads: 2156},
			{ID: "m3", Title: "Financial Model Spreadsheet", Description: "Pre-built financial model with instructions and formulas.", FileType: "XLSX", DownloadURL: "/static/materials/financial-model.xlsx", Downloads: 1892},
			{ID: "m4", Title: "Pitch Deck Examples", Description: "Collection of successful pitch decks from funded startups.", FileType: "PPT", DownloadURL: "/static/materials/pitch-deck-examples.ppt", Downloads: 4521},
		},
	}
}
