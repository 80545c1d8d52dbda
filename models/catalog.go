package models

// Catalog entities back the static dashboards (courses, quizzes, materials).
// They are read-only seed data and are not persisted by the engagement store.

// Course is a self-paced learning track shown on the dashboard.
type Course struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Progress     int    `json:"progress"`
	Modules      int    `json:"modules"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Quiz is a knowledge check attached to a course.
type Quiz struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Questions   int    `json:"questions"`
	Completed   bool   `json:"completed"`
}

// Material is a downloadable resource (worksheet, template, guide).
type Material struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileType    string `json:"fileType"`
	DownloadURL string `json:"downloadUrl"`
	Downloads   int    `json:"downloads"`
}
