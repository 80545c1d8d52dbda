package models

import "time"

// PageView aggregates page visits per day and path. It feeds the platform
// statistics endpoint's daily-active figure.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"index:uk_pv_date_path,unique;type:date;not null" json:"date"`
	Path      string    `gorm:"index:uk_pv_date_path,unique;size:255;not null" json:"path"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
