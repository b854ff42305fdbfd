package models

import "fmt"

// CourseStatus is an availability label derived from stock.
type CourseStatus string

const (
	StatusActive  CourseStatus = "Active"
	StatusLimited CourseStatus = "Limited"
	StatusFull    CourseStatus = "Full"
)

// LimitedStockThreshold is the largest stock still reported as Limited.
const LimitedStockThreshold = 50

// StatusFromStock maps a seat count to its status: Full when nothing is
// left, Limited up to LimitedStockThreshold seats, Active above it.
// Negative counts are treated as empty.
func StatusFromStock(stock int) CourseStatus {
	switch {
	case stock > LimitedStockThreshold:
		return StatusActive
	case stock > 0:
		return StatusLimited
	default:
		return StatusFull
	}
}

// Course is a catalog entry as shown in lists.
type Course struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Price       float64      `json:"price"`
	Rating      float64      `json:"rating"`
	Status      CourseStatus `json:"status"`
	Image       string       `json:"image"`
}

func (c Course) String() string {
	return fmt.Sprintf("#%d %s [%s] $%.2f ★%.1f %s", c.ID, c.Title, c.Category, c.Price, c.Rating, c.Status)
}

// CourseDetail extends Course with the fields only the detail endpoint serves.
type CourseDetail struct {
	Course
	Images []string `json:"images"`
	Stock  int      `json:"stock"`
	Brand  string   `json:"brand"`
}
