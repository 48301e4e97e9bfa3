package entities

import "time"

// Review represents a user review of a school. The six rating dimensions are
// required on a review; only the school-level aggregates may be absent.
type Review struct {
	ID             string    `json:"id" db:"id"`
	SchoolID       string    `json:"school_id" db:"school_id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Ratings        Ratings   `json:"ratings" db:"-"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	Pros           string    `json:"pros,omitempty" db:"pros"`
	Cons           string    `json:"cons,omitempty" db:"cons"`
	WouldRecommend bool      `json:"would_recommend" db:"-"`
	GraduationYear *int      `json:"graduation_year,omitempty" db:"graduation_year"`
	Relationship   string    `json:"relationship" db:"relationship"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// RecommendFromInt maps the store's integer-truthy would_recommend column to
// a boolean.
func RecommendFromInt(v int64) bool {
	return v > 0
}

// RecommendToInt is the inverse mapping used on the write path.
func RecommendToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
