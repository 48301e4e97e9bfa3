package entities

import "time"

// SchoolType values recognized by the directory.
const (
	SchoolTypePublic  = "public"
	SchoolTypePrivate = "private"
	SchoolTypeCharter = "charter"
)

// School represents a school in the directory
type School struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Address      Address   `json:"address" db:"-"`
	Phone        string    `json:"phone" db:"phone"`
	Website      string    `json:"website" db:"website"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	SchoolType   string    `json:"school_type" db:"school_type"`
	GradeLevels  string    `json:"grade_levels" db:"grade_levels"`
	Ratings      Ratings   `json:"ratings" db:"-"`
	TotalReviews int       `json:"total_reviews" db:"total_reviews"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Address represents a physical address
type Address struct {
	Street  string `json:"street" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zip_code" db:"zip_code"`
}

// Ratings holds the six rating dimensions, each a 0-5 decimal. A dimension
// absent at the source is always carried as 0, never as a null.
type Ratings struct {
	Overall          float64 `json:"overall" db:"overall_rating"`
	Academics        float64 `json:"academics" db:"academics_rating"`
	Facilities       float64 `json:"facilities" db:"facilities_rating"`
	Teachers         float64 `json:"teachers" db:"teachers_rating"`
	Safety           float64 `json:"safety" db:"safety_rating"`
	Extracurriculars float64 `json:"extracurriculars" db:"extracurriculars_rating"`
}

// Dimension names one rating dimension.
type Dimension string

const (
	DimensionOverall          Dimension = "overall"
	DimensionAcademics        Dimension = "academics"
	DimensionFacilities       Dimension = "facilities"
	DimensionTeachers         Dimension = "teachers"
	DimensionSafety           Dimension = "safety"
	DimensionExtracurriculars Dimension = "extracurriculars"
)

// Dimensions returns all rating dimensions in display order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionOverall,
		DimensionAcademics,
		DimensionFacilities,
		DimensionTeachers,
		DimensionSafety,
		DimensionExtracurriculars,
	}
}

// Get returns the value of the named dimension, 0 for an unknown name.
func (r Ratings) Get(dim Dimension) float64 {
	switch dim {
	case DimensionOverall:
		return r.Overall
	case DimensionAcademics:
		return r.Academics
	case DimensionFacilities:
		return r.Facilities
	case DimensionTeachers:
		return r.Teachers
	case DimensionSafety:
		return r.Safety
	case DimensionExtracurriculars:
		return r.Extracurriculars
	}
	return 0
}
