package domain

import "time"

// Energy levels for activities. The suggestion engine matches these against
// the time of day.
const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"
)

// Activity is one entry in the shared activity library. The library is
// curated content readable by everyone; rows are written by seeding, not by
// end users.
type Activity struct {
	ActivityID   string    `json:"id" dynamodbav:"activity_id"`
	Slug         string    `json:"slug" dynamodbav:"slug"`
	Title        string    `json:"title" dynamodbav:"title"`
	Description  string    `json:"description" dynamodbav:"description"`
	ImageURL     string    `json:"image_url,omitempty" dynamodbav:"image_url"`
	Energy       string    `json:"energy" dynamodbav:"energy"` // "low" | "medium" | "high"
	PrepMinutes  int       `json:"prep_minutes" dynamodbav:"prep_minutes"`
	Category     string    `json:"category" dynamodbav:"category"`
	Benefits     []string  `json:"benefits,omitempty" dynamodbav:"benefits"`
	Materials    []string  `json:"materials,omitempty" dynamodbav:"materials"`
	Steps        []string  `json:"steps,omitempty" dynamodbav:"steps"`
	MinAgeMonths int       `json:"min_age_months" dynamodbav:"min_age_months"`
	MaxAgeMonths int       `json:"max_age_months" dynamodbav:"max_age_months"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}

// SuitableForAge reports whether the activity's age band covers ageMonths.
func (a *Activity) SuitableForAge(ageMonths int) bool {
	return a.MinAgeMonths <= ageMonths && ageMonths <= a.MaxAgeMonths
}

// ActivityFilter narrows library listings. Zero values mean "no constraint".
type ActivityFilter struct {
	Category  string
	Energy    string
	AgeMonths *int
}

// Suggestions is the dashboard suggestion block: one featured activity with a
// time-of-day context label, plus a handful of alternatives.
type Suggestions struct {
	Context  string     `json:"context"`
	Featured Activity   `json:"featured"`
	Others   []Activity `json:"others"`
}
