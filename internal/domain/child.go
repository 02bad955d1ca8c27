package domain

import "time"

// Child is one child profile, owned by the account that created it.
type Child struct {
	ChildID   string     `json:"id" dynamodbav:"child_id"`
	OwnerID   string     `json:"owner_id" dynamodbav:"owner_id"`
	Name      string     `json:"name" dynamodbav:"name"`
	Birthdate time.Time  `json:"birthdate" dynamodbav:"birthdate"`
	AvatarKey string     `json:"avatar_key,omitempty" dynamodbav:"avatar_key"`
	Enable    int        `json:"enable" dynamodbav:"enable"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated" dynamodbav:"updated_at"`
}

// AgeInMonths returns the child's age in whole months at the given time.
func (c *Child) AgeInMonths(now time.Time) int {
	months := (now.Year()-c.Birthdate.Year())*12 + int(now.Month()) - int(c.Birthdate.Month())
	if now.Day() < c.Birthdate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

type CreateChildRequest struct {
	Name      string `json:"name" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required"` // expected format: YYYY-MM-DD
	AvatarKey string `json:"avatar_key"`
}

type UpdateChildRequest struct {
	Name      *string `json:"name"`
	Birthdate *string `json:"birthdate"` // expected format: YYYY-MM-DD
	AvatarKey *string `json:"avatar_key"`
}
