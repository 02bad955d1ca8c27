package domain

import "time"

// JourneySession records one run of an activity with a child: started when
// the family begins playing, finished with the elapsed time and an optional
// reflection. Open sessions have FinishedAt == nil.
type JourneySession struct {
	SessionID      string     `json:"id" dynamodbav:"session_id"`
	ChildID        string     `json:"child_id" dynamodbav:"child_id"`
	OwnerID        string     `json:"owner_id" dynamodbav:"owner_id"`
	ActivityID     string     `json:"activity_id" dynamodbav:"activity_id"`
	StartedAt      time.Time  `json:"started" dynamodbav:"started_at"`
	FinishedAt     *time.Time `json:"finished,omitempty" dynamodbav:"finished_at"`
	ElapsedSeconds int        `json:"elapsed_seconds" dynamodbav:"elapsed_seconds"`
	Reflection     string     `json:"reflection,omitempty" dynamodbav:"reflection"`
	Rating         int        `json:"rating,omitempty" dynamodbav:"rating"` // 1-5, 0 = unrated
}

type StartSessionRequest struct {
	ChildID    string `json:"child_id" validate:"required"`
	ActivityID string `json:"activity_id" validate:"required"`
}

type FinishSessionRequest struct {
	ElapsedSeconds int    `json:"elapsed_seconds" validate:"gte=0"`
	Reflection     string `json:"reflection"`
	Rating         int    `json:"rating" validate:"gte=0,lte=5"`
}
