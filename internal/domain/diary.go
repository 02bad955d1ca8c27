package domain

import "time"

// DiaryEntry is one journal note about a child.
type DiaryEntry struct {
	EntryID   string    `json:"id" dynamodbav:"entry_id"`
	ChildID   string    `json:"child_id" dynamodbav:"child_id"`
	OwnerID   string    `json:"owner_id" dynamodbav:"owner_id"`
	Content   string    `json:"content" dynamodbav:"content"`
	Mood      string    `json:"mood,omitempty" dynamodbav:"mood"`
	PhotoKey  string    `json:"photo_key,omitempty" dynamodbav:"photo_key"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateDiaryEntryRequest struct {
	Content  string `json:"content" validate:"required"`
	Mood     string `json:"mood" validate:"omitempty,oneof=happy calm tired fussy curious"`
	PhotoKey string `json:"photo_key"`
}
