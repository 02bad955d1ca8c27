package domain

import "time"

// Subscriber is one newsletter signup from the landing page.
type Subscriber struct {
	SubscriberID string    `json:"id" dynamodbav:"subscriber_id"`
	Email        string    `json:"email" dynamodbav:"email"`
	Source       string    `json:"source,omitempty" dynamodbav:"source"` // e.g. "landing", "blog"
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}

type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}
