package models

import "time"

// Post lifecycle event types published to the message broker.
const (
	EventPostCreated = "post.created"
	EventPostDeleted = "post.deleted"
)

// PostEvent is the message body published when a post is created or deleted.
// Consumers (notification senders, feed caches) only need the identifying
// fields, not the full record.
type PostEvent struct {
	Type       string    `json:"type"`
	PostID     uint      `json:"post_id"`
	UserID     uint      `json:"user_id"`
	Judul      string    `json:"judul"`
	Kategori   string    `json:"kategori"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
