package models

import "time"

// ChatMessage is one message in a conversation between two users.
// Stored on insert and fanned out over the change feed; no delivery
// guarantees beyond that.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	SenderID       string    `bson:"sender_id" json:"senderId"`
	Body           string    `bson:"body" json:"body"`
	SentAt         time.Time `bson:"sent_at" json:"sentAt"`
}

// ChatMessageInput is the send payload.
type ChatMessageInput struct {
	ConversationID string `json:"conversationId" binding:"required"`
	Body           string `json:"body" binding:"required"`
}
