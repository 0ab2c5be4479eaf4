package chatRepo

import (
	"bluerobins/models"
)

// ChatRepository defines methods for chat message storage. Delivery is
// the change feed's problem; this is insert-and-list only.
type ChatRepository interface {
	// Insert stores one message.
	Insert(message *models.ChatMessage) error
	// ListByConversation returns a conversation's messages in send order.
	ListByConversation(conversationID string, limit int64) ([]models.ChatMessage, error)
}
