package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	chatRepo "bluerobins/database/repository/chat"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotParticipant = utils.NewServiceError("notParticipant", "You are not part of this conversation")

// ChatService stores messages and fans them out over a per-conversation
// redis channel. Persistence is the source of truth; the live feed is
// best effort.
type ChatService interface {
	Send(ctx context.Context, id models.Identity, input models.ChatMessageInput) (*models.ChatMessage, error)
	History(id models.Identity, conversationID string, limit int64) ([]models.ChatMessage, error)
	Subscribe(ctx context.Context, conversationID string) (<-chan models.ChatMessage, func(), error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Repo  chatRepo.ChatRepository
	Redis *redis.Client
}

func channelFor(conversationID string) string {
	return "chat:" + conversationID
}

// conversationID encodes its two participants as "a:b" with the lower
// id first, so membership is checked without a lookup.
func isParticipant(userID, conversationID string) bool {
	for i := 0; i+1 < len(conversationID); i++ {
		if conversationID[i] != ':' {
			continue
		}
		if conversationID[:i] == userID || conversationID[i+1:] == userID {
			return true
		}
	}
	return false
}

// Send stores the message, then publishes it to the conversation
// channel. A publish failure is logged; the stored message is still
// returned.
func (s *DefaultChatService) Send(ctx context.Context, id models.Identity, input models.ChatMessageInput) (*models.ChatMessage, error) {
	logger := utils.GetLogger()

	if !isParticipant(id.UserID, input.ConversationID) {
		return nil, ErrNotParticipant
	}

	msg := models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: input.ConversationID,
		SenderID:       id.UserID,
		Body:           input.Body,
		SentAt:         time.Now(),
	}
	if err := s.Repo.Insert(&msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if s.Redis != nil {
		payload, _ := json.Marshal(msg)
		if err := s.Redis.Publish(ctx, channelFor(msg.ConversationID), payload).Err(); err != nil {
			logger.Warn("failed to publish chat message",
				zap.String("conversationID", msg.ConversationID), zap.Error(err))
		}
	}
	return &msg, nil
}

func (s *DefaultChatService) History(id models.Identity, conversationID string, limit int64) ([]models.ChatMessage, error) {
	if !isParticipant(id.UserID, conversationID) {
		return nil, ErrNotParticipant
	}
	return s.Repo.ListByConversation(conversationID, limit)
}

// Subscribe returns a channel of live messages for one conversation
// and a cancel function that tears the subscription down. The channel
// closes when the context ends or cancel is called.
func (s *DefaultChatService) Subscribe(ctx context.Context, conversationID string) (<-chan models.ChatMessage, func(), error) {
	if s.Redis == nil {
		return nil, nil, fmt.Errorf("live chat requires redis")
	}
	logger := utils.GetLogger()

	sub := s.Redis.Subscribe(ctx, channelFor(conversationID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to conversation %s: %w", conversationID, err)
	}

	out := make(chan models.ChatMessage)
	go func() {
		defer close(out)
		for raw := range sub.Channel() {
			var msg models.ChatMessage
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				logger.Warn("dropping malformed chat payload", zap.Error(err))
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel, nil
}
