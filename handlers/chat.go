package handlers

import (
	"io"
	"net/http"
	"strconv"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/chat"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes message send, history and a live event stream.
type ChatHandler struct {
	chats chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{chats: svc}
}

func (h *ChatHandler) Send(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var input models.ChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg, err := h.chats.Send(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) History(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit", "details": err.Error()})
			return
		}
		limit = parsed
	}

	messages, err := h.chats.History(id, c.Param("conversationId"), limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Stream pushes new messages for one conversation as server-sent
// events until the client disconnects.
func (h *ChatHandler) Stream(c *gin.Context) {
	id, _ := middleware.Identity(c)
	conversationID := c.Param("conversationId")

	// Membership check up front; the feed itself is unauthenticated
	// redis traffic.
	if _, err := h.chats.History(id, conversationID, 1); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	feed, cancel, err := h.chats.Subscribe(c.Request.Context(), conversationID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		msg, ok := <-feed
		if !ok {
			return false
		}
		c.SSEvent("message", msg)
		return true
	})
}
