package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/server/http/dto"
)

// ChatHandler processes web chat messages.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler creates ChatHandler instance.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	replies, err := h.facade.HandleChat(c.Request.Context(), model.InboundEvent{
		CustomerID:  req.SessionID,
		Text:        req.Message,
		DisplayName: req.Name,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toChatResponse(replies))
}

func toChatResponse(replies []conversation.Reply) dto.ChatResponse {
	out := dto.ChatResponse{Replies: make([]dto.ChatReply, 0, len(replies))}
	var texts []string
	for _, r := range replies {
		reply := dto.ChatReply{Text: r.Text}
		if r.Document != nil {
			reply.Document = &dto.DocumentRef{
				Name:    filepath.Base(r.Document.Path),
				Caption: r.Document.Caption,
			}
		}
		for _, opt := range r.Options {
			reply.Options = append(reply.Options, dto.OptionResponse{Label: opt.Label, Value: opt.Value})
		}
		out.Replies = append(out.Replies, reply)
		if r.Text != "" {
			texts = append(texts, r.Text)
		}
		// The widget shows one set of quick replies, the latest one.
		if len(reply.Options) > 0 {
			out.Options = reply.Options
		}
	}
	out.Response = strings.Join(texts, "\n\n")
	return out
}
