package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Pushkal2407/nutri-llama/logger"
	"github.com/Pushkal2407/nutri-llama/models"
	"github.com/Pushkal2407/nutri-llama/services"
	"github.com/Pushkal2407/nutri-llama/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notRegisteredReply = "You're not registered yet. Ask your care team to set up " +
	"your NutriLlama account, then message me again!"

type WebhookController struct {
	messages *services.MessageService
	users    services.UserFinder
	sender   services.MessageSender
}

func NewWebhookController(
	messages *services.MessageService,
	users services.UserFinder,
	sender services.MessageSender,
) *WebhookController {
	return &WebhookController{messages: messages, users: users, sender: sender}
}

// Receive handles POST /webhook, the Twilio WhatsApp callback
// (form-encoded, Body + From). On pipeline failure the end user gets no
// reply at all; the error only goes to the log and the HTTP response
// Twilio sees.
func (wc *WebhookController) Receive(c *gin.Context) {
	body := c.PostForm("Body")
	from := strings.TrimPrefix(c.PostForm("From"), "whatsapp:")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing From"})
		return
	}

	user, err := wc.users.GetUserByPhone(from)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		if err := wc.sender.Send(from, notRegisteredReply); err != nil {
			logger.Warn("failed to send registration hint", zap.String("to", from))
		}
		c.JSON(http.StatusOK, gin.H{"status": "unregistered"})
		return
	}

	msg := models.InboundMessage{
		Text:      body,
		Timestamp: time.Now().Format(time.RFC3339),
		Sender:    from,
	}

	result, err := wc.messages.ProcessMessage(c.Request.Context(), msg, *user)
	if err != nil {
		logger.Error("webhook message failed",
			zap.String("from", from), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	reply := utils.RenderReply(result)
	if err := wc.sender.Send(from, reply); err != nil {
		// Delivery is fire-and-forget; the pipeline result stands.
		logger.Warn("reply delivery failed", zap.String("to", from))
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent", "message_type": result.MessageType})
}
