package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// LineBot is the part of the LINE client the webhook needs.
type LineBot interface {
	ParseRequest(r *http.Request) ([]*linebot.Event, error)
	SendMessages(replyToken string, messages ...linebot.SendingMessage) error
}

// LineHandler handles incoming LINE webhook events. Its only job is to tell a
// follower their LINE user id so it can be configured as the reminder recipient.
type LineHandler struct {
	lineClient LineBot
	log        logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(lineClient LineBot, log logger.Logger) *LineHandler {
	return &LineHandler{lineClient: lineClient, log: log}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		h.log.Info(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeFollow:
			h.reply(event, "Welcome to MediAlert! Due medication reminders will be pushed here once this account is configured.")
		case linebot.EventTypeMessage:
			if msg, ok := event.Message.(*linebot.TextMessage); ok && strings.EqualFold(strings.TrimSpace(msg.Text), "id") {
				h.reply(event, "")
			}
		default:
			h.log.Debug(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

// reply answers with an optional text followed by the sender's user id.
func (h *LineHandler) reply(event *linebot.Event, text string) {
	if event.Source == nil || event.ReplyToken == "" {
		return
	}
	messages := make([]linebot.SendingMessage, 0, 2)
	if text != "" {
		messages = append(messages, linebot.NewTextMessage(text))
	}
	messages = append(messages, linebot.NewTextMessage(
		fmt.Sprintf("Your LINE user id is %s. Set MEDIALERT_LINE_NOTIFY_USER to it to receive reminders.", event.Source.UserID)))

	if err := h.lineClient.SendMessages(event.ReplyToken, messages...); err != nil {
		h.log.Error(fmt.Sprintf("Failed to reply to LINE user %s", event.Source.UserID), err)
	}
}
