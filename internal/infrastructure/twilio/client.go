package twilio

import (
	"context"
	"fmt"
	"strings"

	"medialert/internal/domain/entity"
	"medialert/internal/pkg/logger"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client wraps Twilio messaging operations used to announce due reminders over WhatsApp.
type Client struct {
	client       *twilio.RestClient
	fromWhatsApp string
	toWhatsApp   string
	log          logger.Logger
}

// New creates a Twilio client bound to the configured WhatsApp sender and recipient numbers.
func New(accountSID, authToken, fromWhatsApp, toWhatsApp string, log logger.Logger) *Client {
	return &Client{
		client:       twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		fromWhatsApp: fromWhatsApp,
		toWhatsApp:   toWhatsApp,
		log:          log,
	}
}

// Name identifies the channel in logs and metrics.
func (c *Client) Name() string {
	return "twilio"
}

// Announce sends the reminder's alert text to the configured recipient.
// The Twilio SDK has no context support, so ctx is only checked before sending.
func (c *Client) Announce(ctx context.Context, r entity.Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.SendWhatsAppMessage(c.toWhatsApp, r.AlertText())
}

// SendWhatsAppMessage sends a WhatsApp message via Twilio's API.
func (c *Client) SendWhatsAppMessage(to, body string) error {
	if c.client == nil {
		return fmt.Errorf("twilio client not initialised")
	}

	sender := normalizeWhatsAppAddress(c.fromWhatsApp)
	if sender == "" {
		return fmt.Errorf("twilio sender WhatsApp number is not configured")
	}

	recipient := normalizeWhatsAppAddress(to)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(sender)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}
	if resp.Sid != nil {
		c.log.Debug(fmt.Sprintf("Twilio message sent, SID: %s", *resp.Sid))
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
