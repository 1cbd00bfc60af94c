package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"medialert/internal/domain/entity"
	"medialert/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client and pushes due reminders to a single LINE user.
type Client struct {
	*linebot.Client
	notifyUser string
	log        logger.Logger
}

// NewClient creates a LINE Bot client. notifyUser may be empty until the recipient is known,
// in which case Announce fails.
func NewClient(channelSecret, channelToken, notifyUser string, log logger.Logger) (*Client, error) {
	if channelSecret == "" || channelToken == "" {
		return nil, errors.New("LINE channel secret and access token must be set")
	}

	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client:     bot,
		notifyUser: notifyUser,
		log:        log,
	}, nil
}

// Name identifies the channel in logs and metrics.
func (c *Client) Name() string {
	return "line"
}

// Announce pushes the reminder's alert text to the configured LINE user.
func (c *Client) Announce(ctx context.Context, r entity.Reminder) error {
	if c.notifyUser == "" {
		return errors.New("LINE notify user id is not configured")
	}
	return c.PushMessages(ctx, c.notifyUser, linebot.NewTextMessage(r.AlertText()))
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	_, err := c.PushMessage(to, messages...).WithContext(ctx).Do()
	if err != nil {
		return err // Return the error for the caller to handle
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// SendMessages sends one or more messages using the ReplyMessage API.
func (c *Client) SendMessages(replyToken string, messages ...linebot.SendingMessage) error {
	_, err := c.ReplyMessage(replyToken, messages...).Do()
	if err != nil {
		return err // Return the error for the caller to handle
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// ParseRequest parses incoming webhook requests.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	return c.Client.ParseRequest(r)
}
