package entity

import "errors"

var (
	ErrSecretNotFound = errors.New("secret string not found")
	ErrInvalidSecret  = errors.New("invalid secret")
)

// Secret holds the Slack credentials the report job runs with
type Secret struct {
	SlackBotToken  string `json:"SLACK_BOT_TOKEN" validate:"required"`
	SlackChannelID string `json:"SLACK_CHANNEL_ID" validate:"required"`
}
