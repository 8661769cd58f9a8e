package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SecretARN          string `envconfig:"SECRET_ARN"`
	AWSRegion          string `envconfig:"AWS_REGION" default:"ap-northeast-1"`
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackChannelID     string `envconfig:"SLACK_CHANNEL_ID"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	AttendanceReaction string `envconfig:"ATTENDANCE_REACTION" default:"出勤_syukkin"`
	ReportTime         string `envconfig:"REPORT_TIME" default:"03:00"`
	Timezone           string `envconfig:"TIMEZONE"`
	DatabasePath       string `envconfig:"DATABASE_PATH"`
	Port               string `envconfig:"PORT" default:"3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Location resolves Timezone, defaulting to the process local zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// UseSecretsManager reports whether credentials come from AWS Secrets Manager
// instead of SLACK_BOT_TOKEN / SLACK_CHANNEL_ID
func (c *Config) UseSecretsManager() bool {
	return c.SecretARN != ""
}

// ArchiveEnabled reports whether posted rankings are stored in sqlite
func (c *Config) ArchiveEnabled() bool {
	return c.DatabasePath != ""
}
