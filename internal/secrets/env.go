package secrets

import (
	"context"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

type envStore struct {
	secret entity.Secret
}

// NewEnvStore serves credentials read from the environment, for local runs
// where no secret ARN is configured
func NewEnvStore(botToken, channelID string) contract.SecretStore {
	return &envStore{secret: entity.Secret{SlackBotToken: botToken, SlackChannelID: channelID}}
}

func (s *envStore) GetSecret(ctx context.Context) (*entity.Secret, error) {
	secret := s.secret
	if err := ValidateSecret(&secret); err != nil {
		return nil, err
	}
	return &secret, nil
}
