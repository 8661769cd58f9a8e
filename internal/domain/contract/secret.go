package contract

//go:generate mockgen -source=secret.go -destination=../../../mocks/secret_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

// SecretStore loads the Slack credentials for one invocation
type SecretStore interface {
	GetSecret(ctx context.Context) (*entity.Secret, error)
}
