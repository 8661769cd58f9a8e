package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

type secretValueGetter interface {
	GetSecretValueWithContext(ctx aws.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error)
}

type awsStore struct {
	client    secretValueGetter
	secretARN string
}

// NewAWSStore reads the Slack secret from AWS Secrets Manager
func NewAWSStore(sess *session.Session, secretARN string) contract.SecretStore {
	return newAWSStore(secretsmanager.New(sess), secretARN)
}

func newAWSStore(client secretValueGetter, secretARN string) *awsStore {
	return &awsStore{client: client, secretARN: secretARN}
}

func (s *awsStore) GetSecret(ctx context.Context) (*entity.Secret, error) {
	out, err := s.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretARN),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret value: %w", err)
	}

	if out.SecretString == nil {
		return nil, entity.ErrSecretNotFound
	}

	return ParseSecret(aws.StringValue(out.SecretString))
}
