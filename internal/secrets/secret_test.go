package secrets

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSecret(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *entity.Secret
		wantErr error
	}{
		{
			name: "Should parse a valid secret",
			raw:  `{"SLACK_BOT_TOKEN":"xoxb-1","SLACK_CHANNEL_ID":"C1"}`,
			want: &entity.Secret{SlackBotToken: "xoxb-1", SlackChannelID: "C1"},
		},
		{
			name:    "Should reject missing channel",
			raw:     `{"SLACK_BOT_TOKEN":"xoxb-1"}`,
			wantErr: entity.ErrInvalidSecret,
		},
		{
			name:    "Should reject empty token",
			raw:     `{"SLACK_BOT_TOKEN":"","SLACK_CHANNEL_ID":"C1"}`,
			wantErr: entity.ErrInvalidSecret,
		},
		{
			name:    "Should reject unknown keys",
			raw:     `{"SLACK_BOT_TOKEN":"xoxb-1","SLACK_CHANNEL_ID":"C1","EXTRA":"x"}`,
			wantErr: entity.ErrInvalidSecret,
		},
		{
			name:    "Should reject python literal syntax",
			raw:     `{'SLACK_BOT_TOKEN': 'xoxb-1', 'SLACK_CHANNEL_ID': 'C1'}`,
			wantErr: entity.ErrInvalidSecret,
		},
		{
			name:    "Should reject trailing data",
			raw:     `{"SLACK_BOT_TOKEN":"xoxb-1","SLACK_CHANNEL_ID":"C1"} {}`,
			wantErr: entity.ErrInvalidSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSecret(tt.raw)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeSecretsManager struct {
	out      *secretsmanager.GetSecretValueOutput
	err      error
	secretID string
}

func (f *fakeSecretsManager) GetSecretValueWithContext(ctx aws.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	f.secretID = aws.StringValue(input.SecretId)
	return f.out, f.err
}

func TestAWSStore_GetSecret(t *testing.T) {
	const arn = "arn:aws:secretsmanager:ap-northeast-1:123456789012:secret:slack"

	t.Run("Should load and parse the secret string", func(t *testing.T) {
		fake := &fakeSecretsManager{out: &secretsmanager.GetSecretValueOutput{
			SecretString: aws.String(`{"SLACK_BOT_TOKEN":"xoxb-1","SLACK_CHANNEL_ID":"C1"}`),
		}}

		got, err := newAWSStore(fake, arn).GetSecret(context.Background())
		require.NoError(t, err)
		assert.Equal(t, arn, fake.secretID)
		assert.Equal(t, "C1", got.SlackChannelID)
	})

	t.Run("Should fail when secret string is missing", func(t *testing.T) {
		fake := &fakeSecretsManager{out: &secretsmanager.GetSecretValueOutput{SecretBinary: []byte("x")}}

		_, err := newAWSStore(fake, arn).GetSecret(context.Background())
		require.ErrorIs(t, err, entity.ErrSecretNotFound)
	})

	t.Run("Should wrap store errors", func(t *testing.T) {
		fake := &fakeSecretsManager{err: assert.AnError}

		_, err := newAWSStore(fake, arn).GetSecret(context.Background())
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestEnvStore_GetSecret(t *testing.T) {
	got, err := NewEnvStore("xoxb-1", "C1").GetSecret(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.Secret{SlackBotToken: "xoxb-1", SlackChannelID: "C1"}, got)

	_, err = NewEnvStore("", "C1").GetSecret(context.Background())
	require.ErrorIs(t, err, entity.ErrInvalidSecret)
}
