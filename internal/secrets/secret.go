package secrets

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseSecret decodes a secret string. Unknown keys, trailing data and
// missing values are rejected.
func ParseSecret(raw string) (*entity.Secret, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var secret entity.Secret
	if err := dec.Decode(&secret); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidSecret, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after secret object", entity.ErrInvalidSecret)
	}

	if err := ValidateSecret(&secret); err != nil {
		return nil, err
	}

	return &secret, nil
}

// ValidateSecret checks that every required credential is present
func ValidateSecret(secret *entity.Secret) error {
	if err := validate.Struct(secret); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidSecret, err)
	}
	return nil
}
