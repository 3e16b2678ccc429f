package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
)

// ErrEmptySecret is returned when a secret has no string value.
var ErrEmptySecret = errors.New("secret has no string value")

// SecretsManagerAPI is the subset of the Secrets Manager client used at start.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerFacade resolves plain-text secrets from AWS Secrets Manager.
type SecretsManagerFacade struct {
	client SecretsManagerAPI
}

func NewSecretsManagerFacade(client SecretsManagerAPI) *SecretsManagerFacade {
	return &SecretsManagerFacade{client: client}
}

// Resolve returns the trimmed string value of secretID.
func (f *SecretsManagerFacade) Resolve(ctx context.Context, secretID string) (string, error) {
	out, err := f.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		logger.Log.Errorw("failed to resolve secret", "secret_id", secretID, "error", err)
		return "", fmt.Errorf("secrets manager: get secret value: %w", err)
	}

	value := strings.TrimSpace(aws.ToString(out.SecretString))
	if value == "" {
		return "", fmt.Errorf("secrets manager: %s: %w", secretID, ErrEmptySecret)
	}

	logger.Log.Infow("secret resolved", "secret_id", secretID)
	return value, nil
}
