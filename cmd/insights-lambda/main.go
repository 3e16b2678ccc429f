// Command insights-lambda serves the public insight endpoint from AWS Lambda
// behind an API Gateway proxy integration.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/sbilibin2017/gw-health-records/internal/config"
	"github.com/sbilibin2017/gw-health-records/internal/facades"
	"github.com/sbilibin2017/gw-health-records/internal/handlers"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/middlewares"
	"github.com/sbilibin2017/gw-health-records/internal/services"
)

func main() {
	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	apiKey := cfg.Gateway.APIKey
	if apiKey == "" && cfg.Gateway.APIKeySecretID != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("failed to load AWS config: %v", err)
		}
		apiKey, err = facades.NewSecretsManagerFacade(secretsmanager.NewFromConfig(awsCfg)).
			Resolve(ctx, cfg.Gateway.APIKeySecretID)
		if err != nil {
			log.Fatalf("failed to resolve insight gateway key: %v", err)
		}
	}

	lambda.Start(httpadapter.New(newHandler(cfg, apiKey)).ProxyWithContext)
}

// newHandler answers every path with the insight endpoint behind CORS.
// Preflight requests are logged like any other.
func newHandler(cfg *config.Config, apiKey string) http.Handler {
	gateway := facades.NewInsightGatewayHTTPFacade(cfg.Gateway.URL, apiKey)
	svc := services.NewInsightService(gateway, nil, nil, services.NewKafkaEventPublisher(nil), nil)

	return middlewares.LoggingMiddleware(
		middlewares.CORSMiddleware(handlers.NewInsightsHandler(svc)),
	)
}
