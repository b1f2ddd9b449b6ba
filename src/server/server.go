package main

import (
	"github.com/medkit-app/medkit-be/src/server/application"
	"github.com/medkit-app/medkit-be/src/server/cognito"
	"github.com/medkit-app/medkit-be/src/shared/config"
	"github.com/medkit-app/medkit-be/src/shared/config/dev"
	"github.com/medkit-app/medkit-be/src/shared/config/envvar"
	"github.com/medkit-app/medkit-be/src/shared/lib/env"
)

const (
	templatesPath = "frontend/templates/*.html"
	staticPath    = "frontend/static"
)

func main() {
	var appConfig application.Config

	// the user pool lives in AWS in every environment - Cognito has no
	// local stand-in the way DynamoDB does
	cognitoConfig := config.Cognito{
		AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
		SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
		Region:          envvar.MustGet(envvar.AWS_REGION),
		UserPoolID:      envvar.MustGet(envvar.USER_POOL_ID),
		AppClientID:     envvar.MustGet(envvar.APP_CLIENT_ID),
		AppClientSecret: envvar.MustGet(envvar.APP_CLIENT_SECRET),
	}

	switch env.Get() {
	case env.Production:
		appConfig = application.Config{
			DynamoConfig: config.ProdDynamo{
				AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
				SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
				Region:          envvar.MustGet(envvar.AWS_REGION),
			},
			IdentityProvider:  cognito.NewProvider(cognitoConfig),
			RabbitMQURL:       envvar.MustGet(envvar.RABBITMQ_URL),
			RabbitMQQueueName: envvar.MustGet(envvar.RABBITMQ_QUEUE_NAME),
			TemplatesPath:     templatesPath,
			StaticPath:        staticPath,
			Port:              ":5000",
			Log:               true,
		}
	case env.Development:
		appConfig = application.Config{
			DynamoConfig:      dev.DynamoConfig,
			IdentityProvider:  cognito.NewProvider(cognitoConfig),
			RabbitMQURL:       dev.RabbitMQHost,
			RabbitMQQueueName: dev.RabbitMQQueueName,
			TemplatesPath:     templatesPath,
			StaticPath:        staticPath,
			Port:              ":5000",
			Log:               true,
		}

	default:
		panic("Unexpected environment")
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}
