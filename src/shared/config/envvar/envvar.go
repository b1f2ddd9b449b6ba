package envvar

import (
	"fmt"
	"os"
)

const (
	AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"
	AWS_REGION            = "AWS_REGION"
	USER_POOL_ID          = "USER_POOL_ID"
	APP_CLIENT_ID         = "APP_CLIENT_ID"
	APP_CLIENT_SECRET     = "APP_CLIENT_SECRET"
	RABBITMQ_URL          = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME   = "RABBITMQ_QUEUE_NAME"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}
