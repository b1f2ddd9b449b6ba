package config

type Cognito struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	UserPoolID      string
	AppClientID     string
	AppClientSecret string
}
