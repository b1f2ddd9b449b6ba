package cognito

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"
	"github.com/cockroachdb/errors"
	"github.com/medkit-app/medkit-be/src/shared/config"
	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Provider
type Provider interface {
	CreateAccount(ctx context.Context, email string, password string) (string, error)
	Authenticate(ctx context.Context, email string, password string) (Session, error)
	ValidateToken(ctx context.Context, accessToken string) (User, error)
}

type Session struct {
	AccessToken string
}

type User struct {
	Sub   string
	Email string
}

const (
	emailAttribute = "email"
	subAttribute   = "sub"

	userPasswordAuthFlow = "USER_PASSWORD_AUTH"
	usernameAuthParam    = "USERNAME"
	passwordAuthParam    = "PASSWORD"
	secretHashAuthParam  = "SECRET_HASH"
)

var _ Provider = CognitoProvider{}

type CognitoProvider struct {
	client *cognitoidentityprovider.CognitoIdentityProvider
	config config.Cognito
}

func NewProvider(cognitoConfig config.Cognito) CognitoProvider {
	awsSession := session.Must(session.NewSession())

	awsConfig := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(
			cognitoConfig.AccessKeyID,
			cognitoConfig.SecretAccessKey,
			"",
		)).
		WithRegion(cognitoConfig.Region)

	return CognitoProvider{
		client: cognitoidentityprovider.New(awsSession, awsConfig),
		config: cognitoConfig,
	}
}

// CreateAccount signs the user up and confirms the account right away.
// The pool's welcome mail is suppressed - the app enqueues its own.
func (c CognitoProvider) CreateAccount(ctx context.Context, email string, password string) (string, error) {
	signUpOutput, err := c.client.SignUpWithContext(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(c.config.AppClientID),
		SecretHash: aws.String(c.secretHash(email)),
		Username:   aws.String(email),
		Password:   aws.String(password),
		UserAttributes: []*cognitoidentityprovider.AttributeType{
			{
				Name:  aws.String(emailAttribute),
				Value: aws.String(email),
			},
		},
	})

	if err != nil {
		switch awsErrorCode(err) {
		case cognitoidentityprovider.ErrCodeUsernameExistsException:
			return "", mark.Wrap(err, DuplicateAccountMark, "An account already exists for this username")
		case cognitoidentityprovider.ErrCodeInvalidPasswordException:
			return "", mark.Wrap(err, PasswordPolicyMark, "Password doesn't meet the user pool policy")
		case cognitoidentityprovider.ErrCodeTooManyRequestsException:
			return "", mark.Wrap(err, RateLimitedMark, "Sign up was rate limited")
		default:
			return "", mark.Wrap(err, DefaultErrorMark, "Failed to sign up user")
		}
	}

	if signUpOutput.UserSub == nil {
		err := errors.New("Sign up response carries no user sub")
		return "", mark.Wrap(err, DefaultErrorMark, "Sign up succeeded without a user sub")
	}

	_, err = c.client.AdminConfirmSignUpWithContext(ctx, &cognitoidentityprovider.AdminConfirmSignUpInput{
		UserPoolId: aws.String(c.config.UserPoolID),
		Username:   aws.String(email),
	})

	if err != nil {
		switch awsErrorCode(err) {
		case cognitoidentityprovider.ErrCodeTooManyRequestsException:
			return "", mark.Wrap(err, RateLimitedMark, "Account confirmation was rate limited")
		default:
			return "", mark.Wrap(err, DefaultErrorMark, "Failed to confirm new account")
		}
	}

	return *signUpOutput.UserSub, nil
}

func (c CognitoProvider) Authenticate(ctx context.Context, email string, password string) (Session, error) {
	authOutput, err := c.client.InitiateAuthWithContext(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: aws.String(userPasswordAuthFlow),
		ClientId: aws.String(c.config.AppClientID),
		AuthParameters: map[string]*string{
			usernameAuthParam:   aws.String(email),
			passwordAuthParam:   aws.String(password),
			secretHashAuthParam: aws.String(c.secretHash(email)),
		},
	})

	if err != nil {
		switch awsErrorCode(err) {
		case cognitoidentityprovider.ErrCodeNotAuthorizedException,
			cognitoidentityprovider.ErrCodeUserNotFoundException:
			return Session{}, mark.Wrap(err, BadCredentialsMark, "Username or password was incorrect")
		case cognitoidentityprovider.ErrCodeTooManyRequestsException:
			return Session{}, mark.Wrap(err, RateLimitedMark, "Sign in was rate limited")
		default:
			return Session{}, mark.Wrap(err, DefaultErrorMark, "Failed to authenticate user")
		}
	}

	if authOutput.AuthenticationResult == nil || authOutput.AuthenticationResult.AccessToken == nil {
		err := errors.New("Auth response carries no access token")
		return Session{}, mark.Wrap(err, DefaultErrorMark, "Authentication succeeded without an access token")
	}

	return Session{
		AccessToken: *authOutput.AuthenticationResult.AccessToken,
	}, nil
}

func (c CognitoProvider) ValidateToken(ctx context.Context, accessToken string) (User, error) {
	getUserOutput, err := c.client.GetUserWithContext(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})

	if err != nil {
		switch awsErrorCode(err) {
		case cognitoidentityprovider.ErrCodeNotAuthorizedException,
			cognitoidentityprovider.ErrCodeUserNotFoundException,
			cognitoidentityprovider.ErrCodePasswordResetRequiredException:
			return User{}, mark.Wrap(err, NotValidatedMark, "Token could not be validated")
		default:
			return User{}, mark.Wrap(err, DefaultErrorMark, "Failed to validate token")
		}
	}

	sub, err := getAttribute(getUserOutput.UserAttributes, subAttribute)
	if err != nil {
		return User{}, mark.Wrap(err, MalformedClaimsMark, "sub attribute on the user is malformed")
	}

	email, err := getAttribute(getUserOutput.UserAttributes, emailAttribute)
	if err != nil {
		return User{}, mark.Wrap(err, MalformedClaimsMark, "email attribute on the user is malformed")
	}

	return User{
		Sub:   sub,
		Email: email,
	}, nil
}

func (c CognitoProvider) secretHash(username string) string {
	return SecretHash(c.config.AppClientID, c.config.AppClientSecret, username)
}

func awsErrorCode(err error) string {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return ""
	}

	return awsErr.Code()
}

func getAttribute(attributes []*cognitoidentityprovider.AttributeType, name string) (string, error) {
	for _, attribute := range attributes {
		if attribute.Name == nil || *attribute.Name != name {
			continue
		}

		if attribute.Value == nil {
			return "", errors.Newf("The attribute %s has no value", name)
		}

		return *attribute.Value, nil
	}

	return "", errors.Newf("The attribute %s couldn't be found", name)
}
