package userusecase

import (
	"context"
	"encoding/json"

	"github.com/apex/log"
	"github.com/cockroachdb/errors/markers"
	"github.com/medkit-app/medkit-be/src/server/cognito"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/auth"
	"github.com/medkit-app/medkit-be/src/server/internal/user/entity"
	"github.com/medkit-app/medkit-be/src/server/internal/user/errors"
	"github.com/medkit-app/medkit-be/src/shared/lib/rabbitmq"
	"github.com/rabbitmq/amqp091-go"
)

const welcomeMailMessageType = "welcome_email"

type Usecase struct {
	identity  cognito.Provider
	mailQueue rabbitmq.Publisher
}

func NewUsecase(identity cognito.Provider, mailQueue rabbitmq.Publisher) Usecase {
	return Usecase{
		identity:  identity,
		mailQueue: mailQueue,
	}
}

// Register creates the account at the identity provider and enqueues the
// welcome mail. The pool's own mail is suppressed, so a failure to enqueue
// is logged but doesn't fail the registration.
func (u Usecase) Register(ctx context.Context, input userentity.RegisterInput) (string, *api.Error) {
	if err := input.Validate(); err != nil {
		return "", api.CommitError(err, usererrors.InvalidInputCode, err.Error())
	}

	userSub, err := u.identity.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case markers.Is(err, cognito.DuplicateAccountMark):
			return "", api.CommitError(err,
				auth.DuplicateAccountCode,
				"An account with this email already exists")

		case markers.Is(err, cognito.PasswordPolicyMark):
			return "", api.CommitError(err,
				usererrors.InvalidInputCode,
				"This password isn't accepted. Please pick a stronger one")

		case markers.Is(err, cognito.RateLimitedMark):
			return "", api.CommitError(err,
				auth.RateLimitedCode,
				"Too many attempts. Please try again in a moment")

		default:
			return "", api.CommitError(err,
				api.DefaultErrorCode,
				"Your account couldn't be created right now")
		}
	}

	u.enqueueWelcomeMail(input.Email)

	return userSub, nil
}

func (u Usecase) Login(ctx context.Context, input userentity.LoginInput) (cognito.Session, *api.Error) {
	if err := input.Validate(); err != nil {
		return cognito.Session{}, api.CommitError(err, usererrors.InvalidInputCode, err.Error())
	}

	session, err := u.identity.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case markers.Is(err, cognito.BadCredentialsMark):
			return cognito.Session{}, api.CommitError(err,
				auth.BadCredentialsCode,
				"Email or password was incorrect")

		case markers.Is(err, cognito.RateLimitedMark):
			return cognito.Session{}, api.CommitError(err,
				auth.RateLimitedCode,
				"Too many attempts. Please try again in a moment")

		default:
			return cognito.Session{}, api.CommitError(err,
				api.DefaultErrorCode,
				"You couldn't be signed in right now")
		}
	}

	return session, nil
}

// ValidateSession asks the identity provider about the session token on
// every call - there is no local token cache or refresh.
func (u Usecase) ValidateSession(ctx context.Context, accessToken string) (userentity.User, *api.Error) {
	userFromProvider, err := u.identity.ValidateToken(ctx, accessToken)
	if err != nil {
		switch {
		case markers.Is(err, cognito.NotValidatedMark):
			return userentity.User{}, api.CommitError(err,
				auth.InvalidSessionCode,
				"Your session is no longer valid. Please log in again")

		case markers.Is(err, cognito.MalformedClaimsMark):
			fallthrough
		default:
			return userentity.User{}, api.CommitError(err,
				api.DefaultErrorCode,
				"Your login status couldn't be verified")
		}
	}

	return userentity.User{
		Sub:   userFromProvider.Sub,
		Email: userFromProvider.Email,
	}, nil
}

type welcomeMailJob struct {
	Email string `json:"email"`
}

func (u Usecase) enqueueWelcomeMail(email string) {
	body, err := json.Marshal(welcomeMailJob{Email: email})
	if err != nil {
		log.WithError(err).Error("Failed to marshal welcome mail job")
		return
	}

	err = u.mailQueue.Publish(amqp091.Publishing{
		Type: welcomeMailMessageType,
		Body: body,
	})

	if err != nil {
		log.WithError(err).
			WithField("email", email).
			Error("Failed to enqueue welcome mail")
	}
}
