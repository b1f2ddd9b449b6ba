package testing

import (
	"context"
	"fmt"

	"github.com/medkit-app/medkit-be/src/server/cognito"
	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

type User struct {
	Sub      string
	Email    string
	Password string
}

var (
	// has an account and owns the seeded medicines
	PrimaryUser = User{
		Sub:      "primary-user-sub",
		Email:    "primary@medkit.app",
		Password: "primary-password",
	}

	// has an account but owns none of the primary user's medicines
	OtherUser = User{
		Sub:      "other-user-sub",
		Email:    "other@medkit.app",
		Password: "other-password",
	}

	// no account at the identity provider
	NoAccountUser = User{
		Sub:      "no-account-user-sub",
		Email:    "rando@someoneelse.com",
		Password: "no-account-password",
	}
)

// RateLimitedEmail makes the fake provider report throttling,
// for exercising the 429 branches.
const RateLimitedEmail = "throttled@medkit.app"

func TokenForUserSub(userSub string) string {
	return fmt.Sprintf("%s-token", userSub)
}

var _ cognito.Provider = IdentityProvider{}

// IdentityProvider is an in-memory stand-in for Cognito that recognizes
// the fixture users above.
type IdentityProvider struct{}

func (i IdentityProvider) CreateAccount(ctx context.Context, email string, password string) (string, error) {
	if email == RateLimitedEmail {
		return "", mark.Message(cognito.RateLimitedMark, "Sign up was rate limited")
	}

	for _, existingUser := range []User{PrimaryUser, OtherUser} {
		if email == existingUser.Email {
			return "", mark.Message(cognito.DuplicateAccountMark, "An account already exists for this username")
		}
	}

	return fmt.Sprintf("sub-for-%s", email), nil
}

func (i IdentityProvider) Authenticate(ctx context.Context, email string, password string) (cognito.Session, error) {
	if email == RateLimitedEmail {
		return cognito.Session{}, mark.Message(cognito.RateLimitedMark, "Sign in was rate limited")
	}

	for _, existingUser := range []User{PrimaryUser, OtherUser} {
		if email == existingUser.Email && password == existingUser.Password {
			return cognito.Session{
				AccessToken: TokenForUserSub(existingUser.Sub),
			}, nil
		}
	}

	return cognito.Session{}, mark.Message(cognito.BadCredentialsMark, "Username or password was incorrect")
}

func (i IdentityProvider) ValidateToken(ctx context.Context, accessToken string) (cognito.User, error) {
	for _, existingUser := range []User{PrimaryUser, OtherUser} {
		if accessToken == TokenForUserSub(existingUser.Sub) {
			return cognito.User{
				Sub:   existingUser.Sub,
				Email: existingUser.Email,
			}, nil
		}
	}

	return cognito.User{}, mark.Message(cognito.NotValidatedMark, "Token could not be validated")
}
