package userentity

import (
	"regexp"

	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

const minPasswordLength = 8

type LoginInput struct {
	Email    string
	Password string
}

// Validate returns an error whose message is suitable to show the user.
// It must pass before any call leaves for the identity provider.
func (l LoginInput) Validate() error {
	if !emailPattern.MatchString(l.Email) {
		return mark.Message(InvalidInputMark, "Please enter a valid email address")
	}

	if l.Password == "" {
		return mark.Message(InvalidInputMark, "Please enter a password")
	}

	return nil
}

type RegisterInput struct {
	LoginInput
	ConfirmPassword string
}

func (r RegisterInput) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return mark.Message(InvalidInputMark, "Please enter a valid email address")
	}

	if len(r.Password) < minPasswordLength {
		return mark.Message(InvalidInputMark, "Password must be at least 8 characters long")
	}

	if r.ConfirmPassword != r.Password {
		return mark.Message(InvalidInputMark, "Passwords do not match")
	}

	return nil
}
