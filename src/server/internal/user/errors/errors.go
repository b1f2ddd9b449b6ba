package usererrors

import (
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
)

const (
	InvalidInputCode = api.ErrorCode("invalid_input")
)
