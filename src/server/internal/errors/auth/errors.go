package auth

import (
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
)

const (
	BadCredentialsCode   = api.ErrorCode("bad_credentials")
	DuplicateAccountCode = api.ErrorCode("duplicate_account")
	RateLimitedCode      = api.ErrorCode("rate_limited")
	NoSessionCode        = api.ErrorCode("no_session")
	InvalidSessionCode   = api.ErrorCode("invalid_session")
)
