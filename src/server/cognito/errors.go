package cognito

import "github.com/cockroachdb/errors/domains"

var (
	DuplicateAccountMark = domains.New("duplicate_account")
	BadCredentialsMark   = domains.New("bad_credentials")
	RateLimitedMark      = domains.New("rate_limited")
	PasswordPolicyMark   = domains.New("password_policy")
	NotValidatedMark     = domains.New("not_validated")
	MalformedClaimsMark  = domains.New("malformed_claims")
	DefaultErrorMark     = domains.New("default_error")
)
