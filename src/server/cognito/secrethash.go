package cognito

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the SECRET_HASH parameter that Cognito requires on
// every sign-up and sign-in call when the app client has a secret configured:
// base64(HMAC-SHA256(key=clientSecret, msg=username+clientID))
func SecretHash(clientID string, clientSecret string, username string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
