package cognito_test

import (
	"encoding/base64"

	"github.com/medkit-app/medkit-be/src/server/cognito"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SecretHash", func() {
	const (
		clientID     = "test-client-id"
		clientSecret = "test-client-secret"
		username     = "user@medkit.app"
	)

	It("is deterministic for the same inputs", func() {
		first := cognito.SecretHash(clientID, clientSecret, username)
		second := cognito.SecretHash(clientID, clientSecret, username)
		Expect(first).To(Equal(second))
	})

	It("is a base64 encoded SHA-256 digest", func() {
		hash := cognito.SecretHash(clientID, clientSecret, username)

		digest, err := base64.StdEncoding.DecodeString(hash)
		Expect(err).NotTo(HaveOccurred())
		Expect(digest).To(HaveLen(32))
	})

	It("changes when the client ID changes", func() {
		first := cognito.SecretHash(clientID, clientSecret, username)
		second := cognito.SecretHash("another-client-id", clientSecret, username)
		Expect(first).NotTo(Equal(second))
	})

	It("changes when the client secret changes", func() {
		first := cognito.SecretHash(clientID, clientSecret, username)
		second := cognito.SecretHash(clientID, "another-client-secret", username)
		Expect(first).NotTo(Equal(second))
	})

	It("changes when the username changes", func() {
		first := cognito.SecretHash(clientID, clientSecret, username)
		second := cognito.SecretHash(clientID, clientSecret, "someone-else@medkit.app")
		Expect(first).NotTo(Equal(second))
	})
})
