package userentity

// User is the session user as reported by the identity provider.
// The app keeps no user table of its own - Sub is the opaque subject
// identifier the provider issued and is the partition key for the
// user's records.
type User struct {
	Sub   string
	Email string
}
