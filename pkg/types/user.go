package types

// UserRef identifies the user an inbound event belongs to. ID is opaque to
// the core; it is whatever identifier the gateway assigns and is used as the
// storage partition key.
type UserRef struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
}

// Profile is the denormalized user record cached inside a refrigerator
// store. It is non-authoritative; the gateway owns user identity.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
}
