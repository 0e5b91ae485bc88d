// Package constants contains string constants shared across layers.
package constants

// EnvDevelop is the environment that runs migrations on start.
const EnvDevelop = "develop"

// Pub/Sub providers for the feedback relay.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers accepted by the sign-in flow.
const (
	IdentityProviderGoogle   = "google"
	IdentityProviderFirebase = "firebase"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)
