// Package identityconst contains constants of the Identity contract shared
// between the contract itself and off-chain code.
package identityconst

const (
	// ErrAlreadyRegistered is returned on repeated registration attempt.
	ErrAlreadyRegistered = "user is already registered"
	// ErrNotRegistered is returned on operations with an unknown user.
	ErrNotRegistered = "user is not registered"
	// ErrVerifierOnly is returned when verification is attempted by anyone
	// except the stake gate contract or committee.
	ErrVerifierOnly = "verification requires stake gate or committee"
	// ErrEmptyIdentifier is returned on registration with an empty identifier.
	ErrEmptyIdentifier = "empty identifier"
)
