// Package stakeconst contains constants of the StakeGate contract shared
// between the contract itself and off-chain code.
package stakeconst

const (
	// StakeAmount is a fixed amount of tokens that must be transferred to
	// the treasury to be eligible for verification, in token fractions
	// (8 decimals): 100.0 WHIS.
	StakeAmount = 100_0000_0000

	// ErrUnknownStake is returned on confirmation of an unrecorded transfer.
	ErrUnknownStake = "unknown stake reference"
	// ErrStakeConsumed is returned when a stake reference that has already
	// granted verification is used again for a different effect.
	ErrStakeConsumed = "stake reference is already consumed"
	// ErrWrongRegistrant is returned when the claimed registrant does not
	// match the recorded one.
	ErrWrongRegistrant = "stake registrant mismatch"
	// ErrInsufficientStake is returned when the recorded amount is below
	// StakeAmount.
	ErrInsufficientStake = "insufficient stake amount"
)
