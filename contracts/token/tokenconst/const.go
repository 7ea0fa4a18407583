// Package tokenconst contains constants of the Token contract shared
// between the contract itself and off-chain code.
package tokenconst

const (
	// Symbol is a ticker symbol of the incentive token.
	Symbol = "WHIS"
	// Decimals is a precision of the incentive token.
	Decimals = 8

	// ErrMinterOnly is returned on mint attempt from a non-allowlisted account.
	ErrMinterOnly = "caller is not an allowlisted minter"
	// ErrNegativeAmount is returned on transfer/mint/burn of a negative amount.
	ErrNegativeAmount = "negative amount"
)
