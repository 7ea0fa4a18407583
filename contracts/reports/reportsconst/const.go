// Package reportsconst contains constants of the Reports contract shared
// between the contract itself and off-chain code.
package reportsconst

// Report status codes. Status only moves along fixed edges:
// Pending -> Investigating/Verified/Rejected, Investigating ->
// Verified/Rejected, Verified/Rejected -> Closed, Closed is terminal.
const (
	StatusPending = iota
	StatusInvestigating
	StatusVerified
	StatusRejected
	StatusClosed
)

const (
	// ReporterReward is an amount of tokens minted to the reporter on a
	// successful reward claim, in token fractions (8 decimals): 50.0 WHIS.
	ReporterReward = 50_0000_0000
	// InvestigatorReward is an amount of tokens minted to the verifier when
	// a report enters Verified status: 10.0 WHIS.
	InvestigatorReward = 10_0000_0000

	// MaxListResults bounds the number of ids returned by listByStatus.
	MaxListResults = 100
	// MaxContentSize bounds the size of submitted ciphertext.
	MaxContentSize = 16 << 10
)

const (
	// NotFoundError is returned if report is missing.
	NotFoundError = "report does not exist"
	// ErrVerificationRequired is returned on submission from an unverified
	// account.
	ErrVerificationRequired = "reporter is not verified"
	// ErrUnauthorized is returned on content access by anyone except the
	// reporter or an allowlisted verifier.
	ErrUnauthorized = "content access denied"
	// ErrVerifierOnly is returned on status change by anyone except an
	// allowlisted verifier or committee.
	ErrVerifierOnly = "status change requires allowlisted verifier or committee"
	// ErrNotReporter is returned on reward claim by anyone except the
	// reporter.
	ErrNotReporter = "claimer is not the reporter"
	// ErrNotVerified is returned on reward claim for a report that is not
	// in Verified status.
	ErrNotVerified = "report is not verified"
	// ErrDoubleClaim is returned on repeated reward claim.
	ErrDoubleClaim = "reward is already claimed"
	// ErrIllegalTransition is returned on a status change along a
	// non-existing edge.
	ErrIllegalTransition = "illegal status transition"
	// ErrClosedImmutable is returned on any status change of a closed
	// report.
	ErrClosedImmutable = "report is closed"
	// ErrInvalidStatus is returned on an out-of-range status code.
	ErrInvalidStatus = "invalid status"
	// ErrEmptyContent is returned on submission of empty content.
	ErrEmptyContent = "empty report content"
)
