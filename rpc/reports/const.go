package reports

import (
	"github.com/whistlechain/whistle-contract/contracts/reports/reportsconst"
)

// Report status codes, see [reportsconst] for the allowed transitions.
const (
	StatusPending       = reportsconst.StatusPending
	StatusInvestigating = reportsconst.StatusInvestigating
	StatusVerified      = reportsconst.StatusVerified
	StatusRejected      = reportsconst.StatusRejected
	StatusClosed        = reportsconst.StatusClosed
)

const (
	// NotFoundError is returned if report is missing.
	NotFoundError = reportsconst.NotFoundError

	// ErrVerificationRequired is returned on submission from an unverified account.
	ErrVerificationRequired = reportsconst.ErrVerificationRequired

	// ErrUnauthorized is returned on unauthorized content access.
	ErrUnauthorized = reportsconst.ErrUnauthorized

	// ErrDoubleClaim is returned on repeated reward claim.
	ErrDoubleClaim = reportsconst.ErrDoubleClaim
)
