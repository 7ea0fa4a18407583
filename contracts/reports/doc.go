/*
Package reports implements Reports contract which owns the report ledger.

Reports contract stores every submitted report together with its lifecycle
state and drives token incentives. Submission is open to verified users only
(see Identity contract), content reads are gated to the reporter and the
verifier allowlist, and status moves along a fixed state machine. On
verification the contract mints the investigator reward to the verifier
through the Token contract; the reporter claims its own reward separately and
exactly once.

Both reward paths persist contract state before calling the Token contract,
so a reentering call can never produce a second effect.

Everything except the content is public: any observer can read report
metadata and see that a content access happened, but not what was read.

# Contract notifications

ReportSubmitted notification. Produced on successful submission.

	ReportSubmitted:
	  - name: id
	    type: Integer
	  - name: reporter
	    type: Hash160

ContentAccessed notification. Produced on every successful content read.

	ContentAccessed:
	  - name: id
	    type: Integer
	  - name: requester
	    type: Hash160

StatusChanged notification. Produced on every status transition.

	StatusChanged:
	  - name: id
	    type: Integer
	  - name: oldStatus
	    type: Integer
	  - name: newStatus
	    type: Integer
	  - name: verifier
	    type: Hash160

RewardClaimed notification. Produced when the reporter claims the reward.

	RewardClaimed:
	  - name: id
	    type: Integer
	  - name: reporter
	    type: Hash160
	  - name: amount
	    type: Integer

VerifierAdded notification. Produced when committee allowlists a verifier.

	VerifierAdded:
	  - name: account
	    type: Hash160

VerifierRemoved notification. Produced when committee removes a verifier.

	VerifierRemoved:
	  - name: account
	    type: Hash160
*/
package reports

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'identityScriptHash' -> interop.Hash160
   Identity contract reference
 - 'tokenScriptHash' -> interop.Hash160
   Token contract reference
 - 'reportCounter' -> int
   last assigned report id
 - r<id> -> std.Serialize(Report)
   report records by id
 - o<interop.Hash160><id> -> int
   per-owner report id index
 - s<status><id> -> int
   per-status report id index
 - v<interop.Hash160> -> 1
   verifier allowlist membership

# Ledger
Report records are append-only, they are never deleted.
*/
