/*
Package token implements Token contract which keeps incentive token balances.

Token contract stores balances of all participants of the report ledger. It is
a NEP-17 compatible contract, so it can be tracked and controlled by N3
compatible network monitors and wallet software.

Supply can only grow through the mint method which is gated by the minter
allowlist. Normally the only allowlisted minter is the Reports contract which
mints investigator and reporter rewards on report verification. Allowlist
hygiene is a primary security property: a compromised minter can inflate
supply arbitrarily, so allowlist mutation is reserved for committee.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

MinterAdded notification. Produced when committee allowlists a minter.

	MinterAdded:
	  - name: account
	    type: Hash160

MinterRemoved notification. Produced when committee removes a minter.

	MinterRemoved:
	  - name: account
	    type: Hash160
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'supply' -> int
   total amount of minted tokens
 - a<interop.Hash160> -> int
   balance of each account
 - m<interop.Hash160> -> 1
   minter allowlist membership

# Accounting
Contract stores balances of all report ledger participants.
*/
