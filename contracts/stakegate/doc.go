/*
Package stakegate implements StakeGate contract which bridges an economic
commitment to identity verification.

The contract account is the stake treasury. A registrant transfers the fixed
stake amount of whistle tokens to it; the transfer is recorded under its
transaction hash and a Stake notification is produced. The off-chain stake
oracle catches the notification, waits for the transaction to settle and
invokes confirmStake, which re-validates the record and calls verify method
of the Identity contract.

Every confirmation check is fail-closed and the stake reference is consumed
before the Identity call, so one transfer grants at most one verification and
spoofed or undersized transfers never grant any. Re-submitting an already
confirmed reference is a no-op which keeps oracle retries safe.

# Contract notifications

Stake notification. Produced when the treasury receives a token transfer.

	Stake:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: registrant
	    type: Hash160
	  - name: txID
	    type: Hash256

StakeConfirmed notification. Produced when a recorded stake grants
verification.

	StakeConfirmed:
	  - name: txID
	    type: Hash256
	  - name: registrant
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package stakegate

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'tokenScriptHash' -> interop.Hash160
   Token contract reference
 - 'identityScriptHash' -> interop.Hash160
   Identity contract reference
 - d<interop.Hash256> -> std.Serialize(Stake)
   recorded treasury transfers by transaction hash
 - c<interop.Hash256> -> 1
   consumed stake references

# Treasury
Stake tokens accumulate on the contract account until committee sweeps them.
*/
