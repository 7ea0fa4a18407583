/*
Package identity implements Identity contract which keeps the user registry.

Identity contract stores a record per user account: an opaque identifier, a
longevity score and a one-way verification flag. Registration is strictly
self-service: the registering transaction must be witnessed by the account
being registered. Verification is granted only by the StakeGate contract after
a confirmed stake transfer, or directly by committee.

The registry state machine is Unregistered -> Registered -> Verified with no
other edges; records are never removed.

The identifier is treated as confidential: it is returned only to its owner.
Clients that need real secrecy against chain observers must store an
enciphered identifier, the contract owns the authorization predicate only.

# Contract notifications

UserRegistered notification. Produced on successful registration.

	UserRegistered:
	  - name: user
	    type: Hash160

UserVerified notification. Produced when the verification flag is first set.

	UserVerified:
	  - name: user
	    type: Hash160
*/
package identity

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'stakeGateScriptHash' -> interop.Hash160
   StakeGate contract reference
 - u<interop.Hash160> -> std.Serialize(UserInfo)
   registry record of each user

# Registry
Contract stores records of all registered users.
*/
