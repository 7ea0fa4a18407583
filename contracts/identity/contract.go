package identity

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/identity/identityconst"
)

// UserInfo is a registry record of a single user.
type UserInfo struct {
	// Opaque identifier supplied on registration. Expected to be an
	// externally enciphered blob, the registry only gates who may read it.
	Identifier string
	// Longevity score supplied on registration.
	Longevity int
	// Verified is set once after a confirmed stake.
	Verified bool
	// CreatedAt is a registration timestamp in ms.
	CreatedAt int
}

const (
	stakeGateContractKey = "stakeGateScriptHash"

	userPrefix = 'u'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrStakeGate interop.Hash160
	})

	if len(args.addrStakeGate) == interop.Hash160Len {
		ctx := storage.GetContext()
		storage.Put(ctx, stakeGateContractKey, args.addrStakeGate)
	}

	runtime.Log("identity contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("identity contract updated")
}

// SetStakeGate stores the script hash of the StakeGate contract which is
// allowed to grant verification. It can be invoked only by committee.
func SetStakeGate(addr interop.Hash160) {
	common.CheckCommitteeWitness()

	if len(addr) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, stakeGateContractKey, addr)
	runtime.Log("stake gate contract is set")
}

// Register creates a registry record for the user. It can be invoked only by
// the user itself, there is no delegated registration.
//
// It produces UserRegistered notification.
func Register(user interop.Hash160, identifier string, longevity int) {
	if len(user) != interop.Hash160Len {
		panic("incorrect length of user script hash")
	}

	common.CheckOwnerWitness(user)

	if len(identifier) == 0 {
		panic(identityconst.ErrEmptyIdentifier)
	}
	if longevity < 0 {
		panic("negative longevity")
	}

	ctx := storage.GetContext()
	key := append([]byte{userPrefix}, user...)
	if storage.Get(ctx, key) != nil {
		panic(identityconst.ErrAlreadyRegistered)
	}

	info := UserInfo{
		Identifier: identifier,
		Longevity:  longevity,
		Verified:   false,
		CreatedAt:  runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, info)

	runtime.Log("user has been registered")
	runtime.Notify("UserRegistered", user)
}

// Verify marks the registered user as verified. It can be invoked only by the
// StakeGate contract or by committee. Repeated verification of the same user
// is a no-op.
//
// It produces UserVerified notification.
func Verify(user interop.Hash160) {
	if len(user) != interop.Hash160Len {
		panic("incorrect length of user script hash")
	}

	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	if !fromStakeGate(ctx, caller) && !runtime.CheckWitness(common.CommitteeAddress()) {
		panic(identityconst.ErrVerifierOnly)
	}

	key := append([]byte{userPrefix}, user...)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(identityconst.ErrNotRegistered)
	}

	info := std.Deserialize(data.([]byte)).(UserInfo)
	if info.Verified {
		runtime.Log("user is already verified")
		return
	}

	info.Verified = true
	common.SetSerialized(ctx, key, info)

	runtime.Log("user has been verified")
	runtime.Notify("UserVerified", user)
}

// IsRegistered returns true if the user has a registry record.
func IsRegistered(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{userPrefix}, user...)) != nil
}

// IsVerified returns true if the user has been verified.
func IsVerified(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, append([]byte{userPrefix}, user...))
	if data == nil {
		return false
	}

	return std.Deserialize(data.([]byte)).(UserInfo).Verified
}

// Identifier returns the identifier stored on registration. It can be invoked
// only by the owning user, the registry never returns it to anyone else.
func Identifier(user interop.Hash160) string {
	if len(user) != interop.Hash160Len {
		panic("incorrect length of user script hash")
	}

	common.CheckOwnerWitness(user)

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{userPrefix}, user...))
	if data == nil {
		panic(identityconst.ErrNotRegistered)
	}

	return std.Deserialize(data.([]byte)).(UserInfo).Identifier
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func fromStakeGate(ctx storage.Context, caller interop.Hash160) bool {
	gate := storage.Get(ctx, stakeGateContractKey)
	if gate == nil {
		return false
	}

	return caller.Equals(gate.(interop.Hash160))
}
