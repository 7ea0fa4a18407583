package stakegate

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/stakegate/stakeconst"
)

// Stake is a record of a single token transfer to the treasury.
type Stake struct {
	// From is a sender of the transfer.
	From interop.Hash160
	// Registrant is an account the stake is made for. Usually equals From.
	Registrant interop.Hash160
	// Amount of transferred tokens.
	Amount int
	// Time of the transfer in ms.
	Time int
}

const (
	tokenContractKey    = "tokenScriptHash"
	identityContractKey = "identityScriptHash"

	stakePrefix    = 'd'
	consumedPrefix = 'c'
)

// OnNEP17Payment is a callback for NEP-17 compatible token contract. The
// contract account serves as the stake treasury: every accepted transfer is
// recorded under its transaction hash and can later grant verification
// exactly once via confirmStake. Only the wired token contract is accepted.
//
// Data argument optionally carries the registrant account the stake is made
// for; it defaults to the sender.
//
// It produces Stake notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	if !caller.Equals(tokenContractAddr) {
		common.AbortWithMessage("stake gate accepts whistle token only")
	}

	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	registrant := from
	if data != nil {
		registrant = data.(interop.Hash160)
		if len(registrant) != interop.Hash160Len {
			common.AbortWithMessage("invalid data argument, expected Hash160")
		}
	}

	tx := runtime.GetScriptContainer()
	key := append([]byte{stakePrefix}, tx.Hash...)
	if storage.Get(ctx, key) != nil {
		common.AbortWithMessage("stake reference is already recorded")
	}

	s := Stake{
		From:       from,
		Registrant: registrant,
		Amount:     amount,
		Time:       runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, s)

	runtime.Log("stake has been recorded")
	runtime.Notify("Stake", from, amount, registrant, tx.Hash)
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrToken    interop.Hash160
		addrIdentity interop.Hash160
	})

	if len(args.addrToken) != interop.Hash160Len || len(args.addrIdentity) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, tokenContractKey, args.addrToken)
	storage.Put(ctx, identityContractKey, args.addrIdentity)

	runtime.Log("stake gate contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("stake gate contract updated")
}

// ConfirmStake validates the recorded stake transfer and grants verification
// to the registrant via the Identity contract. It can be invoked only by
// committee (the off-chain stake oracle signs with it).
//
// All checks are fail-closed: unknown reference, registrant mismatch or
// amount below stakeconst.StakeAmount revert the whole invocation. The
// reference is consumed before the Identity call, one transfer grants at
// most one verification. Re-confirming a consumed reference of an already
// verified registrant halts as a no-op, so oracle retries are safe.
//
// It produces StakeConfirmed notification.
func ConfirmStake(txID interop.Hash256, registrant interop.Hash160) {
	if len(txID) != interop.Hash256Len {
		panic("invalid stake reference")
	}
	if len(registrant) != interop.Hash160Len {
		panic("incorrect length of registrant script hash")
	}

	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	identityContractAddr := storage.Get(ctx, identityContractKey).(interop.Hash160)

	consumedKey := append([]byte{consumedPrefix}, txID...)
	if storage.Get(ctx, consumedKey) != nil {
		verified := contract.Call(identityContractAddr, "isVerified", contract.ReadOnly, registrant).(bool)
		if verified {
			runtime.Log("stake is already confirmed")
			return
		}
		panic(stakeconst.ErrStakeConsumed)
	}

	s := getStake(ctx, txID)
	if !s.Registrant.Equals(registrant) {
		panic(stakeconst.ErrWrongRegistrant)
	}
	if s.Amount < stakeconst.StakeAmount {
		panic(stakeconst.ErrInsufficientStake)
	}

	// Consume the reference before the external call.
	storage.Put(ctx, consumedKey, []byte{1})

	contract.Call(identityContractAddr, "verify", contract.All, registrant)

	runtime.Log("stake has been confirmed")
	runtime.Notify("StakeConfirmed", txID, registrant, s.Amount)
}

// GetStake returns the recorded stake transfer. It panics on an unknown
// reference.
func GetStake(txID interop.Hash256) Stake {
	ctx := storage.GetReadOnlyContext()
	return getStake(ctx, txID)
}

// IsConsumed returns true if the stake reference has already granted
// verification.
func IsConsumed(txID interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{consumedPrefix}, txID...)) != nil
}

// Sweep transfers accumulated treasury tokens to the specified account. It
// can be invoked only by committee.
func Sweep(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetReadOnlyContext()
	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)

	ok := contract.Call(tokenContractAddr, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), to, amount, nil).(bool)
	if !ok {
		panic("treasury transfer failed")
	}
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getStake(ctx storage.Context, txID interop.Hash256) Stake {
	data := storage.Get(ctx, append([]byte{stakePrefix}, txID...))
	if data == nil {
		panic(stakeconst.ErrUnknownStake)
	}

	return std.Deserialize(data.([]byte)).(Stake)
}
