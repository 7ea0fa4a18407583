package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/token/tokenconst"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	circulation = "supply"

	accPrefix    = 'a'
	minterPrefix = 'm'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         tokenconst.Symbol,
		Decimals:       tokenconst.Decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()

	args := data.(struct {
		minters []interop.Hash160
	})

	for _, acc := range args.minters {
		if len(acc) != interop.Hash160Len {
			panic("incorrect length of minter script hash")
		}
		storage.Put(ctx, append([]byte{minterPrefix}, acc...), []byte{1})
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of the token.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// minted tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only by the account owner.
//
// It produces Transfer notification. If the receiver is a deployed contract,
// its onNEP17Payment method is invoked with the same arguments.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, data)
}

// Mint increases the balance of the specified account and the total supply.
// It can be invoked only by an allowlisted minter: either a minter contract
// calling directly or a transaction witnessed by a minter account.
//
// It produces Transfer notification with null sender.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	if !mintAllowed(ctx) {
		panic(tokenconst.ErrMinterOnly)
	}
	if amount < 0 {
		panic(tokenconst.ErrNegativeAmount)
	}
	if len(to) != interop.Hash160Len {
		panic("invalid receiver script hash")
	}

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)

	addToBalance(ctx, to, amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	postTransfer(nil, to, amount, nil)
	runtime.Log("assets were minted")
}

// Burn decreases the balance of the specified account and the total supply.
// It can be invoked only by committee.
//
// It produces Transfer notification with null receiver.
func Burn(from interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if amount < 0 {
		panic(tokenconst.ErrNegativeAmount)
	}

	if !reduceBalance(ctx, from, amount) {
		panic("not enough assets to burn")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, token.CirculationKey, supply-amount)

	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
	runtime.Log("assets were burned")
}

// AddMinter adds an account to the minter allowlist. It can be invoked only
// by committee.
//
// It produces MinterAdded notification.
func AddMinter(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	if len(account) != interop.Hash160Len {
		panic("invalid minter script hash")
	}

	storage.Put(ctx, append([]byte{minterPrefix}, account...), []byte{1})
	runtime.Notify("MinterAdded", account)
}

// RemoveMinter removes an account from the minter allowlist. It can be
// invoked only by committee.
//
// It produces MinterRemoved notification.
func RemoveMinter(account interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckCommitteeWitness()

	key := append([]byte{minterPrefix}, account...)
	if storage.Get(ctx, key) != nil {
		storage.Delete(ctx, key)
		runtime.Notify("MinterRemoved", account)
	}
}

// IsMinter returns true if the specified account is in the minter allowlist.
func IsMinter(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isMinter(ctx, account)
}

// Minters iterates over the minter allowlist.
func Minters() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{minterPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{accPrefix}, holder...))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, internal bool, data any) bool {
	if amount < 0 {
		panic(tokenconst.ErrNegativeAmount)
	}

	if len(to) != interop.Hash160Len || !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return false
	}

	if !reduceBalance(ctx, from, amount) {
		runtime.Log("not enough assets")
		return false
	}

	addToBalance(ctx, to, amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)

	return true
}

// postTransfer invokes onNEP17Payment method of the receiver if it is
// a deployed contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func addToBalance(ctx storage.Context, acc interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, acc...)
	balance := 0
	if b := storage.Get(ctx, key); b != nil {
		balance = b.(int)
	}
	storage.Put(ctx, key, balance+amount)
}

func reduceBalance(ctx storage.Context, acc interop.Hash160, amount int) bool {
	key := append([]byte{accPrefix}, acc...)
	balance := 0
	if b := storage.Get(ctx, key); b != nil {
		balance = b.(int)
	}
	if balance < amount {
		return false
	}

	if balance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance-amount)
	}
	return true
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func isMinter(ctx storage.Context, acc interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{minterPrefix}, acc...)) != nil
}

// mintAllowed returns true if mint is invoked by a minter contract directly
// or the transaction is witnessed by an allowlisted minter account.
func mintAllowed(ctx storage.Context) bool {
	caller := runtime.GetCallingScriptHash()
	if isMinter(ctx, caller) {
		return true
	}

	it := storage.Find(ctx, []byte{minterPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		acc := iterator.Value(it).(interop.Hash160) // it MUST BE `storage.KeysOnly`
		if runtime.CheckWitness(acc) {
			return true
		}
	}

	return false
}
