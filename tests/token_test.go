package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/token/tokenconst"
)

func TestToken_Info(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e)
	c := e.CommitteeInvoker(h)

	c.Invoke(t, stackitem.Make(tokenconst.Symbol), "symbol")
	c.Invoke(t, stackitem.Make(tokenconst.Decimals), "decimals")
	c.Invoke(t, stackitem.Make(0), "totalSupply")
}

func TestToken_MintAuth(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e, e.CommitteeHash)
	c := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)

	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, tokenconst.ErrMinterOnly, "mint", acc.ScriptHash(), int64(100))

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(100))
	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(42))

	require.Equal(t, int64(142), balanceOf(t, e, h, acc.ScriptHash()))
	c.Invoke(t, stackitem.Make(142), "totalSupply")

	c.InvokeFail(t, tokenconst.ErrNegativeAmount, "mint", acc.ScriptHash(), int64(-1))
	c.Invoke(t, stackitem.Make(142), "totalSupply")
}

func TestToken_Transfer(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e, e.CommitteeHash)
	c := e.CommitteeInvoker(h)

	from := e.NewAccount(t)
	to := e.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(100))

	// Sender witness is mandatory.
	c.Invoke(t, stackitem.NewBool(false), "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(10), nil)

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, stackitem.NewBool(true), "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(10), nil)

	require.Equal(t, int64(90), balanceOf(t, e, h, from.ScriptHash()))
	require.Equal(t, int64(10), balanceOf(t, e, h, to.ScriptHash()))

	// Insufficient balance does not move anything.
	cFrom.Invoke(t, stackitem.NewBool(false), "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(1000), nil)
	require.Equal(t, int64(90), balanceOf(t, e, h, from.ScriptHash()))

	// Supply is untouched by transfers.
	c.Invoke(t, stackitem.Make(100), "totalSupply")
}

func TestToken_Burn(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e, e.CommitteeHash)
	c := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(100))

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"burn", acc.ScriptHash(), int64(10))

	c.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(10))
	require.Equal(t, int64(90), balanceOf(t, e, h, acc.ScriptHash()))
	c.Invoke(t, stackitem.Make(90), "totalSupply")

	c.InvokeFail(t, "not enough assets to burn", "burn", acc.ScriptHash(), int64(1000))
}

func TestToken_MinterAllowlist(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e)
	c := e.CommitteeInvoker(h)

	minter := e.NewAccount(t)
	cMinter := c.WithSigners(minter)

	cMinter.InvokeFail(t, common.ErrCommitteeWitnessFailed, "addMinter", minter.ScriptHash())
	c.Invoke(t, stackitem.NewBool(false), "isMinter", minter.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "addMinter", minter.ScriptHash())
	c.Invoke(t, stackitem.NewBool(true), "isMinter", minter.ScriptHash())

	cMinter.Invoke(t, stackitem.Null{}, "mint", minter.ScriptHash(), int64(5))
	require.Equal(t, int64(5), balanceOf(t, e, h, minter.ScriptHash()))

	c.Invoke(t, stackitem.Null{}, "removeMinter", minter.ScriptHash())
	c.Invoke(t, stackitem.NewBool(false), "isMinter", minter.ScriptHash())
	cMinter.InvokeFail(t, tokenconst.ErrMinterOnly, "mint", minter.ScriptHash(), int64(5))

	// Failed mint leaves supply intact.
	c.Invoke(t, stackitem.Make(5), "totalSupply")
}
