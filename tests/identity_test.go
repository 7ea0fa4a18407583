package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/identity/identityconst"
)

func TestIdentity_Register(t *testing.T) {
	e := newExecutor(t)
	h := deployIdentityContract(t, e)
	c := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)
	cAcc := c.WithSigners(acc)

	c.Invoke(t, stackitem.NewBool(false), "isRegistered", acc.ScriptHash())

	cAcc.Invoke(t, stackitem.Null{}, "register", acc.ScriptHash(), "whistler-1", int64(10))
	c.Invoke(t, stackitem.NewBool(true), "isRegistered", acc.ScriptHash())
	c.Invoke(t, stackitem.NewBool(false), "isVerified", acc.ScriptHash())

	t.Run("repeated registration", func(t *testing.T) {
		cAcc.InvokeFail(t, identityconst.ErrAlreadyRegistered,
			"register", acc.ScriptHash(), "whistler-1", int64(10))
	})

	t.Run("no delegated registration", func(t *testing.T) {
		other := e.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"register", acc.ScriptHash(), "whistler-2", int64(10))
	})

	t.Run("empty identifier", func(t *testing.T) {
		other := e.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, identityconst.ErrEmptyIdentifier,
			"register", other.ScriptHash(), "", int64(10))
	})
}

func TestIdentity_Verify(t *testing.T) {
	e := newExecutor(t)
	h := deployIdentityContract(t, e)
	c := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)

	t.Run("unregistered user", func(t *testing.T) {
		c.InvokeFail(t, identityconst.ErrNotRegistered, "verify", acc.ScriptHash())
	})

	c.WithSigners(acc).Invoke(t, stackitem.Null{},
		"register", acc.ScriptHash(), "whistler-1", int64(10))

	t.Run("arbitrary account cannot verify", func(t *testing.T) {
		other := e.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, identityconst.ErrVerifierOnly,
			"verify", acc.ScriptHash())
		c.Invoke(t, stackitem.NewBool(false), "isVerified", acc.ScriptHash())
	})

	c.Invoke(t, stackitem.Null{}, "verify", acc.ScriptHash())
	c.Invoke(t, stackitem.NewBool(true), "isVerified", acc.ScriptHash())

	t.Run("repeated verification is a no-op", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "verify", acc.ScriptHash())
		c.Invoke(t, stackitem.NewBool(true), "isVerified", acc.ScriptHash())
	})
}

func TestIdentity_Identifier(t *testing.T) {
	e := newExecutor(t)
	h := deployIdentityContract(t, e)
	c := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "register", acc.ScriptHash(), "deep-throat", int64(10))

	cAcc.Invoke(t, stackitem.Make("deep-throat"), "identifier", acc.ScriptHash())

	t.Run("owner only", func(t *testing.T) {
		other := e.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"identifier", acc.ScriptHash())
	})

	t.Run("unknown user", func(t *testing.T) {
		other := e.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, identityconst.ErrNotRegistered,
			"identifier", other.ScriptHash())
	})
}
