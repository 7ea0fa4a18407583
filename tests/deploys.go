package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	tokenPath     = "../contracts/token"
	identityPath  = "../contracts/identity"
	stakeGatePath = "../contracts/stakegate"
	reportsPath   = "../contracts/reports"
)

// ledgerContracts keeps hashes of the deployed contract suite.
type ledgerContracts struct {
	token     util.Uint160
	identity  util.Uint160
	stakeGate util.Uint160
	reports   util.Uint160
}

func deployTokenContract(t *testing.T, e *neotest.Executor, minters ...util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))

	arr := make([]any, len(minters))
	for i := range minters {
		arr[i] = minters[i]
	}

	args := make([]any, 1)
	args[0] = arr

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployIdentityContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, identityPath, path.Join(identityPath, "config.yml"))

	args := make([]any, 1)
	args[0] = nil // stake gate is wired later via setStakeGate

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployStakeGateContract(t *testing.T, e *neotest.Executor, addrToken, addrIdentity util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, stakeGatePath, path.Join(stakeGatePath, "config.yml"))

	args := make([]any, 2)
	args[0] = addrToken
	args[1] = addrIdentity

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployReportsContract(t *testing.T, e *neotest.Executor, addrIdentity, addrToken util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reportsPath, path.Join(reportsPath, "config.yml"))

	args := make([]any, 2)
	args[0] = addrIdentity
	args[1] = addrToken

	e.DeployContract(t, c, args)
	return c.Hash
}

// deployLedgerContracts deploys the whole suite in dependency order and
// performs post-deploy wiring: the committee account is allowlisted as a
// minter (to fund stakes in tests), the Reports contract becomes a minter
// and the Identity contract learns the StakeGate hash.
func deployLedgerContracts(t *testing.T, e *neotest.Executor) ledgerContracts {
	var c ledgerContracts

	c.token = deployTokenContract(t, e, e.CommitteeHash)
	c.identity = deployIdentityContract(t, e)
	c.stakeGate = deployStakeGateContract(t, e, c.token, c.identity)
	c.reports = deployReportsContract(t, e, c.identity, c.token)

	e.CommitteeInvoker(c.identity).Invoke(t, stackitem.Null{}, "setStakeGate", c.stakeGate)
	e.CommitteeInvoker(c.token).Invoke(t, stackitem.Null{}, "addMinter", c.reports)

	return c
}

// registerUser registers the account in the Identity contract with a dummy
// identifier.
func registerUser(t *testing.T, e *neotest.Executor, identityHash util.Uint160, acc neotest.Signer) {
	e.NewInvoker(identityHash, acc).Invoke(t, stackitem.Null{},
		"register", acc.ScriptHash(), "id-"+acc.ScriptHash().StringLE(), int64(100))
}

// verifyUser short-circuits the stake flow and verifies the account
// directly with the committee witness.
func verifyUser(t *testing.T, e *neotest.Executor, identityHash util.Uint160, acc neotest.Signer) {
	e.CommitteeInvoker(identityHash).Invoke(t, stackitem.Null{}, "verify", acc.ScriptHash())
}

// newVerifiedUser creates a fresh account ready to submit reports.
func newVerifiedUser(t *testing.T, e *neotest.Executor, identityHash util.Uint160) neotest.Signer {
	acc := e.NewAccount(t)
	registerUser(t, e, identityHash, acc)
	verifyUser(t, e, identityHash, acc)
	return acc
}

// mintTokens mints the given amount to the account with the committee
// witness (committee is allowlisted in deployLedgerContracts).
func mintTokens(t *testing.T, e *neotest.Executor, tokenHash, to util.Uint160, amount int64) {
	e.CommitteeInvoker(tokenHash).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

func balanceOf(t *testing.T, e *neotest.Executor, tokenHash, acc util.Uint160) int64 {
	res, err := e.CommitteeInvoker(tokenHash).TestInvoke(t, "balanceOf", acc)
	if err != nil {
		t.Fatal(err)
	}
	return res.Pop().BigInt().Int64()
}
