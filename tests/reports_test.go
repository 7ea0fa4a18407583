package tests

import (
	"crypto/sha256"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/whistlechain/whistle-contract/common"
	"github.com/whistlechain/whistle-contract/contracts/reports/reportsconst"
)

func submitReport(t *testing.T, e *neotest.Executor, c ledgerContracts,
	reporter neotest.Signer, content []byte, expectedID int64) {
	e.NewInvoker(c.reports, reporter).Invoke(t, stackitem.Make(expectedID),
		"submit", reporter.ScriptHash(), content)
}

func reportInfo(t *testing.T, e *neotest.Executor, reportsHash util.Uint160, id int64) []stackitem.Item {
	res, err := e.CommitteeInvoker(reportsHash).TestInvoke(t, "getInfo", id)
	require.NoError(t, err)
	return res.Pop().Array()
}

func reportStatus(t *testing.T, e *neotest.Executor, reportsHash util.Uint160, id int64) int64 {
	status, err := reportInfo(t, e, reportsHash, id)[4].TryInteger()
	require.NoError(t, err)
	return status.Int64()
}

func intsFromStack(t *testing.T, itm stackitem.Item) []int64 {
	arr, ok := itm.Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]int64, 0, len(arr))
	for i := range arr {
		v, err := arr[i].TryInteger()
		require.NoError(t, err)
		res = append(res, v.Int64())
	}
	return res
}

func TestReports_Submit(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	content := randomBytes(64)

	t.Run("unverified reporter", func(t *testing.T) {
		acc := e.NewAccount(t)
		registerUser(t, e, c.identity, acc)
		e.NewInvoker(c.reports, acc).InvokeFail(t, reportsconst.ErrVerificationRequired,
			"submit", acc.ScriptHash(), content)
	})

	acc := newVerifiedUser(t, e, c.identity)
	cAcc := e.NewInvoker(c.reports, acc)

	t.Run("no delegated submission", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"submit", acc.ScriptHash(), content)
	})

	t.Run("empty content", func(t *testing.T) {
		cAcc.InvokeFail(t, reportsconst.ErrEmptyContent, "submit", acc.ScriptHash(), []byte{})
	})

	submitReport(t, e, c, acc, content, 1)
	submitReport(t, e, c, acc, randomBytes(64), 2)

	cReports.Invoke(t, stackitem.Make(2), "count")
}

func TestReports_GetInfo(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	acc := newVerifiedUser(t, e, c.identity)
	content := randomBytes(64)
	submitReport(t, e, c, acc, content, 1)

	fields := reportInfo(t, e, c.reports, 1)
	require.Len(t, fields, 8)

	id, err := fields[0].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(1), id.Int64())

	reporter, err := fields[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash().BytesBE(), reporter)

	digest := sha256.Sum256(content)
	contentHash, err := fields[2].TryBytes()
	require.NoError(t, err)
	require.Equal(t, digest[:], contentHash)

	submittedAt, err := fields[3].TryInteger()
	require.NoError(t, err)
	require.True(t, submittedAt.Int64() > 0)

	status, err := fields[4].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(reportsconst.StatusPending), status.Int64())

	require.True(t, fields[5].Equals(stackitem.Null{}))

	verifiedAt, err := fields[6].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(0), verifiedAt.Int64())

	claimed, err := fields[7].TryBool()
	require.NoError(t, err)
	require.False(t, claimed)

	t.Run("missing report", func(t *testing.T) {
		cReports.InvokeFail(t, reportsconst.NotFoundError, "getInfo", int64(42))
	})
}

func TestReports_ContentAccess(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	acc := newVerifiedUser(t, e, c.identity)
	content := randomBytes(64)
	submitReport(t, e, c, acc, content, 1)

	verifier := e.NewAccount(t)
	cReports.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())

	e.NewInvoker(c.reports, acc).Invoke(t, stackitem.Make(content),
		"getContent", int64(1), acc.ScriptHash())
	e.NewInvoker(c.reports, verifier).Invoke(t, stackitem.Make(content),
		"getContent", int64(1), verifier.ScriptHash())

	t.Run("stranger", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, reportsconst.ErrUnauthorized,
			"getContent", int64(1), other.ScriptHash())
	})

	t.Run("committee is not exempt", func(t *testing.T) {
		cReports.InvokeFail(t, reportsconst.ErrUnauthorized,
			"getContent", int64(1), e.CommitteeHash)
	})

	t.Run("requester witness is mandatory", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, reportsconst.ErrUnauthorized,
			"getContent", int64(1), acc.ScriptHash())
	})
}

func TestReports_StatusMachine(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	acc := newVerifiedUser(t, e, c.identity)
	submitReport(t, e, c, acc, randomBytes(64), 1)
	submitReport(t, e, c, acc, randomBytes(64), 2)

	verifier := e.NewAccount(t)
	cReports.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())
	cVerifier := e.NewInvoker(c.reports, verifier)

	t.Run("only allowlisted verifier or committee", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, reportsconst.ErrVerifierOnly,
			"updateStatus", int64(1), int64(reportsconst.StatusInvestigating), other.ScriptHash())
	})

	t.Run("verifier witness is mandatory", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, common.ErrWitnessFailed,
			"updateStatus", int64(1), int64(reportsconst.StatusInvestigating), verifier.ScriptHash())
	})

	t.Run("status code range", func(t *testing.T) {
		cVerifier.InvokeFail(t, reportsconst.ErrInvalidStatus,
			"updateStatus", int64(1), int64(7), verifier.ScriptHash())
	})

	t.Run("no edge from pending to closed", func(t *testing.T) {
		cVerifier.InvokeFail(t, reportsconst.ErrIllegalTransition,
			"updateStatus", int64(1), int64(reportsconst.StatusClosed), verifier.ScriptHash())
	})

	cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(1), int64(reportsconst.StatusInvestigating), verifier.ScriptHash())
	require.Equal(t, int64(reportsconst.StatusInvestigating), reportStatus(t, e, c.reports, 1))

	t.Run("no way back to pending", func(t *testing.T) {
		cVerifier.InvokeFail(t, reportsconst.ErrIllegalTransition,
			"updateStatus", int64(1), int64(reportsconst.StatusPending), verifier.ScriptHash())
	})

	cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(1), int64(reportsconst.StatusVerified), verifier.ScriptHash())
	cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(1), int64(reportsconst.StatusClosed), verifier.ScriptHash())
	require.Equal(t, int64(reportsconst.StatusClosed), reportStatus(t, e, c.reports, 1))

	t.Run("closed report is immutable", func(t *testing.T) {
		cVerifier.InvokeFail(t, reportsconst.ErrClosedImmutable,
			"updateStatus", int64(1), int64(reportsconst.StatusVerified), verifier.ScriptHash())
	})

	// Committee may drive the state machine directly, the rejection branch
	// terminates through Closed as well.
	cReports.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(2), int64(reportsconst.StatusRejected), e.CommitteeHash)
	cReports.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(2), int64(reportsconst.StatusClosed), e.CommitteeHash)
	require.Equal(t, int64(reportsconst.StatusClosed), reportStatus(t, e, c.reports, 2))
}

func TestReports_Rewards(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	acc := newVerifiedUser(t, e, c.identity)
	submitReport(t, e, c, acc, randomBytes(64), 1)
	submitReport(t, e, c, acc, randomBytes(64), 2)

	verifier := e.NewAccount(t)
	cReports.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())
	cVerifier := e.NewInvoker(c.reports, verifier)
	cAcc := e.NewInvoker(c.reports, acc)

	t.Run("no claim before verification", func(t *testing.T) {
		cAcc.InvokeFail(t, reportsconst.ErrNotVerified, "claimReward", int64(1))
	})

	cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
		int64(1), int64(reportsconst.StatusVerified), verifier.ScriptHash())

	// The investigator reward is minted on the Verified transition.
	require.Equal(t, int64(reportsconst.InvestigatorReward),
		balanceOf(t, e, c.token, verifier.ScriptHash()))

	verifiedBy, err := reportInfo(t, e, c.reports, 1)[5].TryBytes()
	require.NoError(t, err)
	require.Equal(t, verifier.ScriptHash().BytesBE(), verifiedBy)

	t.Run("only the reporter claims", func(t *testing.T) {
		other := e.NewAccount(t)
		e.NewInvoker(c.reports, other).InvokeFail(t, reportsconst.ErrNotReporter,
			"claimReward", int64(1))
	})

	cAcc.Invoke(t, stackitem.Null{}, "claimReward", int64(1))
	require.Equal(t, int64(reportsconst.ReporterReward),
		balanceOf(t, e, c.token, acc.ScriptHash()))

	claimed, err := reportInfo(t, e, c.reports, 1)[7].TryBool()
	require.NoError(t, err)
	require.True(t, claimed)

	t.Run("no double claim", func(t *testing.T) {
		cAcc.InvokeFail(t, reportsconst.ErrDoubleClaim, "claimReward", int64(1))
		require.Equal(t, int64(reportsconst.ReporterReward),
			balanceOf(t, e, c.token, acc.ScriptHash()))
	})

	t.Run("no claim after closing", func(t *testing.T) {
		cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
			int64(2), int64(reportsconst.StatusVerified), verifier.ScriptHash())
		cVerifier.Invoke(t, stackitem.Null{}, "updateStatus",
			int64(2), int64(reportsconst.StatusClosed), verifier.ScriptHash())

		cAcc.InvokeFail(t, reportsconst.ErrNotVerified, "claimReward", int64(2))
	})
}

func TestReports_Listings(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	accA := newVerifiedUser(t, e, c.identity)
	accB := newVerifiedUser(t, e, c.identity)

	submitReport(t, e, c, accA, randomBytes(64), 1)
	submitReport(t, e, c, accA, randomBytes(64), 2)
	submitReport(t, e, c, accA, randomBytes(64), 3)
	submitReport(t, e, c, accB, randomBytes(64), 4)

	verifier := e.NewAccount(t)
	cReports.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())
	e.NewInvoker(c.reports, verifier).Invoke(t, stackitem.Null{}, "updateStatus",
		int64(2), int64(reportsconst.StatusInvestigating), verifier.ScriptHash())

	res, err := cReports.TestInvoke(t, "listByOwner", accA.ScriptHash())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, intsFromStack(t, res.Pop().Item()))

	res, err = cReports.TestInvoke(t, "reportsOf", accB.ScriptHash())
	require.NoError(t, err)
	iter := res.Pop().Value().(*storage.Iterator)
	require.Len(t, iteratorToArray(iter), 1)

	res, err = cReports.TestInvoke(t, "listByStatus", int64(reportsconst.StatusPending), int64(0))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3, 4}, intsFromStack(t, res.Pop().Item()))

	t.Run("truncation", func(t *testing.T) {
		res, err := cReports.TestInvoke(t, "listByStatus", int64(reportsconst.StatusPending), int64(2))
		require.NoError(t, err)
		require.Equal(t, []int64{1, 3}, intsFromStack(t, res.Pop().Item()))
	})

	res, err = cReports.TestInvoke(t, "listByStatus", int64(reportsconst.StatusInvestigating), int64(0))
	require.NoError(t, err)
	require.Equal(t, []int64{2}, intsFromStack(t, res.Pop().Item()))

	cReports.InvokeFail(t, reportsconst.ErrInvalidStatus,
		"listByStatus", int64(9), int64(0))

	cReports.Invoke(t, stackitem.Make(4), "count")
}

func TestReports_VerifierAllowlist(t *testing.T) {
	e := newExecutor(t)
	c := deployLedgerContracts(t, e)
	cReports := e.CommitteeInvoker(c.reports)

	verifier := e.NewAccount(t)

	cReports.WithSigners(verifier).InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"addVerifier", verifier.ScriptHash())
	cReports.Invoke(t, stackitem.NewBool(false), "isVerifier", verifier.ScriptHash())

	cReports.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())
	cReports.Invoke(t, stackitem.NewBool(true), "isVerifier", verifier.ScriptHash())

	res, err := cReports.TestInvoke(t, "verifiers")
	require.NoError(t, err)
	iter := res.Pop().Value().(*storage.Iterator)
	require.Len(t, iteratorToArray(iter), 1)

	cReports.Invoke(t, stackitem.Null{}, "removeVerifier", verifier.ScriptHash())
	cReports.Invoke(t, stackitem.NewBool(false), "isVerifier", verifier.ScriptHash())
}
