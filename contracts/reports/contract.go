package reports

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/whistlechain/whistle-contract/common"
	cst "github.com/whistlechain/whistle-contract/contracts/reports/reportsconst"
)

type (
	// Report is a ledger record of a single submitted report.
	Report struct {
		ID int
		// Reporter is an account that submitted the report.
		Reporter interop.Hash160
		// Content is an enciphered report body. It is returned only
		// through the content gate.
		Content []byte
		// ContentHash is a SHA-256 digest of Content for integrity
		// checks without content access.
		ContentHash interop.Hash256
		// SubmittedAt is a submission timestamp in ms.
		SubmittedAt int
		Status      int
		// VerifiedBy is a verifier account, nil until Verified.
		VerifiedBy interop.Hash160
		// VerifiedAt is a verification timestamp in ms, 0 until Verified.
		VerifiedAt int
		// RewardClaimed flips false->true at most once.
		RewardClaimed bool
	}

	// ReportInfo is a public projection of Report without the content.
	ReportInfo struct {
		ID            int
		Reporter      interop.Hash160
		ContentHash   interop.Hash256
		SubmittedAt   int
		Status        int
		VerifiedBy    interop.Hash160
		VerifiedAt    int
		RewardClaimed bool
	}
)

const (
	identityContractKey = "identityScriptHash"
	tokenContractKey    = "tokenScriptHash"

	counterKey = "reportCounter"

	reportPrefix   = 'r'
	ownerPrefix    = 'o'
	statusPrefix   = 's'
	verifierPrefix = 'v'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrIdentity interop.Hash160
		addrToken    interop.Hash160
	})

	if len(args.addrIdentity) != interop.Hash160Len || len(args.addrToken) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, identityContractKey, args.addrIdentity)
	storage.Put(ctx, tokenContractKey, args.addrToken)

	runtime.Log("reports contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("reports contract updated")
}

// Submit creates a new report record owned by the reporter. It can be
// invoked only by the reporter itself and only after the reporter has been
// verified in the Identity contract. Assigned ids are sequential starting
// from 1 and are never reused. The new report is in Pending status.
//
// It produces ReportSubmitted notification and returns the new id.
func Submit(reporter interop.Hash160, content []byte) int {
	if len(reporter) != interop.Hash160Len {
		panic("incorrect length of reporter script hash")
	}

	common.CheckOwnerWitness(reporter)

	if len(content) == 0 {
		panic(cst.ErrEmptyContent)
	}
	if len(content) > cst.MaxContentSize {
		panic("report content is too large")
	}

	ctx := storage.GetContext()

	identityContractAddr := storage.Get(ctx, identityContractKey).(interop.Hash160)
	verified := contract.Call(identityContractAddr, "isVerified", contract.ReadOnly, reporter).(bool)
	if !verified {
		panic(cst.ErrVerificationRequired)
	}

	id := nextID(ctx)

	rep := Report{
		ID:            id,
		Reporter:      reporter,
		Content:       content,
		ContentHash:   crypto.Sha256(content),
		SubmittedAt:   runtime.GetTime(),
		Status:        cst.StatusPending,
		VerifiedBy:    nil,
		VerifiedAt:    0,
		RewardClaimed: false,
	}
	putReport(ctx, rep)
	addOwnerIndex(ctx, reporter, id)
	addStatusIndex(ctx, cst.StatusPending, id)

	runtime.Log("report has been submitted")
	runtime.Notify("ReportSubmitted", id, reporter)

	return id
}

// GetInfo returns all non-confidential fields of the report.
func GetInfo(id int) ReportInfo {
	ctx := storage.GetReadOnlyContext()
	rep := getReport(ctx, id)

	return ReportInfo{
		ID:            rep.ID,
		Reporter:      rep.Reporter,
		ContentHash:   rep.ContentHash,
		SubmittedAt:   rep.SubmittedAt,
		Status:        rep.Status,
		VerifiedBy:    rep.VerifiedBy,
		VerifiedAt:    rep.VerifiedAt,
		RewardClaimed: rep.RewardClaimed,
	}
}

// GetContent returns the report content to the requester. Access is
// permitted only to the reporter and to allowlisted verifiers; the requester
// must witness the transaction. Every successful access leaves an audit
// trail: the method produces ContentAccessed notification and therefore must
// be invoked as a transaction, not as a test invocation.
func GetContent(id int, requester interop.Hash160) []byte {
	if len(requester) != interop.Hash160Len {
		panic(cst.ErrUnauthorized)
	}
	if !runtime.CheckWitness(requester) {
		panic(cst.ErrUnauthorized)
	}

	ctx := storage.GetContext()
	rep := getReport(ctx, id)

	if !requester.Equals(rep.Reporter) && !isVerifier(ctx, requester) {
		panic(cst.ErrUnauthorized)
	}

	runtime.Notify("ContentAccessed", id, requester)

	return rep.Content
}

// UpdateStatus moves the report along the status state machine:
// Pending -> Investigating/Verified/Rejected, Investigating ->
// Verified/Rejected, Verified/Rejected -> Closed. Any other edge fails, a
// closed report is immutable. It can be invoked only by an allowlisted
// verifier or committee, witnessed by the verifier account.
//
// On transition to Verified the report stores the verifier and the
// verification time, and the investigator reward is minted to the verifier.
// The record is persisted before the mint call.
//
// It produces StatusChanged notification.
func UpdateStatus(id int, newStatus int, verifier interop.Hash160) {
	if newStatus < cst.StatusPending || newStatus > cst.StatusClosed {
		panic(cst.ErrInvalidStatus)
	}
	if len(verifier) != interop.Hash160Len {
		panic("incorrect length of verifier script hash")
	}

	common.CheckWitness(verifier)

	ctx := storage.GetContext()

	if !isVerifier(ctx, verifier) && !runtime.CheckWitness(common.CommitteeAddress()) {
		panic(cst.ErrVerifierOnly)
	}

	rep := getReport(ctx, id)
	if rep.Status == cst.StatusClosed {
		panic(cst.ErrClosedImmutable)
	}
	if !canTransition(rep.Status, newStatus) {
		panic(cst.ErrIllegalTransition)
	}

	oldStatus := rep.Status
	rep.Status = newStatus
	if newStatus == cst.StatusVerified {
		rep.VerifiedBy = verifier
		rep.VerifiedAt = runtime.GetTime()
	}

	putReport(ctx, rep)
	removeStatusIndex(ctx, oldStatus, id)
	addStatusIndex(ctx, newStatus, id)

	// State is persisted before the external mint call.
	if newStatus == cst.StatusVerified {
		tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		contract.Call(tokenContractAddr, "mint", contract.All, verifier, cst.InvestigatorReward)
	}

	runtime.Log("report status has been changed")
	runtime.Notify("StatusChanged", id, oldStatus, newStatus, verifier)
}

// ClaimReward mints the reporter reward to the reporter of the verified
// report. It can be invoked only by the reporter, only while the report is
// in Verified status and only once per report. The claim flag is persisted
// before the mint call, a reentering claim always observes it set.
//
// It produces RewardClaimed notification.
func ClaimReward(id int) {
	ctx := storage.GetContext()
	rep := getReport(ctx, id)

	if !runtime.CheckWitness(rep.Reporter) {
		panic(cst.ErrNotReporter)
	}
	if rep.Status != cst.StatusVerified {
		panic(cst.ErrNotVerified)
	}
	if rep.RewardClaimed {
		panic(cst.ErrDoubleClaim)
	}

	rep.RewardClaimed = true
	putReport(ctx, rep)

	tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	contract.Call(tokenContractAddr, "mint", contract.All, rep.Reporter, cst.ReporterReward)

	runtime.Log("reporter reward has been claimed")
	runtime.Notify("RewardClaimed", id, rep.Reporter, cst.ReporterReward)
}

// ListByOwner returns ids of all reports submitted by the specified account.
func ListByOwner(owner interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	var list []int

	it := storage.Find(ctx, append([]byte{ownerPrefix}, owner...), storage.ValuesOnly)
	for iterator.Next(it) {
		list = append(list, iterator.Value(it).(int))
	}

	return list
}

// ReportsOf iterates over ids of all reports submitted by the specified
// account.
func ReportsOf(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{ownerPrefix}, owner...), storage.ValuesOnly)
}

// ListByStatus returns ids of reports in the specified status, at most limit
// of them. Limit is clamped to reportsconst.MaxListResults, callers must
// tolerate truncated results.
func ListByStatus(status int, limit int) []int {
	if status < cst.StatusPending || status > cst.StatusClosed {
		panic(cst.ErrInvalidStatus)
	}
	if limit <= 0 || limit > cst.MaxListResults {
		limit = cst.MaxListResults
	}

	ctx := storage.GetReadOnlyContext()

	var list []int

	it := storage.Find(ctx, []byte{statusPrefix, byte(status)}, storage.ValuesOnly)
	for iterator.Next(it) {
		list = append(list, iterator.Value(it).(int))
		if len(list) == limit {
			break
		}
	}

	return list
}

// Count returns the number of submitted reports.
func Count() int {
	ctx := storage.GetReadOnlyContext()

	count := storage.Get(ctx, counterKey)
	if count != nil {
		return count.(int)
	}

	return 0
}

// AddVerifier adds an account to the verifier allowlist. It can be invoked
// only by committee.
//
// It produces VerifierAdded notification.
func AddVerifier(account interop.Hash160) {
	common.CheckCommitteeWitness()

	if len(account) != interop.Hash160Len {
		panic("invalid verifier script hash")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, append([]byte{verifierPrefix}, account...), []byte{1})
	runtime.Notify("VerifierAdded", account)
}

// RemoveVerifier removes an account from the verifier allowlist. It can be
// invoked only by committee.
//
// It produces VerifierRemoved notification.
func RemoveVerifier(account interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	key := append([]byte{verifierPrefix}, account...)
	if storage.Get(ctx, key) != nil {
		storage.Delete(ctx, key)
		runtime.Notify("VerifierRemoved", account)
	}
}

// IsVerifier returns true if the specified account is in the verifier
// allowlist.
func IsVerifier(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isVerifier(ctx, account)
}

// Verifiers iterates over the verifier allowlist.
func Verifiers() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{verifierPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func canTransition(from, to int) bool {
	switch from {
	case cst.StatusPending:
		return to == cst.StatusInvestigating ||
			to == cst.StatusVerified ||
			to == cst.StatusRejected
	case cst.StatusInvestigating:
		return to == cst.StatusVerified || to == cst.StatusRejected
	case cst.StatusVerified, cst.StatusRejected:
		return to == cst.StatusClosed
	default:
		return false
	}
}

func nextID(ctx storage.Context) int {
	id := 0
	if c := storage.Get(ctx, counterKey); c != nil {
		id = c.(int)
	}
	id++
	storage.Put(ctx, counterKey, id)

	return id
}

func getReport(ctx storage.Context, id int) Report {
	data := storage.Get(ctx, append([]byte{reportPrefix}, convert.ToBytes(id)...))
	if data == nil {
		panic(cst.NotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Report)
}

func putReport(ctx storage.Context, rep Report) {
	key := append([]byte{reportPrefix}, convert.ToBytes(rep.ID)...)
	common.SetSerialized(ctx, key, rep)
}

func addOwnerIndex(ctx storage.Context, owner interop.Hash160, id int) {
	key := append([]byte{ownerPrefix}, owner...)
	key = append(key, convert.ToBytes(id)...)
	storage.Put(ctx, key, id)
}

func addStatusIndex(ctx storage.Context, status int, id int) {
	key := append([]byte{statusPrefix, byte(status)}, convert.ToBytes(id)...)
	storage.Put(ctx, key, id)
}

func removeStatusIndex(ctx storage.Context, status int, id int) {
	key := append([]byte{statusPrefix, byte(status)}, convert.ToBytes(id)...)
	storage.Delete(ctx, key)
}

func isVerifier(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{verifierPrefix}, account...)) != nil
}
