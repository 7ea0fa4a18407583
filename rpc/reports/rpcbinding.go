// Package reports contains RPC wrappers for Whistle Reports contract.
package reports

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ReportsReportInfo is a contract-specific reports.ReportInfo type used by its methods.
type ReportsReportInfo struct {
	ID            *big.Int
	Reporter      util.Uint160
	ContentHash   util.Uint256
	SubmittedAt   *big.Int
	Status        *big.Int
	// VerifiedBy is zero until the report is verified.
	VerifiedBy    util.Uint160
	VerifiedAt    *big.Int
	RewardClaimed bool
}

// ReportSubmittedEvent represents "ReportSubmitted" event emitted by the contract.
type ReportSubmittedEvent struct {
	ID       *big.Int
	Reporter util.Uint160
}

// StatusChangedEvent represents "StatusChanged" event emitted by the contract.
type StatusChangedEvent struct {
	ID        *big.Int
	OldStatus *big.Int
	NewStatus *big.Int
	Verifier  util.Uint160
}

// RewardClaimedEvent represents "RewardClaimed" event emitted by the contract.
type RewardClaimedEvent struct {
	ID       *big.Int
	Reporter util.Uint160
	Amount   *big.Int
}

// ContentAccessedEvent represents "ContentAccessed" event emitted by the contract.
type ContentAccessedEvent struct {
	ID        *big.Int
	Requester util.Uint160
}

// VerifierAddedEvent represents "VerifierAdded" event emitted by the contract.
type VerifierAddedEvent struct {
	Account util.Uint160
}

// VerifierRemovedEvent represents "VerifierRemoved" event emitted by the contract.
type VerifierRemovedEvent struct {
	Account util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetInfo invokes `getInfo` method of contract.
func (c *ContractReader) GetInfo(id *big.Int) (*ReportsReportInfo, error) {
	return itemToReportsReportInfo(unwrap.Item(c.invoker.Call(c.hash, "getInfo", id)))
}

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// IsVerifier invokes `isVerifier` method of contract.
func (c *ContractReader) IsVerifier(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerifier", account))
}

// ListByOwner invokes `listByOwner` method of contract.
func (c *ContractReader) ListByOwner(owner util.Uint160) ([]*big.Int, error) {
	return bigIntsFromArray(unwrap.Array(c.invoker.Call(c.hash, "listByOwner", owner)))
}

// ListByStatus invokes `listByStatus` method of contract.
func (c *ContractReader) ListByStatus(status *big.Int, limit *big.Int) ([]*big.Int, error) {
	return bigIntsFromArray(unwrap.Array(c.invoker.Call(c.hash, "listByStatus", status, limit)))
}

// ReportsOf invokes `reportsOf` method of contract.
func (c *ContractReader) ReportsOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "reportsOf", owner))
}

// ReportsOfExpanded is similar to ReportsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ReportsOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "reportsOf", _numOfIteratorItems, owner))
}

// Verifiers invokes `verifiers` method of contract.
func (c *ContractReader) Verifiers() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "verifiers"))
}

// VerifiersExpanded is similar to Verifiers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) VerifiersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "verifiers", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Submit creates a transaction invoking `submit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Submit(reporter util.Uint160, content []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submit", reporter, content)
}

// SubmitTransaction creates a transaction invoking `submit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitTransaction(reporter util.Uint160, content []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submit", reporter, content)
}

// SubmitUnsigned creates a transaction invoking `submit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitUnsigned(reporter util.Uint160, content []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submit", nil, reporter, content)
}

// GetContent creates a transaction invoking `getContent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GetContent(id *big.Int, requester util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "getContent", id, requester)
}

// GetContentTransaction creates a transaction invoking `getContent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GetContentTransaction(id *big.Int, requester util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "getContent", id, requester)
}

// GetContentUnsigned creates a transaction invoking `getContent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GetContentUnsigned(id *big.Int, requester util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "getContent", nil, id, requester)
}

// UpdateStatus creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateStatus(id *big.Int, newStatus *big.Int, verifier util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateStatus", id, newStatus, verifier)
}

// UpdateStatusTransaction creates a transaction invoking `updateStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStatusTransaction(id *big.Int, newStatus *big.Int, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateStatus", id, newStatus, verifier)
}

// UpdateStatusUnsigned creates a transaction invoking `updateStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStatusUnsigned(id *big.Int, newStatus *big.Int, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateStatus", nil, id, newStatus, verifier)
}

// ClaimReward creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimReward(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimReward", id)
}

// ClaimRewardTransaction creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimReward", id)
}

// ClaimRewardUnsigned creates a transaction invoking `claimReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimReward", nil, id)
}

// AddVerifier creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddVerifier(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addVerifier", account)
}

// AddVerifierTransaction creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddVerifierTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addVerifier", account)
}

// AddVerifierUnsigned creates a transaction invoking `addVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddVerifierUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addVerifier", nil, account)
}

// RemoveVerifier creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveVerifier(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeVerifier", account)
}

// RemoveVerifierTransaction creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveVerifierTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeVerifier", account)
}

// RemoveVerifierUnsigned creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveVerifierUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeVerifier", nil, account)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToReportsReportInfo converts stack item into *ReportsReportInfo.
func itemToReportsReportInfo(item stackitem.Item, err error) (*ReportsReportInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReportsReportInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReportsReportInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReportsReportInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	res.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	res.Reporter, err = hash160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	res.ContentHash, err = hash256FromItem(arr[2])
	if err != nil {
		return fmt.Errorf("field ContentHash: %w", err)
	}

	res.SubmittedAt, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}

	res.Status, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	// VerifiedBy is Null for reports that were never verified.
	if _, isNull := arr[5].(stackitem.Null); !isNull {
		res.VerifiedBy, err = hash160FromItem(arr[5])
		if err != nil {
			return fmt.Errorf("field VerifiedBy: %w", err)
		}
	}

	res.VerifiedAt, err = arr[6].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifiedAt: %w", err)
	}

	res.RewardClaimed, err = arr[7].TryBool()
	if err != nil {
		return fmt.Errorf("field RewardClaimed: %w", err)
	}

	return nil
}

// ReportSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportSubmitted" name from the provided [result.ApplicationLog].
func ReportSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportSubmitted" {
				continue
			}
			event := new(ReportSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Reporter, err = hash160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	return nil
}

// StatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "StatusChanged" name from the provided [result.ApplicationLog].
func StatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StatusChanged" {
				continue
			}
			event := new(StatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *StatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.OldStatus, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	e.NewStatus, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	e.Verifier, err = hash160FromItem(arr[3])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	return nil
}

// RewardClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardClaimed" name from the provided [result.ApplicationLog].
func RewardClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardClaimed" {
				continue
			}
			event := new(RewardClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Reporter, err = hash160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ContentAccessedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContentAccessed" name from the provided [result.ApplicationLog].
func ContentAccessedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContentAccessedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContentAccessedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContentAccessed" {
				continue
			}
			event := new(ContentAccessedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContentAccessedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContentAccessedEvent or
// returns an error if it's not possible to do to so.
func (e *ContentAccessedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.ID, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Requester, err = hash160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	return nil
}

// VerifierAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierAdded" name from the provided [result.ApplicationLog].
func VerifierAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierAdded" {
				continue
			}
			event := new(VerifierAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierAddedEvent or
// returns an error if it's not possible to do to so.
func (e *VerifierAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.Account, err = hash160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// VerifierRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierRemoved" name from the provided [result.ApplicationLog].
func VerifierRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierRemoved" {
				continue
			}
			event := new(VerifierRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *VerifierRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	e.Account, err = hash160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

func hash160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func hash256FromItem(item stackitem.Item) (util.Uint256, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeBytesBE(b)
}

func bigIntsFromArray(arr []stackitem.Item, err error) ([]*big.Int, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*big.Int, len(arr))
	for i := range arr {
		res[i], err = arr[i].TryInteger()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}
