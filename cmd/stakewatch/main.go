// Stakewatch is a committee-side oracle helper. Given a stake transfer
// transaction, it validates the recorded stake against the Stake Gate
// contract state and sends the committee-signed confirmation which verifies
// the registrant in the Identity contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/whistlechain/whistle-contract/contracts/stakegate/stakeconst"
	"go.uber.org/zap"
)

const (
	// stakeEventName is the notification produced by the Stake Gate contract
	// on incoming token transfers.
	stakeEventName = "Stake"

	appLogAttempts = 10
	appLogDelay    = 2 * time.Second
)

// stakeRecord is a parsed Stake notification.
type stakeRecord struct {
	from       util.Uint160
	amount     *big.Int
	registrant util.Uint160
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the committee member wallet")
	walletPassword := flag.String("password", "", "Password of the committee member wallet")
	gateAddress := flag.String("gate", "", "Stake Gate contract address, LE hex")
	stakeTx := flag.String("tx", "", "Hash of the stake transfer transaction, LE hex")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	switch {
	case *neoRPCEndpoint == "":
		logger.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		logger.Fatal("missing wallet path")
	case *gateAddress == "":
		logger.Fatal("missing Stake Gate contract address")
	case *stakeTx == "":
		logger.Fatal("missing stake transfer transaction hash")
	}

	gateHash, err := util.Uint160DecodeStringLE(*gateAddress)
	if err != nil {
		logger.Fatal("invalid Stake Gate contract address", zap.Error(err))
	}

	txHash, err := util.Uint256DecodeStringLE(*stakeTx)
	if err != nil {
		logger.Fatal("invalid stake transfer transaction hash", zap.Error(err))
	}

	acc, err := unlockWallet(*walletPath, *walletPassword)
	if err != nil {
		logger.Fatal("open committee wallet", zap.Error(err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		logger.Fatal("RPC client dial", zap.Error(err))
	}
	defer c.Close()

	rec, err := awaitStakeRecord(logger, c, gateHash, txHash)
	if err != nil {
		logger.Fatal("resolve stake transfer", zap.Stringer("tx", txHash), zap.Error(err))
	}

	logger.Info("stake transfer found",
		zap.Stringer("tx", txHash),
		zap.Stringer("from", rec.from),
		zap.Stringer("registrant", rec.registrant),
		zap.String("amount", rec.amount.String()))

	if rec.amount.Cmp(big.NewInt(stakeconst.StakeAmount)) < 0 {
		logger.Fatal("stake amount is below the required minimum, refusing to confirm",
			zap.String("amount", rec.amount.String()),
			zap.Int64("required", stakeconst.StakeAmount))
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		logger.Fatal("init transaction sender", zap.Error(err))
	}

	confirmHash, vub, err := act.SendCall(gateHash, "confirmStake", txHash, rec.registrant)
	if err != nil {
		logger.Fatal("send stake confirmation", zap.Error(err))
	}

	res, err := act.Wait(confirmHash, vub, nil)
	if err != nil {
		logger.Fatal("wait for stake confirmation", zap.Stringer("tx", confirmHash), zap.Error(err))
	}
	if res.VMState != vmstate.Halt {
		logger.Fatal("stake confirmation failed",
			zap.Stringer("tx", confirmHash),
			zap.String("exception", res.FaultException))
	}

	logger.Info("stake successfully confirmed",
		zap.Stringer("tx", confirmHash),
		zap.Stringer("registrant", rec.registrant))
}

func unlockWallet(path, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet file: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return nil, fmt.Errorf("wallet '%s' has no usable account", path)
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("unlock account: %w", err)
	}

	return acc, nil
}

// awaitStakeRecord polls the application log of the stake transfer until it
// is persisted and extracts the Stake notification of the gate contract from
// it.
func awaitStakeRecord(logger *zap.Logger, c *rpcclient.Client, gateHash util.Uint160, txHash util.Uint256) (stakeRecord, error) {
	var (
		appLog *result.ApplicationLog
		err    error
	)

	for i := 0; i < appLogAttempts; i++ {
		appLog, err = c.GetApplicationLog(txHash, nil)
		if err == nil {
			break
		}

		logger.Info("stake transfer is not yet persisted, waiting...",
			zap.Stringer("tx", txHash), zap.Duration("delay", appLogDelay))
		time.Sleep(appLogDelay)
	}
	if err != nil {
		return stakeRecord{}, fmt.Errorf("get application log: %w", err)
	}

	for i := range appLog.Executions {
		if appLog.Executions[i].VMState != vmstate.Halt {
			continue
		}

		for _, e := range appLog.Executions[i].Events {
			if e.ScriptHash != gateHash || e.Name != stakeEventName {
				continue
			}

			return parseStakeEvent(e.Item)
		}
	}

	return stakeRecord{}, fmt.Errorf("transaction has no '%s' notification of the gate contract", stakeEventName)
}

// parseStakeEvent extracts fields of the Stake notification:
// from, amount, registrant and the reference of the carrier transaction.
func parseStakeEvent(item *stackitem.Array) (stakeRecord, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return stakeRecord{}, fmt.Errorf("notification is not an array")
	}
	if len(arr) != 4 {
		return stakeRecord{}, fmt.Errorf("wrong number of notification elements: %d", len(arr))
	}

	var (
		rec stakeRecord
		err error
	)

	rec.from, err = hash160FromItem(arr[0])
	if err != nil {
		return stakeRecord{}, fmt.Errorf("field from: %w", err)
	}

	rec.amount, err = arr[1].TryInteger()
	if err != nil {
		return stakeRecord{}, fmt.Errorf("field amount: %w", err)
	}

	rec.registrant, err = hash160FromItem(arr[2])
	if err != nil {
		return stakeRecord{}, fmt.Errorf("field registrant: %w", err)
	}

	return rec, nil
}

func hash160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}
