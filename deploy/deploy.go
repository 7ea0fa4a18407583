// Package deploy provides the initial deployment procedure of the whistle
// contract suite to a Neo blockchain network.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error if the requested
	// contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the Whistle Token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	// Minters is an initial mint allowlist. The Reports contract is added to
	// the allowlist automatically after its deployment.
	Minters []util.Uint160
}

// IdentityContractPrm groups deployment parameters of the Identity contract.
type IdentityContractPrm struct {
	Common CommonDeployPrm
}

// StakeGateContractPrm groups deployment parameters of the Stake Gate contract.
type StakeGateContractPrm struct {
	Common CommonDeployPrm
}

// ReportsContractPrm groups deployment parameters of the Reports contract.
type ReportsContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the whistle contract suite deployment.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the suite is deployed to.
	Blockchain Blockchain

	// CommitteeAccount signs deployment and wiring transactions. It must be
	// unlocked and must satisfy the committee witness of the target network,
	// otherwise post-deploy wiring fails.
	CommitteeAccount *wallet.Account

	TokenContract     TokenContractPrm
	IdentityContract  IdentityContractPrm
	StakeGateContract StakeGateContractPrm
	ReportsContract   ReportsContractPrm
}

// Deploy deploys the whistle contract suite represented by given Prm to the
// Neo network in dependency order (Token, Identity, Stake Gate, Reports) and
// wires the contracts together: the Identity contract learns the Stake Gate
// address and the Reports contract is allowlisted as a token minter.
//
// Deploy is idempotent: contracts that are already on the chain are reused,
// the minter allowlist entry is not duplicated. Deployment progress is logged.
func Deploy(ctx context.Context, prm Prm) error {
	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}
	if prm.Blockchain == nil {
		return errors.New("missing blockchain client")
	}
	if prm.CommitteeAccount == nil {
		return errors.New("missing committee account")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.CommitteeAccount)
	if err != nil {
		return fmt.Errorf("init transaction sender from the committee account: %w", err)
	}

	d := deployer{
		ctx:        ctx,
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		management: management.New(act),
		sender:     prm.CommitteeAccount.ScriptHash(),
	}

	minters := make([]any, len(prm.TokenContract.Minters))
	for i := range prm.TokenContract.Minters {
		minters[i] = prm.TokenContract.Minters[i]
	}

	tokenAddress, err := d.deployContract(prm.TokenContract.Common, []any{minters})
	if err != nil {
		return err
	}

	identityAddress, err := d.deployContract(prm.IdentityContract.Common, []any{nil})
	if err != nil {
		return err
	}

	stakeGateAddress, err := d.deployContract(prm.StakeGateContract.Common,
		[]any{tokenAddress, identityAddress})
	if err != nil {
		return err
	}

	reportsAddress, err := d.deployContract(prm.ReportsContract.Common,
		[]any{identityAddress, tokenAddress})
	if err != nil {
		return err
	}

	prm.Logger.Info("wiring the Stake Gate contract into the Identity contract...",
		zap.Stringer("address", stakeGateAddress))

	err = d.call(identityAddress, "setStakeGate", stakeGateAddress)
	if err != nil {
		return fmt.Errorf("set Stake Gate address in the Identity contract: %w", err)
	}

	isMinter, err := unwrap.Bool(invoker.New(prm.Blockchain, nil).
		Call(tokenAddress, "isMinter", reportsAddress))
	if err != nil {
		return fmt.Errorf("read minter allowlist of the Token contract: %w", err)
	}

	if isMinter {
		prm.Logger.Info("Reports contract is already allowlisted as a token minter")
	} else {
		err = d.call(tokenAddress, "addMinter", reportsAddress)
		if err != nil {
			return fmt.Errorf("allowlist the Reports contract as a token minter: %w", err)
		}

		prm.Logger.Info("Reports contract successfully allowlisted as a token minter",
			zap.Stringer("address", reportsAddress))
	}

	prm.Logger.Info("whistle contract suite successfully deployed",
		zap.Stringer("token", tokenAddress),
		zap.Stringer("identity", identityAddress),
		zap.Stringer("stakeGate", stakeGateAddress),
		zap.Stringer("reports", reportsAddress))

	return nil
}

type deployer struct {
	ctx        context.Context
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	management *management.Contract
	sender     util.Uint160
}

// deployContract deploys a contract with the given deployment data unless it
// is already on the chain, in which case the existing contract is reused.
func (d *deployer) deployContract(c CommonDeployPrm, data []any) (util.Uint160, error) {
	address := state.CreateContractHash(d.sender, c.NEF.Checksum, c.Manifest.Name)

	alreadyOnChain, err := d.blockchain.GetContractStateByHash(address)
	if err == nil && alreadyOnChain != nil {
		d.logger.Info("contract is already on the chain, skip deployment",
			zap.String("name", c.Manifest.Name), zap.Stringer("address", address))
		return address, nil
	}

	if err := d.ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	d.logger.Info("deploying contract...", zap.String("name", c.Manifest.Name))

	txHash, vub, err := d.management.Deploy(&c.NEF, &c.Manifest, data)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction of the '%s' contract: %w", c.Manifest.Name, err)
	}

	res, err := d.actor.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction of the '%s' contract: %w", c.Manifest.Name, err)
	}
	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction of the '%s' contract failed: %s", c.Manifest.Name, res.FaultException)
	}

	d.logger.Info("contract successfully deployed",
		zap.String("name", c.Manifest.Name), zap.Stringer("address", address))

	return address, nil
}

// call sends a state-changing contract invocation and waits for it to persist
// successfully.
func (d *deployer) call(contract util.Uint160, method string, args ...any) error {
	txHash, vub, err := d.actor.SendCall(contract, method, args...)
	if err != nil {
		return fmt.Errorf("send '%s' transaction: %w", method, err)
	}

	res, err := d.actor.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for '%s' transaction: %w", method, err)
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("'%s' transaction failed: %s", method, res.FaultException)
	}

	return nil
}
