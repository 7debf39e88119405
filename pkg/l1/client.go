package l1

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/xavier-romero/agglayer-dashboard/pkg/core"
	"github.com/xavier-romero/agglayer-dashboard/pkg/l1/contracts"
	"github.com/xavier-romero/agglayer-dashboard/pkg/metrics"
	"github.com/xavier-romero/agglayer-dashboard/pkg/retry"
)

// maxScanWindows bounds the backward settlement-log scan so a rollup with no
// settlements cannot walk the whole chain on every page load.
const maxScanWindows = 20

// Client is a read-only Ethereum L1 client for the rollup manager.
type Client struct {
	eth         *ethclient.Client
	manager     *contracts.RollupManager
	managerAddr common.Address
	managerABI  abi.ABI

	rpcURL          string
	deploymentBlock uint64
	scanBatchSize   uint64
	policy          retry.Policy
}

// NewClient connects to the L1 RPC endpoint and binds the rollup manager.
func NewClient(config *core.Config) (*Client, error) {
	ethClient, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum node: %v", err)
	}

	managerAddr := config.ManagerAddress()
	manager, err := contracts.NewRollupManager(managerAddr, ethClient)
	if err != nil {
		return nil, fmt.Errorf("failed to bind rollup manager contract: %v", err)
	}

	managerABI, err := abi.JSON(strings.NewReader(contracts.RollupManagerABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rollup manager ABI: %v", err)
	}

	log.Info().Str("rpc", config.RPCURL).Str("rollup_manager", managerAddr.Hex()).
		Msg("Initialized L1 client")

	return &Client{
		eth:             ethClient,
		manager:         manager,
		managerAddr:     managerAddr,
		managerABI:      managerABI,
		rpcURL:          config.RPCURL,
		deploymentBlock: config.RollupManagerContractDeploymentBlock,
		scanBatchSize:   config.ScanBatchSize,
		policy: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    2 * time.Second,
			Jitter:      100 * time.Millisecond,
			OnRetry: func(attempt int, wait time.Duration, err error) {
				log.Warn().Int("attempt", attempt).Dur("wait", wait).Err(err).
					Msg("Retrying L1 request")
			},
		},
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// RPCURL returns the configured L1 endpoint.
func (c *Client) RPCURL() string {
	return c.rpcURL
}

// ManagerAddress returns the rollup manager contract address.
func (c *Client) ManagerAddress() string {
	return c.managerAddr.Hex()
}

func (c *Client) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := retry.Do(ctx, c.policy, fn)
	metrics.ObserveUpstream("l1", method, start, err)
	return err
}

// Connected probes the RPC endpoint with an eth_blockNumber call.
func (c *Client) Connected(ctx context.Context) bool {
	var blockNumber uint64
	err := c.call(ctx, "eth_blockNumber", func(ctx context.Context) error {
		var callErr error
		blockNumber, callErr = c.eth.BlockNumber(ctx)
		return callErr
	})
	if err != nil {
		log.Warn().Str("rpc", c.rpcURL).Err(err).Msg("L1 connection check failed")
		return false
	}
	log.Debug().Uint64("block", blockNumber).Msg("L1 connection check succeeded")
	return true
}

// RollupCount returns the number of rollups registered on the manager.
func (c *Client) RollupCount(ctx context.Context) (uint32, error) {
	var count uint32
	err := c.call(ctx, "rollupCount", func(ctx context.Context) error {
		var callErr error
		count, callErr = c.manager.RollupCount(&bind.CallOpts{Context: ctx})
		return callErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get rollup count: %v", err)
	}
	return count, nil
}

// Rollup returns the combined dashboard view for one rollup ID.
func (c *Client) Rollup(ctx context.Context, rollupID uint32) (*RollupData, error) {
	var raw contracts.RollupDataV2
	err := c.call(ctx, "rollupIDToRollupDataV2", func(ctx context.Context) error {
		var callErr error
		raw, callErr = c.manager.RollupIDToRollupDataV2(&bind.CallOpts{Context: ctx}, rollupID)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rollup data for ID %d: %v", rollupID, err)
	}

	data := newRollupData(rollupID, raw, c.rollupTypeDetails(ctx, raw.RollupTypeID))

	if data.Active() {
		c.fillConsensusViews(ctx, data, raw.RollupContract)
	} else {
		data.NetworkName = fmt.Sprintf("Rollup %d", rollupID)
		data.IsActive = false
	}

	return data, nil
}

// rollupTypeDetails fetches the rollup type entry. Failures degrade to nil;
// the rollup view is still served without them.
func (c *Client) rollupTypeDetails(ctx context.Context, rollupTypeID uint64) *contracts.RollupTypeData {
	var typeData contracts.RollupTypeData
	err := c.call(ctx, "rollupTypeMap", func(ctx context.Context) error {
		var callErr error
		typeData, callErr = c.manager.RollupTypeMap(&bind.CallOpts{Context: ctx}, uint32(rollupTypeID))
		return callErr
	})
	if err != nil {
		log.Warn().Uint64("rollup_type_id", rollupTypeID).Err(err).
			Msg("Could not get rollup type details")
		return nil
	}
	return &typeData
}

// fillConsensusViews reads networkName/trustedSequencer* from the rollup's
// consensus contract. Each view degrades independently.
func (c *Client) fillConsensusViews(ctx context.Context, data *RollupData, contractAddr common.Address) {
	data.IsActive = true
	data.NetworkName = "Unknown"

	rollup, err := contracts.NewRollup(contractAddr, c.eth)
	if err != nil {
		log.Warn().Str("contract", contractAddr.Hex()).Err(err).Msg("Failed to bind rollup contract")
		return
	}

	err = c.call(ctx, "networkName", func(ctx context.Context) error {
		name, callErr := rollup.NetworkName(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		data.NetworkName = name
		return nil
	})
	if err != nil {
		log.Warn().Str("contract", contractAddr.Hex()).Err(err).Msg("Failed to get network name")
	}

	err = c.call(ctx, "trustedSequencer", func(ctx context.Context) error {
		sequencer, callErr := rollup.TrustedSequencer(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		data.TrustedSequencer = sequencer.Hex()
		return nil
	})
	if err != nil {
		log.Warn().Str("contract", contractAddr.Hex()).Err(err).Msg("Failed to get trusted sequencer")
	}

	err = c.call(ctx, "trustedSequencerURL", func(ctx context.Context) error {
		url, callErr := rollup.TrustedSequencerURL(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		data.TrustedSequencerURL = url
		return nil
	})
	if err != nil {
		log.Warn().Str("contract", contractAddr.Hex()).Err(err).Msg("Failed to get trusted sequencer URL")
	}
}

// NetworkAddresses returns the key contract addresses of the environment.
// The AggLayer gateway is optional and absent on older deployments.
func (c *Client) NetworkAddresses(ctx context.Context) (NetworkAddresses, error) {
	addresses := NetworkAddresses{RollupManagerAddress: c.managerAddr.Hex()}

	err := c.call(ctx, "bridgeAddress", func(ctx context.Context) error {
		addr, callErr := c.manager.BridgeAddress(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		addresses.BridgeAddress = addr.Hex()
		return nil
	})
	if err != nil {
		return addresses, fmt.Errorf("failed to get bridge address: %v", err)
	}

	err = c.call(ctx, "globalExitRootManager", func(ctx context.Context) error {
		addr, callErr := c.manager.GlobalExitRootManager(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		addresses.GlobalExitRootManager = addr.Hex()
		return nil
	})
	if err != nil {
		return addresses, fmt.Errorf("failed to get global exit root manager: %v", err)
	}

	err = c.call(ctx, "pol", func(ctx context.Context) error {
		addr, callErr := c.manager.Pol(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		addresses.PolAddress = addr.Hex()
		return nil
	})
	if err != nil {
		return addresses, fmt.Errorf("failed to get POL address: %v", err)
	}

	err = c.call(ctx, "aggLayerGateway", func(ctx context.Context) error {
		addr, callErr := c.manager.AggLayerGateway(&bind.CallOpts{Context: ctx})
		if callErr != nil {
			return callErr
		}
		addresses.AggLayerGatewayAddress = addr.Hex()
		return nil
	})
	if err != nil {
		// Not present on all networks.
		log.Debug().Err(err).Msg("AggLayer gateway not available")
	}

	return addresses, nil
}

// PreviousSettlement scans rollup manager logs backwards from beforeBlock
// for the most recent settlement event of the given rollup. It returns nil
// when no event is found within the scan bounds.
func (c *Client) PreviousSettlement(ctx context.Context, rollupID uint32, beforeBlock uint64) (*SettlementEvent, error) {
	if beforeBlock == 0 || beforeBlock <= c.deploymentBlock {
		return nil, nil
	}

	verifyBatches := c.managerABI.Events["VerifyBatchesTrustedAggregator"].ID
	verifyPessimistic := c.managerABI.Events["VerifyPessimisticStateTransition"].ID
	rollupTopic := common.BigToHash(big.NewInt(int64(rollupID)))

	to := beforeBlock - 1
	for window := 0; window < maxScanWindows && to >= c.deploymentBlock; window++ {
		from := c.deploymentBlock
		if to >= c.scanBatchSize && to-c.scanBatchSize+1 > from {
			from = to - c.scanBatchSize + 1
		}

		var logs []types.Log
		err := c.call(ctx, "eth_getLogs", func(ctx context.Context) error {
			var callErr error
			logs, callErr = c.eth.FilterLogs(ctx, ethereum.FilterQuery{
				FromBlock: new(big.Int).SetUint64(from),
				ToBlock:   new(big.Int).SetUint64(to),
				Addresses: []common.Address{c.managerAddr},
				Topics: [][]common.Hash{
					{verifyBatches, verifyPessimistic},
					{rollupTopic},
				},
			})
			return callErr
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement logs [%d, %d]: %v", from, to, err)
		}

		if len(logs) > 0 {
			return c.settlementFromLog(ctx, pickLatest(logs), verifyBatches)
		}

		if from == c.deploymentBlock || from == 0 {
			break
		}
		to = from - 1
	}

	return nil, nil
}

// pickLatest returns the log with the highest (block, index) position.
func pickLatest(logs []types.Log) types.Log {
	latest := logs[0]
	for _, l := range logs[1:] {
		if l.BlockNumber > latest.BlockNumber ||
			(l.BlockNumber == latest.BlockNumber && l.Index > latest.Index) {
			latest = l
		}
	}
	return latest
}

func (c *Client) settlementFromLog(ctx context.Context, l types.Log, verifyBatchesID common.Hash) (*SettlementEvent, error) {
	name := "VerifyPessimisticStateTransition"
	if len(l.Topics) > 0 && l.Topics[0] == verifyBatchesID {
		name = "VerifyBatchesTrustedAggregator"
	}

	settlement := &SettlementEvent{
		Event:       name,
		TxHash:      l.TxHash.Hex(),
		BlockNumber: l.BlockNumber,
	}

	err := c.call(ctx, "eth_getHeaderByNumber", func(ctx context.Context) error {
		header, callErr := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(l.BlockNumber))
		if callErr != nil {
			return callErr
		}
		settlement.Timestamp = header.Time
		return nil
	})
	if err != nil {
		// The event itself is still useful without a timestamp.
		log.Warn().Uint64("block", l.BlockNumber).Err(err).Msg("Failed to get settlement block header")
	}

	return settlement, nil
}
