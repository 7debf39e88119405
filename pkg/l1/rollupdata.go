package l1

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/xavier-romero/agglayer-dashboard/pkg/l1/contracts"
	"github.com/xavier-romero/agglayer-dashboard/pkg/util"
)

// Verifier type values used by the rollup manager.
const (
	VerifierTypeZkEVM       = 0
	VerifierTypePessimistic = 1
	VerifierTypeALGateway   = 2
)

// VerifierTypeTag returns the short classification used for badges and
// summary counts.
func VerifierTypeTag(verifierType uint8) string {
	switch verifierType {
	case VerifierTypeZkEVM:
		return "zkEVM"
	case VerifierTypePessimistic:
		return "PP"
	case VerifierTypeALGateway:
		return "ALGateway"
	default:
		return "Unknown"
	}
}

// VerifierTypeFriendly returns the human-readable verifier type name.
func VerifierTypeFriendly(verifierType uint8) string {
	switch verifierType {
	case VerifierTypeZkEVM:
		return "zkEVM"
	case VerifierTypePessimistic:
		return "Pessimistic Proof (PP)"
	case VerifierTypeALGateway:
		return "AggLayer Gateway"
	default:
		return fmt.Sprintf("Unknown (%d)", verifierType)
	}
}

// RollupData is the dashboard view of a single rollup, combining the rollup
// manager entry, its rollup type entry and the consensus contract views.
type RollupData struct {
	RollupID                   uint32 `json:"rollupID"`
	RollupContract             string `json:"rollupContract"`
	ChainID                    uint64 `json:"chainID"`
	ConsensusImplementation    string `json:"consensusImplementation"`
	ForkID                     uint64 `json:"forkID"`
	LastVerifiedBatch          uint64 `json:"lastVerifiedBatch"`
	RollupTypeID               uint64 `json:"rollupTypeID"`
	RollupVerifierType         uint8  `json:"rollupVerifierType"`
	RollupVerifierTypeFriendly string `json:"rollupVerifierTypeFriendly"`
	Type                       string `json:"type"`
	ProgramVKey                string `json:"programVKey"`

	// Rollup type entry
	RollupTypeConsensus    string `json:"rollupTypeConsensus"`
	Verifier               string `json:"verifier"`
	RollupTypeForkID       uint64 `json:"rollupTypeForkID"`
	RollupTypeVerifierType uint8  `json:"rollupTypeVerifierType"`
	Obsolete               bool   `json:"obsolete"`
	Genesis                string `json:"genesis"`
	RollupTypeProgramVKey  string `json:"rollupTypeProgramVKey"`

	// Consensus contract views, populated only for deployed rollups
	NetworkName         string `json:"networkName"`
	TrustedSequencer    string `json:"trustedSequencer,omitempty"`
	TrustedSequencerURL string `json:"trustedSequencerURL"`
	IsActive            bool   `json:"isActive"`
}

// Active reports whether the rollup has a deployed consensus contract.
func (r *RollupData) Active() bool {
	return r.RollupContract != (common.Address{}).Hex()
}

// newRollupData maps the raw contract tuples to the dashboard view.
// typeData may be nil when the rollup type lookup failed; the view then
// keeps the manager entry's verifier address as consensus implementation.
func newRollupData(rollupID uint32, raw contracts.RollupDataV2, typeData *contracts.RollupTypeData) *RollupData {
	data := &RollupData{
		RollupID:                   rollupID,
		RollupContract:             raw.RollupContract.Hex(),
		ChainID:                    raw.ChainID,
		ConsensusImplementation:    raw.Verifier.Hex(),
		ForkID:                     raw.ForkID,
		LastVerifiedBatch:          raw.LastVerifiedBatch,
		RollupTypeID:               raw.RollupTypeID,
		RollupVerifierType:         raw.RollupVerifierType,
		RollupVerifierTypeFriendly: VerifierTypeFriendly(raw.RollupVerifierType),
		Type:                       VerifierTypeTag(raw.RollupVerifierType),
		ProgramVKey:                util.Hash32Hex(raw.ProgramVKey),
		Verifier:                   (common.Address{}).Hex(),
	}

	if typeData != nil {
		// The type entry carries the real consensus implementation; the
		// manager entry's verifier slot is stale for typed rollups.
		data.ConsensusImplementation = typeData.ConsensusImplementation.Hex()
		data.RollupTypeConsensus = typeData.ConsensusImplementation.Hex()
		data.Verifier = typeData.Verifier.Hex()
		data.RollupTypeForkID = typeData.ForkID
		data.RollupTypeVerifierType = typeData.RollupVerifierType
		data.Obsolete = typeData.Obsolete
		data.Genesis = util.Hash32Hex(typeData.Genesis)
		data.RollupTypeProgramVKey = util.Hash32Hex(typeData.ProgramVKey)
	}

	return data
}

// NetworkAddresses are the key contract addresses of the environment.
type NetworkAddresses struct {
	RollupManagerAddress   string `json:"rollupManagerAddress"`
	BridgeAddress          string `json:"bridgeAddress"`
	GlobalExitRootManager  string `json:"globalExitRootManager"`
	PolAddress             string `json:"polAddress"`
	AggLayerGatewayAddress string `json:"aggLayerGatewayAddress,omitempty"`
}

// SettlementEvent is a settlement observed on the rollup manager.
type SettlementEvent struct {
	Event       string `json:"event"`
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	Timestamp   uint64 `json:"timestamp"`
}
