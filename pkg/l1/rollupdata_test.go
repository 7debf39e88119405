package l1

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-romero/agglayer-dashboard/pkg/l1/contracts"
)

func TestVerifierTypeClassification(t *testing.T) {
	tests := []struct {
		verifierType uint8
		tag          string
		friendly     string
	}{
		{0, "zkEVM", "zkEVM"},
		{1, "PP", "Pessimistic Proof (PP)"},
		{2, "ALGateway", "AggLayer Gateway"},
		{9, "Unknown", "Unknown (9)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tag, VerifierTypeTag(tt.verifierType))
		assert.Equal(t, tt.friendly, VerifierTypeFriendly(tt.verifierType))
	}
}

func TestNewRollupData(t *testing.T) {
	contractAddr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	consensusAddr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	verifierAddr := common.HexToAddress("0x3333333333333333333333333333333333333333")

	var vkey [32]byte
	vkey[31] = 0xab
	var genesis [32]byte
	genesis[0] = 0x01

	raw := contracts.RollupDataV2{
		RollupContract:     contractAddr,
		ChainID:            10101,
		Verifier:           common.HexToAddress("0x4444444444444444444444444444444444444444"),
		ForkID:             12,
		LastVerifiedBatch:  77,
		RollupTypeID:       3,
		RollupVerifierType: 1,
		ProgramVKey:        vkey,
	}
	typeData := &contracts.RollupTypeData{
		ConsensusImplementation: consensusAddr,
		Verifier:                verifierAddr,
		ForkID:                  12,
		RollupVerifierType:      1,
		Obsolete:                true,
		Genesis:                 genesis,
	}

	data := newRollupData(5, raw, typeData)

	assert.Equal(t, uint32(5), data.RollupID)
	assert.Equal(t, contractAddr.Hex(), data.RollupContract)
	assert.Equal(t, uint64(10101), data.ChainID)
	assert.Equal(t, uint64(77), data.LastVerifiedBatch)
	assert.Equal(t, "PP", data.Type)
	assert.Equal(t, "Pessimistic Proof (PP)", data.RollupVerifierTypeFriendly)

	// The type entry overrides the consensus implementation.
	assert.Equal(t, consensusAddr.Hex(), data.ConsensusImplementation)
	assert.Equal(t, consensusAddr.Hex(), data.RollupTypeConsensus)
	assert.Equal(t, verifierAddr.Hex(), data.Verifier)
	assert.True(t, data.Obsolete)

	// 32-byte values render as unprefixed hex
	assert.Equal(t, "00000000000000000000000000000000000000000000000000000000000000ab", data.ProgramVKey)
	assert.Equal(t, "0100000000000000000000000000000000000000000000000000000000000000", data.Genesis)

	assert.True(t, data.Active())
}

func TestNewRollupDataWithoutTypeDetails(t *testing.T) {
	verifier := common.HexToAddress("0x4444444444444444444444444444444444444444")
	raw := contracts.RollupDataV2{
		Verifier:           verifier,
		RollupVerifierType: 0,
	}

	data := newRollupData(1, raw, nil)

	// Falls back to the manager entry's verifier slot.
	assert.Equal(t, verifier.Hex(), data.ConsensusImplementation)
	assert.Equal(t, (common.Address{}).Hex(), data.Verifier)
	assert.Empty(t, data.Genesis)
	assert.Equal(t, "zkEVM", data.Type)

	require.False(t, data.Active())
}

func TestNewRollupDataZeroVKey(t *testing.T) {
	data := newRollupData(1, contracts.RollupDataV2{}, nil)
	assert.Empty(t, data.ProgramVKey, "all-zero program vkey must format as empty")
}
