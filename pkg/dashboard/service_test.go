package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavier-romero/agglayer-dashboard/pkg/agglayer"
	"github.com/xavier-romero/agglayer-dashboard/pkg/core"
	"github.com/xavier-romero/agglayer-dashboard/pkg/l1"
)

type fakeL1 struct {
	connected   bool
	rollups     map[uint32]*l1.RollupData
	count       uint32
	failing     map[uint32]bool
	addresses   l1.NetworkAddresses
	settlements map[uint32]*l1.SettlementEvent

	settlementBefore uint64
	rollupCalls      atomic.Int32
}

func (f *fakeL1) Connected(ctx context.Context) bool { return f.connected }

func (f *fakeL1) RollupCount(ctx context.Context) (uint32, error) { return f.count, nil }

func (f *fakeL1) Rollup(ctx context.Context, rollupID uint32) (*l1.RollupData, error) {
	f.rollupCalls.Add(1)
	if f.failing[rollupID] {
		return nil, errors.New("execution reverted")
	}
	data, ok := f.rollups[rollupID]
	if !ok {
		return nil, errors.New("no data")
	}
	return data, nil
}

func (f *fakeL1) NetworkAddresses(ctx context.Context) (l1.NetworkAddresses, error) {
	return f.addresses, nil
}

func (f *fakeL1) PreviousSettlement(ctx context.Context, rollupID uint32, beforeBlock uint64) (*l1.SettlementEvent, error) {
	f.settlementBefore = beforeBlock
	return f.settlements[rollupID], nil
}

func (f *fakeL1) RPCURL() string         { return "http://l1.example" }
func (f *fakeL1) ManagerAddress() string { return "0x5132A183E9F3CB7C848b0AAC5Ae0c4f0491B7aB2" }

type fakeCerts struct {
	data map[uint32]agglayer.CertificateData
}

func (f *fakeCerts) CertificateData(ctx context.Context, rollupID uint32) agglayer.CertificateData {
	return f.data[rollupID]
}

func (f *fakeCerts) URL() string { return "http://agglayer.example" }

func activeRollup(id uint32, typeTag string) *l1.RollupData {
	return &l1.RollupData{
		RollupID:       id,
		RollupContract: "0x1111111111111111111111111111111111111111",
		NetworkName:    "net",
		Type:           typeTag,
		IsActive:       true,
	}
}

func newTestService(t *testing.T, l1Client L1Reader, certs CertificateReader) *Service {
	t.Helper()
	config := core.DefaultConfig()
	config.L2RPCs = map[string]core.L2Config{
		"2": {RPC: "http://l2.example", BlockExplorer: "http://explorer.example"},
	}
	return NewService(l1Client, certs, config, nil)
}

func TestSummaryCountsActiveByType(t *testing.T) {
	fake := &fakeL1{
		connected: true,
		count:     4,
		rollups: map[uint32]*l1.RollupData{
			1: activeRollup(1, "zkEVM"),
			2: activeRollup(2, "PP"),
			3: activeRollup(3, "PP"),
			4: {RollupID: 4, Type: "zkEVM", IsActive: false, NetworkName: "Rollup 4"},
		},
		addresses: l1.NetworkAddresses{BridgeAddress: "0xbridge"},
	}

	summary, err := newTestService(t, fake, &fakeCerts{}).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(4), summary.RollupCount)
	assert.True(t, summary.IsConnected)
	assert.Equal(t, 1, summary.ActiveCounts["zkEVM"])
	assert.Equal(t, 2, summary.ActiveCounts["PP"])
	assert.Equal(t, 0, summary.ActiveCounts["ALGateway"])
	assert.Equal(t, "http://agglayer.example", summary.AggLayerURL)
	require.NotNil(t, summary.NetworkAddresses)
	assert.Equal(t, "0xbridge", summary.NetworkAddresses.BridgeAddress)
}

func TestRollupsSkipsFailingEntries(t *testing.T) {
	fake := &fakeL1{
		count: 3,
		rollups: map[uint32]*l1.RollupData{
			1: activeRollup(1, "zkEVM"),
			3: activeRollup(3, "PP"),
		},
		failing: map[uint32]bool{2: true},
	}

	rollups, err := newTestService(t, fake, nil).Rollups(context.Background())
	require.NoError(t, err)

	require.Len(t, rollups, 2)
	assert.Equal(t, uint32(1), rollups[0].RollupID)
	assert.Equal(t, uint32(3), rollups[1].RollupID)
}

func TestRollupNotFound(t *testing.T) {
	fake := &fakeL1{count: 2}
	service := newTestService(t, fake, nil)

	_, err := service.Rollup(context.Background(), 0)
	require.ErrorIs(t, err, ErrRollupNotFound)

	_, err = service.Rollup(context.Background(), 3)
	require.ErrorIs(t, err, ErrRollupNotFound)
}

func TestRollupDetailWithCertificates(t *testing.T) {
	fake := &fakeL1{
		count:   2,
		rollups: map[uint32]*l1.RollupData{2: activeRollup(2, "PP")},
		settlements: map[uint32]*l1.SettlementEvent{
			2: {Event: "VerifyPessimisticStateTransition", TxHash: "0xdead", BlockNumber: 900},
		},
	}
	certs := &fakeCerts{data: map[uint32]agglayer.CertificateData{
		2: {
			Settled: &agglayer.CertificateHeader{Status: agglayer.StatusSettled, SettlementBlockNumber: 1000},
			Pending: &agglayer.CertificateHeader{Status: agglayer.StatusPending},
		},
	}}

	detail, err := newTestService(t, fake, certs).Rollup(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, detail.Certificates)
	assert.True(t, detail.Certificates.Settled.Settled())

	// Settlement scan is seeded from the settled certificate's block.
	assert.Equal(t, uint64(1000), fake.settlementBefore)
	require.Len(t, detail.RecentSettlements, 1)
	assert.Equal(t, "0xdead", detail.RecentSettlements[0].TxHash)

	require.NotNil(t, detail.L2Config)
	assert.Equal(t, "http://l2.example", detail.L2Config.RPC)
}

func TestRollupDetailWithoutAggLayer(t *testing.T) {
	fake := &fakeL1{
		count:   1,
		rollups: map[uint32]*l1.RollupData{1: activeRollup(1, "zkEVM")},
	}

	detail, err := newTestService(t, fake, nil).Rollup(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, detail.Certificates)
	assert.Empty(t, detail.RecentSettlements)
	assert.Nil(t, detail.L2Config)
}

func TestRollupDetailNoSettledCertificate(t *testing.T) {
	fake := &fakeL1{
		count:   1,
		rollups: map[uint32]*l1.RollupData{1: activeRollup(1, "PP")},
	}
	certs := &fakeCerts{data: map[uint32]agglayer.CertificateData{
		1: {Pending: &agglayer.CertificateHeader{Status: agglayer.StatusProven}},
	}}

	detail, err := newTestService(t, fake, certs).Rollup(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, detail.RecentSettlements)
	assert.Zero(t, fake.settlementBefore, "settlement scan must not run without a settled certificate")
}

func TestRollupsCached(t *testing.T) {
	fake := &fakeL1{
		count:   1,
		rollups: map[uint32]*l1.RollupData{1: activeRollup(1, "zkEVM")},
	}

	cache, err := NewCache(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	service := NewService(fake, nil, core.DefaultConfig(), cache)

	_, err = service.Rollups(context.Background())
	require.NoError(t, err)
	first := fake.rollupCalls.Load()

	_, err = service.Rollups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, fake.rollupCalls.Load(), "second listing must be served from cache")
}
