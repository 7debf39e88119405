package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/xavier-romero/agglayer-dashboard/pkg/agglayer"
	"github.com/xavier-romero/agglayer-dashboard/pkg/core"
	"github.com/xavier-romero/agglayer-dashboard/pkg/l1"
)

// ErrRollupNotFound marks a rollup ID outside the registered range.
var ErrRollupNotFound = errors.New("rollup not found")

// rollupFetchParallelism bounds the concurrent per-rollup contract reads.
const rollupFetchParallelism = 8

const (
	cacheKeySummary = "summary"
	cacheKeyRollups = "rollups"
)

// L1Reader is the read surface of the L1 client the service needs.
type L1Reader interface {
	Connected(ctx context.Context) bool
	RollupCount(ctx context.Context) (uint32, error)
	Rollup(ctx context.Context, rollupID uint32) (*l1.RollupData, error)
	NetworkAddresses(ctx context.Context) (l1.NetworkAddresses, error)
	PreviousSettlement(ctx context.Context, rollupID uint32, beforeBlock uint64) (*l1.SettlementEvent, error)
	RPCURL() string
	ManagerAddress() string
}

// CertificateReader fetches AggLayer certificate data.
type CertificateReader interface {
	CertificateData(ctx context.Context, rollupID uint32) agglayer.CertificateData
	URL() string
}

// Summary is the environment overview shown on the home page.
type Summary struct {
	RollupManagerAddress string               `json:"rollupManagerAddress"`
	RPCURL               string               `json:"rpcURL"`
	AggLayerURL          string               `json:"aggLayerURL,omitempty"`
	RollupCount          uint32               `json:"rollupCount"`
	ActiveCounts         map[string]int       `json:"activeCounts"`
	IsConnected          bool                 `json:"isConnected"`
	NetworkAddresses     *l1.NetworkAddresses `json:"networkAddresses,omitempty"`
}

// RollupDetail is the full per-rollup view.
type RollupDetail struct {
	l1.RollupData
	Certificates      *agglayer.CertificateData `json:"certificates,omitempty"`
	RecentSettlements []l1.SettlementEvent      `json:"recentSettlements"`
	L2Config          *core.L2Config            `json:"l2Config,omitempty"`
}

// Service aggregates L1 and AggLayer state into dashboard views.
type Service struct {
	l1     L1Reader
	certs  CertificateReader // nil when no aggLayerURL is configured
	config *core.Config
	cache  *Cache // nil disables caching
}

// NewService wires the aggregation layer. certs and cache may be nil.
func NewService(l1Client L1Reader, certs CertificateReader, config *core.Config, cache *Cache) *Service {
	return &Service{
		l1:     l1Client,
		certs:  certs,
		config: config,
		cache:  cache,
	}
}

// Summary builds the environment overview.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var cached Summary
	if s.cache.Get(cacheKeySummary, &cached) {
		return &cached, nil
	}

	count, err := s.l1.RollupCount(ctx)
	if err != nil {
		return nil, err
	}

	rollups, err := s.Rollups(ctx)
	if err != nil {
		return nil, err
	}

	activeCounts := map[string]int{"zkEVM": 0, "Validium": 0, "PP": 0, "ALGateway": 0}
	for _, rollup := range rollups {
		if !rollup.IsActive {
			continue
		}
		if _, ok := activeCounts[rollup.Type]; ok {
			activeCounts[rollup.Type]++
		}
	}

	summary := &Summary{
		RollupManagerAddress: s.l1.ManagerAddress(),
		RPCURL:               s.l1.RPCURL(),
		RollupCount:          count,
		ActiveCounts:         activeCounts,
		IsConnected:          s.l1.Connected(ctx),
	}
	if s.certs != nil {
		summary.AggLayerURL = s.certs.URL()
	}

	if addresses, err := s.l1.NetworkAddresses(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to get network addresses")
	} else {
		summary.NetworkAddresses = &addresses
	}

	s.cache.Set(cacheKeySummary, summary)
	return summary, nil
}

// Rollups returns the view for every registered rollup, ordered by ID.
// Individual rollups that fail to load are skipped, matching the tolerant
// list behavior of the pages.
func (s *Service) Rollups(ctx context.Context) ([]l1.RollupData, error) {
	var cached []l1.RollupData
	if s.cache.Get(cacheKeyRollups, &cached) {
		return cached, nil
	}

	count, err := s.l1.RollupCount(ctx)
	if err != nil {
		return nil, err
	}

	// Rollup IDs are 1-based on the manager.
	results := make([]*l1.RollupData, count)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(rollupFetchParallelism)

	for rollupID := uint32(1); rollupID <= count; rollupID++ {
		rollupID := rollupID
		group.Go(func() error {
			data, err := s.l1.Rollup(groupCtx, rollupID)
			if err != nil {
				log.Warn().Uint32("rollup_id", rollupID).Err(err).Msg("Skipping rollup")
				return nil
			}
			results[rollupID-1] = data
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	rollups := make([]l1.RollupData, 0, count)
	for _, data := range results {
		if data != nil {
			rollups = append(rollups, *data)
		}
	}

	s.cache.Set(cacheKeyRollups, rollups)
	return rollups, nil
}

// Rollup builds the detail view for one rollup ID. The detail page bypasses
// the cache so operators always see fresh certificate state.
func (s *Service) Rollup(ctx context.Context, rollupID uint32) (*RollupDetail, error) {
	count, err := s.l1.RollupCount(ctx)
	if err != nil {
		return nil, err
	}
	if rollupID < 1 || rollupID > count {
		return nil, fmt.Errorf("%w: %d", ErrRollupNotFound, rollupID)
	}

	data, err := s.l1.Rollup(ctx, rollupID)
	if err != nil {
		return nil, err
	}

	detail := &RollupDetail{
		RollupData:        *data,
		RecentSettlements: []l1.SettlementEvent{},
		L2Config:          s.config.L2RPC(strconv.FormatUint(uint64(rollupID), 10)),
	}

	if s.certs != nil {
		certificates := s.certs.CertificateData(ctx, rollupID)
		detail.Certificates = &certificates

		// Walk back from the settled certificate to the previous settlement.
		if certificates.Settled != nil && certificates.Settled.SettlementBlockNumber > 0 {
			settlement, err := s.l1.PreviousSettlement(ctx, rollupID, certificates.Settled.SettlementBlockNumber)
			if err != nil {
				log.Warn().Uint32("rollup_id", rollupID).Err(err).Msg("Failed to find previous settlement")
			} else if settlement != nil {
				detail.RecentSettlements = append(detail.RecentSettlements, *settlement)
			}
		}
	}

	return detail, nil
}
