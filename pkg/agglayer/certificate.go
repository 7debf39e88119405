package agglayer

// CertificateStatus is the lifecycle state reported by the AggLayer for a
// certificate header.
type CertificateStatus string

const (
	StatusPending   CertificateStatus = "Pending"
	StatusProven    CertificateStatus = "Proven"
	StatusCandidate CertificateStatus = "Candidate"
	StatusInError   CertificateStatus = "InError"
	StatusSettled   CertificateStatus = "Settled"
)

// CertificateHeader is a settlement-proof record for a rollup as returned by
// the interop_* endpoints.
type CertificateHeader struct {
	Height                uint64            `json:"height"`
	EpochNumber           *uint64           `json:"epoch_number"`
	CertificateIndex      *uint64           `json:"certificate_index"`
	CertificateID         string            `json:"certificate_id"`
	PrevLocalExitRoot     string            `json:"prev_local_exit_root"`
	NewLocalExitRoot      string            `json:"new_local_exit_root"`
	Metadata              string            `json:"metadata"`
	Status                CertificateStatus `json:"status"`
	SettlementTxHash      string            `json:"settlement_tx_hash"`
	SettlementBlockNumber uint64            `json:"settlement_block_number"`
}

// Settled reports whether the certificate has reached its final state.
func (h *CertificateHeader) Settled() bool {
	return h != nil && h.Status == StatusSettled
}

// CertificateData pairs the latest settled and pending headers for a rollup.
// Either side may be nil when the AggLayer has no certificate yet or the
// fetch failed.
type CertificateData struct {
	Settled *CertificateHeader `json:"settled"`
	Pending *CertificateHeader `json:"pending"`
}
