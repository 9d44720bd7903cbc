package ledger

import (
	"context"
	"log/slog"
	"math"

	"github.com/Qyuzet/onecarbon/internal/common"
)

// Recorder turns per-document footprints into ledger deposits.
type Recorder struct {
	ledger Ledger
	logger *slog.Logger
}

func NewRecorder(l Ledger, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{ledger: l, logger: logger}
}

// FloorDeposits converts display footprints to the ledger's integral
// domain. Floats stay floats everywhere else; this is the single place
// precision is dropped.
func FloorDeposits(footprints []float64) []int64 {
	out := make([]int64, len(footprints))
	for i, f := range footprints {
		if f < 0 {
			f = 0
		}
		out[i] = int64(math.Floor(f))
	}
	return out
}

// Record appends one deposit per analyzed document, in document order.
// The identity must already be registered; a failed append surfaces as
// ErrLedger but never invalidates the aggregate that produced it.
func (r *Recorder) Record(ctx context.Context, company string, footprints []float64) (string, error) {
	ok, err := r.ledger.IsRegistered(ctx, company)
	if err != nil {
		return "", common.NewAppError("LEDGER_ERROR", "checking registration", common.ErrLedger)
	}
	if !ok {
		return "", common.NewAppError("NOT_REGISTERED", "company "+company+" is not registered", common.ErrNotRegistered)
	}

	deposits := FloorDeposits(footprints)
	txID, err := r.ledger.AppendDeposits(ctx, company, deposits)
	if err != nil {
		r.logger.Error("ledger append failed", "company", company, "deposits", len(deposits), "error", err)
		return "", common.NewAppError("LEDGER_ERROR", "appending deposits", common.ErrLedger)
	}
	r.logger.Info("deposits recorded", "company", company, "deposits", len(deposits), "tx_id", txID)
	return txID, nil
}
