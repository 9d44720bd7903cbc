package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Qyuzet/onecarbon/gen/ent"
	entcompany "github.com/Qyuzet/onecarbon/gen/ent/company"
	entledgerentry "github.com/Qyuzet/onecarbon/gen/ent/ledgerentry"
)

// EntLedger is the datastore-backed ledger. Per-company running totals
// live here, never in process memory between requests.
type EntLedger struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEntLedger(entc *ent.Client, logger *slog.Logger) *EntLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntLedger{ent: entc, logger: logger}
}

func (l *EntLedger) Register(ctx context.Context, name string) (bool, error) {
	exists, err := l.IsRegistered(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := l.ent.Company.Create().SetName(name).Save(ctx); err != nil {
		l.logger.Error("failed to register company", "company", name, "error", err)
		return false, err
	}
	l.logger.Info("company registered", "company", name)
	return true, nil
}

func (l *EntLedger) IsRegistered(ctx context.Context, name string) (bool, error) {
	return l.ent.Company.Query().
		Where(entcompany.Name(name)).
		Exist(ctx)
}

func (l *EntLedger) AppendDeposits(ctx context.Context, name string, deposits []int64) (string, error) {
	row, err := l.ent.Company.Query().
		Where(entcompany.Name(name)).
		Only(ctx)
	if err != nil {
		return "", err
	}

	txID := uuid.New().String()
	if _, err := l.ent.LedgerEntry.Create().
		SetCompanyID(row.ID).
		SetDeposits(deposits).
		SetTransactionID(txID).
		Save(ctx); err != nil {
		l.logger.Error("failed to append deposits", "company", name, "error", err)
		return "", err
	}
	return txID, nil
}

func (l *EntLedger) Total(ctx context.Context, name string) (int64, error) {
	row, err := l.ent.Company.Query().
		Where(entcompany.Name(name)).
		Only(ctx)
	if err != nil {
		return 0, err
	}
	entries, err := l.ent.LedgerEntry.Query().
		Where(entledgerentry.CompanyID(row.ID)).
		All(ctx)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, e := range entries {
		for _, d := range e.Deposits {
			sum += d
		}
	}
	return sum, nil
}
