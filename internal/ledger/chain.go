package ledger

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// ChainLedger speaks to the carbon-tracking contract through an
// injected Wallet. It never constructs calldata; the wallet owns
// signing, encoding, and confirmation.
type ChainLedger struct {
	wallet   Wallet
	contract string
	logger   *slog.Logger
}

func NewChainLedger(wallet Wallet, contractAddress string, logger *slog.Logger) *ChainLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChainLedger{wallet: wallet, contract: contractAddress, logger: logger}
}

func (c *ChainLedger) Register(ctx context.Context, name string) (bool, error) {
	registered, err := c.IsRegistered(ctx, name)
	if err != nil {
		return false, err
	}
	if registered {
		return false, nil
	}
	txHash, err := c.wallet.Send(ctx, Transaction{
		To:     c.contract,
		Method: "registerCompany",
		Args:   []any{name},
	})
	if err != nil {
		return false, err
	}
	c.logger.Info("company registered on chain", "company", name, "tx", txHash)
	return true, nil
}

func (c *ChainLedger) IsRegistered(ctx context.Context, name string) (bool, error) {
	out, err := c.wallet.Call(ctx, Transaction{
		To:     c.contract,
		Method: "isRegistered",
		Args:   []any{name},
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(out), "true"), nil
}

func (c *ChainLedger) AppendDeposits(ctx context.Context, name string, deposits []int64) (string, error) {
	txHash, err := c.wallet.Send(ctx, Transaction{
		To:     c.contract,
		Method: "depositCarbon",
		Args:   []any{name, deposits},
	})
	if err != nil {
		return "", err
	}
	c.logger.Info("deposits sent to chain", "company", name, "count", len(deposits), "tx", txHash)
	return txHash, nil
}

func (c *ChainLedger) Total(ctx context.Context, name string) (int64, error) {
	out, err := c.wallet.Call(ctx, Transaction{
		To:     c.contract,
		Method: "totalDeposits",
		Args:   []any{name},
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(out), 10, 64)
}
