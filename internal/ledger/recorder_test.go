package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/common"
)

func TestFloorDeposits(t *testing.T) {
	t.Run("floors each value independently", func(t *testing.T) {
		got := FloorDeposits([]float64{12.9, 3.0, 0.4})
		assert.Equal(t, []int64{12, 3, 0}, got)
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		got := FloorDeposits([]float64{-1.5})
		assert.Equal(t, []int64{0}, got)
	})

	t.Run("empty in, empty out", func(t *testing.T) {
		assert.Empty(t, FloorDeposits(nil))
	})
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses unregistered company", func(t *testing.T) {
		r := NewRecorder(NewMemoryLedger(), nil)
		_, err := r.Record(ctx, "acme", []float64{1.5})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotRegistered))
	})

	t.Run("records floored deposits", func(t *testing.T) {
		l := NewMemoryLedger()
		created, err := l.Register(ctx, "acme")
		require.NoError(t, err)
		require.True(t, created)

		r := NewRecorder(l, nil)
		txID, err := r.Record(ctx, "acme", []float64{12.9, 3.2})
		require.NoError(t, err)
		assert.NotEmpty(t, txID)

		total, err := l.Total(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
	})

	t.Run("re-registration reports already existing", func(t *testing.T) {
		l := NewMemoryLedger()
		created, err := l.Register(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, created)
		created, err = l.Register(ctx, "acme")
		require.NoError(t, err)
		assert.False(t, created)
	})
}

type fakeWallet struct {
	registered map[string]bool
	sent       []Transaction
	callErr    error
}

func (f *fakeWallet) RequestAccounts(ctx context.Context) ([]string, error) {
	return []string{"0xabc"}, nil
}

func (f *fakeWallet) Network(ctx context.Context) (Network, error) {
	return Network{Name: "manta-testnet", ChainID: 3441005}, nil
}

func (f *fakeWallet) Call(ctx context.Context, tx Transaction) (string, error) {
	if f.callErr != nil {
		return "", f.callErr
	}
	switch tx.Method {
	case "isRegistered":
		if f.registered[tx.Args[0].(string)] {
			return "true", nil
		}
		return "false", nil
	case "totalDeposits":
		return "21", nil
	}
	return "", errors.New("unexpected call " + tx.Method)
}

func (f *fakeWallet) Send(ctx context.Context, tx Transaction) (string, error) {
	f.sent = append(f.sent, tx)
	if tx.Method == "registerCompany" {
		f.registered[tx.Args[0].(string)] = true
	}
	return "0xdeadbeef", nil
}

func TestChainLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("register sends once then reports existing", func(t *testing.T) {
		w := &fakeWallet{registered: map[string]bool{}}
		l := NewChainLedger(w, "0xcontract", nil)

		created, err := l.Register(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, w.sent, 1)
		assert.Equal(t, "registerCompany", w.sent[0].Method)

		created, err = l.Register(ctx, "acme")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Len(t, w.sent, 1)
	})

	t.Run("append returns the tx hash", func(t *testing.T) {
		w := &fakeWallet{registered: map[string]bool{"acme": true}}
		l := NewChainLedger(w, "0xcontract", nil)

		txID, err := l.AppendDeposits(ctx, "acme", []int64{12, 3})
		require.NoError(t, err)
		assert.Equal(t, "0xdeadbeef", txID)
	})

	t.Run("wallet failure propagates", func(t *testing.T) {
		w := &fakeWallet{registered: map[string]bool{}, callErr: errors.New("wallet not connected")}
		l := NewChainLedger(w, "0xcontract", nil)

		_, err := l.IsRegistered(ctx, "acme")
		assert.Error(t, err)
	})
}
