// Package ledger defines the append-only deposit boundary and the
// recorder that feeds analyzed footprints into it. The ledger's value
// domain is integral: footprints are floored exactly once, here.
package ledger

import "context"

// Ledger is the external record of per-company deposits. Entries are
// append-only; nothing here mutates an existing entry.
type Ledger interface {
	// Register creates the identity. Returns false when it already existed.
	Register(ctx context.Context, name string) (bool, error)
	// IsRegistered reports whether the identity exists.
	IsRegistered(ctx context.Context, name string) (bool, error)
	// AppendDeposits appends non-negative integral deposits and returns
	// a confirmation transaction identifier. Calling this for an
	// unregistered identity is a caller error, not a ledger error.
	AppendDeposits(ctx context.Context, name string, deposits []int64) (string, error)
	// Total returns the sum of all deposits recorded for the identity.
	Total(ctx context.Context, name string) (int64, error)
}

// Network describes the chain a wallet is connected to.
type Network struct {
	Name    string
	ChainID int64
}

// Transaction is an opaque contract interaction. The wallet decides how
// Method and Args become calldata; this core never builds calldata itself.
type Transaction struct {
	To     string
	Method string
	Args   []any
}

// Wallet is the injected signing capability. Production wires a real
// node-backed implementation; tests use a fake.
type Wallet interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	Network(ctx context.Context) (Network, error)
	// Call executes a read-only contract call and returns its result.
	Call(ctx context.Context, tx Transaction) (string, error)
	// Send signs, submits, and waits for confirmation, returning the
	// transaction hash.
	Send(ctx context.Context, tx Transaction) (string, error)
}
