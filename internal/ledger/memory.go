package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MemoryLedger keeps deposits in process memory. It backs tests and
// ad-hoc local runs; real deployments use the db or chain backends.
type MemoryLedger struct {
	mu       sync.Mutex
	accounts map[string][]int64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{accounts: make(map[string][]int64)}
}

func (m *MemoryLedger) Register(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[name]; ok {
		return false, nil
	}
	m.accounts[name] = nil
	return true, nil
}

func (m *MemoryLedger) IsRegistered(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.accounts[name]
	return ok, nil
}

func (m *MemoryLedger) AppendDeposits(ctx context.Context, name string, deposits []int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[name]; !ok {
		return "", errors.New("unknown account " + name)
	}
	m.accounts[name] = append(m.accounts[name], deposits...)
	return uuid.New().String(), nil
}

func (m *MemoryLedger) Total(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum int64
	for _, d := range m.accounts[name] {
		sum += d
	}
	return sum, nil
}
