package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/pkg/types"
)

// Manager starts the language server on first use and shares it between callers
type Manager struct {
	client        types.Client
	workspaceRoot string
	initialized   bool
	mu            sync.Mutex
}

// NewManager creates a new manager for the given client
func NewManager(client types.Client, workspaceRoot string) *Manager {
	return &Manager{
		client:        client,
		workspaceRoot: workspaceRoot,
	}
}

// ensureStarted starts the client if it is not running yet
func (m *Manager) ensureStarted(ctx context.Context) (types.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return m.client, nil
	}

	slog.Info("Starting language server", "workspace_root", m.workspaceRoot)
	if err := m.client.Start(ctx, m.workspaceRoot); err != nil {
		return nil, fmt.Errorf("failed to start language server client: %w", err)
	}

	m.initialized = true
	return m.client, nil
}

// DocumentSymbols implements types.SymbolProvider
func (m *Manager) DocumentSymbols(ctx context.Context, uri string) ([]fold.Symbol, error) {
	client, err := m.ensureStarted(ctx)
	if err != nil {
		return nil, err
	}
	return client.DocumentSymbols(ctx, uri)
}

// FoldingRanges implements types.FoldingRangeProvider
func (m *Manager) FoldingRanges(ctx context.Context, uri string) ([]fold.FoldingRange, error) {
	client, err := m.ensureStarted(ctx)
	if err != nil {
		return nil, err
	}
	return client.FoldingRanges(ctx, uri)
}

// Shutdown stops the client if it was started
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil
	}

	if err := m.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to shutdown language server client: %w", err)
	}

	m.initialized = false
	return nil
}

// IsInitialized returns whether the language server has been started
func (m *Manager) IsInitialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initialized
}
