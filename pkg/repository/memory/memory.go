package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Memory is an in-memory Repository implementation for development and tests
type Memory struct {
	projects *projectRepository

	tokenMu sync.RWMutex
	tokens  map[auth.TokenID]*auth.Token
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		projects: newProjectRepository(),
		tokens:   make(map[auth.TokenID]*auth.Token),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.projects
}

func (m *Memory) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	m.tokenMu.Lock()
	defer m.tokenMu.Unlock()

	copied := *token
	m.tokens[token.ID] = &copied
	return nil
}

func (m *Memory) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	if err := tokenID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid token ID")
	}

	m.tokenMu.RLock()
	defer m.tokenMu.RUnlock()

	token, ok := m.tokens[tokenID]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "token not found")
	}

	copied := *token
	return &copied, nil
}

func (m *Memory) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	if err := tokenID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token ID")
	}

	m.tokenMu.Lock()
	defer m.tokenMu.Unlock()

	if _, ok := m.tokens[tokenID]; !ok {
		return goerr.Wrap(ErrNotFound, "token not found")
	}
	delete(m.tokens, tokenID)
	return nil
}

// Close implements interfaces.Repository; the in-memory store holds no
// external resources
func (m *Memory) Close() error {
	return nil
}
