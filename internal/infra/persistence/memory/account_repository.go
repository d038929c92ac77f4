// Package memory provides in-memory repository implementations backing the
// development API stub. Data lives for the lifetime of the process.
package memory

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account // keyed by lowercase email
}

// NewAccountRepository creates an in-memory AccountRepository
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]entity.Account),
	}
}

func (r *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return nil, errors.WithStack(repository.ErrAccountNotFound)
	}

	// Return a copy so callers cannot mutate stored state
	return &account, nil
}

func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	if account == nil || account.Email == "" {
		return errors.New("account email is required")
	}

	key := strings.ToLower(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[key]; ok {
		return errors.WithStack(repository.ErrAccountAlreadyExists)
	}
	r.accounts[key] = *account

	return nil
}
