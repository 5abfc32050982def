package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	mu      sync.RWMutex
	nextID  int64
	clients map[string][]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{nextID: 1, clients: map[string][]domain.Account{}}
}

func (r *AccountRepository) ListAll(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	duis := make([]string, 0, len(r.clients))
	for dui := range r.clients {
		duis = append(duis, dui)
	}
	sort.Strings(duis)

	var out []domain.Account
	for _, dui := range duis {
		out = append(out, r.clients[dui]...)
	}
	return out, nil
}

func (r *AccountRepository) ListByClient(_ context.Context, dui string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts, ok := r.clients[strings.TrimSpace(dui)]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	return out, nil
}

func (r *AccountRepository) EnsureClient(_ context.Context, dui string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dui = strings.TrimSpace(dui)
	if _, ok := r.clients[dui]; !ok {
		r.clients[dui] = []domain.Account{}
	}
	return nil
}

func (r *AccountRepository) Create(_ context.Context, dui string, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dui = strings.TrimSpace(dui)
	accounts, ok := r.clients[dui]
	if !ok {
		return domain.Account{}, domain.ErrClientNotFound
	}
	for _, existing := range accounts {
		if existing.Number == account.Number {
			return domain.Account{}, domain.ErrDuplicateAccount
		}
	}

	account.ID = r.nextID
	r.nextID++
	r.clients[dui] = append(accounts, account)
	return account, nil
}

func (r *AccountRepository) Delete(_ context.Context, dui string, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dui = strings.TrimSpace(dui)
	accounts, ok := r.clients[dui]
	if !ok {
		return domain.ErrClientNotFound
	}
	for i, existing := range accounts {
		if existing.Number == number {
			r.clients[dui] = append(accounts[:i:i], accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *AccountRepository) Adjust(_ context.Context, dui string, number string, delta decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, ok := r.clients[strings.TrimSpace(dui)]
	if !ok {
		return domain.Account{}, domain.ErrClientNotFound
	}
	for i := range accounts {
		if accounts[i].Number != number {
			continue
		}
		next := accounts[i].Balance.Add(delta)
		if next.IsNegative() {
			return domain.Account{}, domain.ErrInsufficientBalance
		}
		accounts[i].Balance = next
		return accounts[i], nil
	}
	return domain.Account{}, domain.ErrAccountNotFound
}
