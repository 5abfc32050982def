package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/api-sage/banco-portal/src/internal/domain"
)

type CredentialRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Credential
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{nextID: 1, byID: map[int64]domain.Credential{}}
}

func (r *CredentialRepository) List(_ context.Context) ([]domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(domain.Credential) bool { return true }), nil
}

func (r *CredentialRepository) ListByDUI(_ context.Context, dui string) ([]domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dui = strings.TrimSpace(dui)
	return r.filter(func(c domain.Credential) bool { return c.DUI == dui }), nil
}

func (r *CredentialRepository) GetByID(_ context.Context, id int64) (domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Credential{}, domain.ErrRecordNotFound
	}
	return c, nil
}

func (r *CredentialRepository) GetByUsuario(_ context.Context, usuario string) (domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if strings.EqualFold(c.Usuario, usuario) {
			return c, nil
		}
	}
	return domain.Credential{}, domain.ErrRecordNotFound
}

func (r *CredentialRepository) Create(_ context.Context, credential domain.Credential) (domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usuarioTaken(credential.Usuario, 0) {
		return domain.Credential{}, domain.ErrDuplicateUsuario
	}
	credential.ID = r.nextID
	r.nextID++
	r.byID[credential.ID] = credential
	return credential, nil
}

func (r *CredentialRepository) Update(_ context.Context, credential domain.Credential) (domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[credential.ID]; !ok {
		return domain.Credential{}, domain.ErrRecordNotFound
	}
	if r.usuarioTaken(credential.Usuario, credential.ID) {
		return domain.Credential{}, domain.ErrDuplicateUsuario
	}
	r.byID[credential.ID] = credential
	return credential, nil
}

func (r *CredentialRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}

// caller holds r.mu
func (r *CredentialRepository) usuarioTaken(usuario string, exceptID int64) bool {
	for id, c := range r.byID {
		if id != exceptID && strings.EqualFold(c.Usuario, usuario) {
			return true
		}
	}
	return false
}

// caller holds r.mu
func (r *CredentialRepository) filter(keep func(domain.Credential) bool) []domain.Credential {
	out := make([]domain.Credential, 0, len(r.byID))
	for _, c := range r.byID {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
