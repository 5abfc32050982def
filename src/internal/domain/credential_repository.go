package domain

import "context"

type CredentialRepository interface {
	List(ctx context.Context) ([]Credential, error)
	ListByDUI(ctx context.Context, dui string) ([]Credential, error)
	GetByID(ctx context.Context, id int64) (Credential, error)
	GetByUsuario(ctx context.Context, usuario string) (Credential, error)
	Create(ctx context.Context, credential Credential) (Credential, error)
	Update(ctx context.Context, credential Credential) (Credential, error)
	Delete(ctx context.Context, id int64) error
}
