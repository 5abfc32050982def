package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
)

// Login calls POST /credenciales/login.
func (c *Client) Login(ctx context.Context, correo string, contrasena string) (models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      "/credenciales/login",
		body:      models.LoginRequest{Correo: correo, Contrasena: contrasena},
		out:       &out,
		operation: "login",
	})
	return out, err
}

func (c *Client) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	return c.credentialList(ctx, "/credenciales", "list credentials")
}

func (c *Client) CredentialsByDUI(ctx context.Context, dui string) ([]domain.Credential, error) {
	return c.credentialList(ctx, "/credenciales/dui/"+url.PathEscape(dui), "list credentials by dui")
}

func (c *Client) CreateCredential(ctx context.Context, req models.CreateCredentialRequest) (domain.Credential, error) {
	var out models.CredentialResponse
	if err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      "/credenciales",
		body:      req,
		out:       &out,
		channel:   true,
		operation: "create credential",
	}); err != nil {
		return domain.Credential{}, err
	}
	return out.ToDomain(), nil
}

func (c *Client) UpdateCredential(ctx context.Context, id int64, req models.UpdateCredentialRequest) (domain.Credential, error) {
	var out models.CredentialResponse
	if err := c.do(ctx, call{
		method:    http.MethodPut,
		path:      "/credenciales/" + strconv.FormatInt(id, 10),
		body:      req,
		out:       &out,
		channel:   true,
		operation: "update credential",
	}); err != nil {
		return domain.Credential{}, err
	}
	return out.ToDomain(), nil
}

func (c *Client) DeleteCredential(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:    http.MethodDelete,
		path:      "/credenciales/" + strconv.FormatInt(id, 10),
		channel:   true,
		operation: "delete credential",
	})
}

func (c *Client) credentialList(ctx context.Context, path string, operation string) ([]domain.Credential, error) {
	var out []models.CredentialResponse
	if err := c.do(ctx, call{
		method:    http.MethodGet,
		path:      path,
		out:       &out,
		channel:   true,
		operation: operation,
	}); err != nil {
		return nil, err
	}
	return models.CredentialsToDomain(out), nil
}
