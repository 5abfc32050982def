package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Banco API (stand-in)</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Banco API (stand-in)",
    "version": "1.0.0"
  },
  "servers": [{"url": "/api"}],
  "paths": {
    "/credenciales/login": {
      "post": {
        "summary": "Log in with correo and contrasena",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LoginRequest"}}}},
        "responses": {"200": {"description": "Login result", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LoginResponse"}}}}}
      }
    },
    "/credenciales": {
      "get": {"summary": "List credentials", "security": [{"BasicAuth": []}], "responses": {"200": {"description": "Credentials"}}},
      "post": {
        "summary": "Create credential",
        "security": [{"BasicAuth": []}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CreateCredentialRequest"}}}},
        "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "409": {"description": "Usuario taken"}}
      }
    },
    "/credenciales/dui/{dui}": {
      "get": {"summary": "List credentials of a client", "security": [{"BasicAuth": []}], "parameters": [{"$ref": "#/components/parameters/dui"}], "responses": {"200": {"description": "Credentials"}}}
    },
    "/credenciales/{id}": {
      "put": {"summary": "Update credential", "security": [{"BasicAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}], "responses": {"200": {"description": "Updated"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete credential", "security": [{"BasicAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
    },
    "/cuentas": {
      "get": {"summary": "List every account", "responses": {"200": {"description": "Accounts"}}}
    },
    "/cuentas/cliente/{dui}": {
      "get": {"summary": "List accounts of a client", "parameters": [{"$ref": "#/components/parameters/dui"}], "responses": {"200": {"description": "Envelope of accounts"}, "404": {"description": "cliente no encontrado"}}},
      "post": {
        "summary": "Create account",
        "parameters": [{"$ref": "#/components/parameters/dui"}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CreateAccountRequest"}}}},
        "responses": {"201": {"description": "Envelope of account"}, "409": {"description": "Duplicate numero"}}
      }
    },
    "/cuentas/cliente/{dui}/{numero}": {
      "delete": {"summary": "Delete account", "parameters": [{"$ref": "#/components/parameters/dui"}, {"name": "numero", "in": "path", "required": true, "schema": {"type": "string"}}], "responses": {"204": {"description": "Deleted"}}}
    },
    "/cuentas/cliente/{dui}/abonarefectivo": {
      "post": {
        "summary": "Credit an account",
        "parameters": [{"$ref": "#/components/parameters/dui"}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TransactionRequest"}}}},
        "responses": {"200": {"description": "Envelope of account with newSaldo"}}
      }
    },
    "/cuentas/cliente/{dui}/retirarefectivo": {
      "post": {
        "summary": "Debit an account",
        "parameters": [{"$ref": "#/components/parameters/dui"}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TransactionRequest"}}}},
        "responses": {"200": {"description": "Envelope of account with newSaldo"}, "400": {"description": "saldo insuficiente"}}
      }
    }
  },
  "components": {
    "securitySchemes": {"BasicAuth": {"type": "http", "scheme": "basic"}},
    "parameters": {"dui": {"name": "dui", "in": "path", "required": true, "schema": {"type": "string", "example": "12345678-9"}}},
    "schemas": {
      "LoginRequest": {"type": "object", "required": ["correo", "contrasena"], "properties": {"correo": {"type": "string", "maxLength": 25}, "contrasena": {"type": "string", "maxLength": 10}}},
      "LoginResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "tipoUsuario": {"type": "string"}, "dui": {"type": "string"}, "token": {"type": "string"}}},
      "CreateCredentialRequest": {"type": "object", "required": ["dui", "usuario", "contrasena"], "properties": {"dui": {"type": "string"}, "usuario": {"type": "string"}, "contrasena": {"type": "string"}, "tipoUsuario": {"type": "string", "enum": ["cliente", "administrador"]}}},
      "CreateAccountRequest": {"type": "object", "required": ["numero"], "properties": {"numero": {"type": "string"}, "saldo": {"type": "number"}}},
      "TransactionRequest": {"type": "object", "required": ["numero", "monto"], "properties": {"numero": {"type": "string"}, "monto": {"type": "number"}}}
    }
  }
}`
