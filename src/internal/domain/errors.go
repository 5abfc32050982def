package domain

import "errors"

var ErrRecordNotFound = errors.New("record not found")
var ErrClientNotFound = errors.New("cliente no encontrado")
var ErrAccountNotFound = errors.New("cuenta no encontrada")
var ErrInsufficientBalance = errors.New("saldo insuficiente")
var ErrDuplicateAccount = errors.New("la cuenta ya existe para este cliente")
var ErrDuplicateUsuario = errors.New("el usuario ya está registrado")
var ErrInvalidCredentials = errors.New("credenciales inválidas")

var ErrNoAccountSelected = errors.New("no account selected")
var ErrInvalidAmount = errors.New("amount must be greater than zero")
