package cli

import (
	"fmt"
	"io"

	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/usecase/flows"
	"github.com/shopspring/decimal"
)

type accountOutput struct {
	ID     int64           `json:"id"`
	Numero string          `json:"numero"`
	Saldo  decimal.Decimal `json:"saldo"`
}

type accountsOutput struct {
	DUI          string           `json:"dui"`
	Cuentas      []accountOutput  `json:"cuentas"`
	Seleccionada string           `json:"seleccionada,omitempty"`
	Monto        *decimal.Decimal `json:"monto,omitempty"`
	Mensaje      string           `json:"mensaje,omitempty"`
	TipoMensaje  string           `json:"tipoMensaje,omitempty"`
}

func newAccountsOutput(view flows.AccountView) accountsOutput {
	out := accountsOutput{
		DUI:          view.DUI,
		Cuentas:      make([]accountOutput, 0, len(view.Accounts)),
		Seleccionada: view.Selected,
		Monto:        view.Amount,
		Mensaje:      view.Message,
		TipoMensaje:  string(view.MessageKind),
	}
	for _, a := range view.Accounts {
		out.Cuentas = append(out.Cuentas, accountOutput{ID: a.ID, Numero: a.Number, Saldo: a.Balance})
	}
	return out
}

func (o accountsOutput) RenderText(w io.Writer) {
	p := newPrinter()
	fmt.Fprintf(w, "Cliente: %s\n", o.DUI)
	if len(o.Cuentas) == 0 {
		fmt.Fprintln(w, "  (sin cuentas)")
	}
	for _, c := range o.Cuentas {
		marker := " "
		if c.Numero == o.Seleccionada {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %-10s %s\n", marker, c.Numero, formatMoney(p, c.Saldo))
	}
	if o.Monto != nil {
		fmt.Fprintf(w, "Monto: %s\n", formatMoney(p, *o.Monto))
	}
	if o.Mensaje != "" {
		fmt.Fprintf(w, "[%s] %s\n", o.TipoMensaje, o.Mensaje)
	}
}

type accountListOutput []accountOutput

func newAccountListOutput(accounts []domain.Account) accountListOutput {
	out := make(accountListOutput, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountOutput{ID: a.ID, Numero: a.Number, Saldo: a.Balance})
	}
	return out
}

func (o accountListOutput) RenderText(w io.Writer) {
	p := newPrinter()
	for _, c := range o {
		fmt.Fprintf(w, "%-4d %-10s %s\n", c.ID, c.Numero, formatMoney(p, c.Saldo))
	}
}

type sessionOutput struct {
	DUI         string `json:"dui"`
	Usuario     string `json:"usuario"`
	TipoUsuario string `json:"tipoUsuario"`
	Ruta        string `json:"ruta"`
}

func (o sessionOutput) RenderText(w io.Writer) {
	fmt.Fprintf(w, "Sesión iniciada: %s (%s), DUI %s\n", o.Usuario, o.TipoUsuario, o.DUI)
}

type credentialOutput struct {
	ID          int64  `json:"id"`
	DUI         string `json:"dui"`
	Usuario     string `json:"usuario"`
	TipoUsuario string `json:"tipoUsuario"`
}

func newCredentialOutput(c domain.Credential) credentialOutput {
	return credentialOutput{ID: c.ID, DUI: c.DUI, Usuario: c.Usuario, TipoUsuario: string(c.Role)}
}

func (o credentialOutput) RenderText(w io.Writer) {
	fmt.Fprintf(w, "%-4d %-12s %-26s %s\n", o.ID, o.DUI, o.Usuario, o.TipoUsuario)
}

type credentialListOutput []credentialOutput

func newCredentialListOutput(in []domain.Credential) credentialListOutput {
	out := make(credentialListOutput, 0, len(in))
	for _, c := range in {
		out = append(out, newCredentialOutput(c))
	}
	return out
}

func (o credentialListOutput) RenderText(w io.Writer) {
	for _, c := range o {
		c.RenderText(w)
	}
}

type messageOutput struct {
	Mensaje string `json:"mensaje"`
}

func (o messageOutput) RenderText(w io.Writer) {
	fmt.Fprintln(w, o.Mensaje)
}
