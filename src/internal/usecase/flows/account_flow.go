package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/banco-portal/src/internal/adapter/api"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/shopspring/decimal"
)

const (
	selectAccountMessage = "Seleccione una cuenta."
	invalidAmountMessage = "Ingrese un monto válido mayor a 0."
	listErrorPrefix      = "Error al cargar las cuentas: "
	transactionPrefix    = "Error en la transacción: "
)

type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoadingList
	PhaseReady
	PhaseLoadingTransaction
)

func (p Phase) String() string {
	switch p {
	case PhaseLoadingList:
		return "loading-list"
	case PhaseReady:
		return "ready"
	case PhaseLoadingTransaction:
		return "loading-transaction"
	default:
		return "idle"
	}
}

type AccountsAPI interface {
	ListAccountsByClient(ctx context.Context, dui string) (commons.Response[[]domain.Account], error)
	Credit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error)
	Debit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error)
}

// AccountView is a copy of the account screen state.
type AccountView struct {
	DUI         string
	Accounts    []domain.Account
	Selected    string
	Amount      *decimal.Decimal
	Message     string
	MessageKind MessageKind
	Loading     bool
	Phase       Phase
}

// SelectedAccount returns the selected account from the view's list.
func (v AccountView) SelectedAccount() (domain.Account, bool) {
	return findAccount(v.Accounts, v.Selected)
}

// AccountFlow drives the account screen for one session. The mutex guards
// the view state only; it is released while a call is in flight, so
// Snapshot can be read from another goroutine. Loading is informational and
// does not block a second action.
type AccountFlow struct {
	api     AccountsAPI
	session domain.Session

	mu          sync.Mutex
	accounts    []domain.Account
	selected    string
	amount      *decimal.Decimal
	message     string
	messageKind MessageKind
	phase       Phase
}

func NewAccountFlow(accounts AccountsAPI, session domain.Session) (*AccountFlow, error) {
	if accounts == nil {
		return nil, errors.New("accounts api is required")
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}
	return &AccountFlow{api: accounts, session: session}, nil
}

// Activate is what entering the account screen does: load the list.
func (f *AccountFlow) Activate(ctx context.Context) error {
	return f.LoadAccounts(ctx)
}

func (f *AccountFlow) LoadAccounts(ctx context.Context) error {
	return f.load(ctx, true)
}

// load fetches the client's accounts. The reload that follows a transaction
// passes clearMessage=false so the transaction result stays visible.
func (f *AccountFlow) load(ctx context.Context, clearMessage bool) error {
	f.mu.Lock()
	f.phase = PhaseLoadingList
	if clearMessage {
		f.setMessageLocked(MessageNone, "")
	}
	f.mu.Unlock()

	resp, err := f.api.ListAccountsByClient(ctx, f.session.DUI)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.phase = PhaseReady

	if err != nil {
		f.accounts = nil
		f.setMessageLocked(MessageError, listErrorPrefix+api.Detail(err))
		logger.Error("list accounts failed", err, logger.Fields{"dui": f.session.DUI})
		return fmt.Errorf("list accounts: %w", err)
	}
	if !resp.Success {
		f.accounts = nil
		f.setMessageLocked(MessageError, resp.Message)
		logger.Warn("list accounts rejected", logger.Fields{"dui": f.session.DUI, "message": resp.Message})
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}

	f.accounts = append([]domain.Account(nil), resp.Value()...)
	if f.selected == "" && len(f.accounts) > 0 {
		f.selected = f.accounts[0].Number
	}
	logger.Debug("accounts loaded", logger.Fields{"dui": f.session.DUI, "count": len(f.accounts)})
	return nil
}

// PerformTransaction credits or debits the selected account by the pending
// amount and then reloads the list once.
func (f *AccountFlow) PerformTransaction(ctx context.Context, direction domain.Direction) error {
	f.mu.Lock()
	req, err := domain.NewTransactionRequest(f.selected, f.amount, direction)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoAccountSelected):
			f.setMessageLocked(MessageError, selectAccountMessage)
		case errors.Is(err, domain.ErrInvalidAmount):
			f.setMessageLocked(MessageError, invalidAmountMessage)
		}
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	f.phase = PhaseLoadingTransaction
	f.setMessageLocked(MessageNone, "")
	f.mu.Unlock()

	fields := logger.Fields{
		"dui":       f.session.DUI,
		"numero":    req.AccountNumber,
		"monto":     req.Amount.String(),
		"direction": string(direction),
	}
	logger.Info("transaction submitted", fields)

	var resp commons.Response[domain.Account]
	if direction == domain.DirectionCredit {
		resp, err = f.api.Credit(ctx, f.session.DUI, req.AccountNumber, req.Amount)
	} else {
		resp, err = f.api.Debit(ctx, f.session.DUI, req.AccountNumber, req.Amount)
	}

	f.mu.Lock()
	f.phase = PhaseReady
	if err != nil {
		f.setMessageLocked(MessageError, transactionPrefix+api.Detail(err))
		f.mu.Unlock()
		logger.Error("transaction failed", err, fields)
		return fmt.Errorf("%s: %w", direction, err)
	}
	if !resp.Success {
		f.setMessageLocked(MessageError, resp.Message)
		f.mu.Unlock()
		logger.Warn("transaction rejected", logger.Fields{"dui": f.session.DUI, "message": resp.Message})
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	f.setMessageLocked(MessageSuccess, resp.Message)
	f.amount = nil
	f.mu.Unlock()

	logger.Info("transaction completed", fields)

	if err := f.load(ctx, false); err != nil {
		return fmt.Errorf("reload after %s: %w", direction, err)
	}
	return nil
}

// Select marks numero as the selected account. An empty numero clears the
// selection.
func (f *AccountFlow) Select(numero string) error {
	numero = strings.TrimSpace(numero)

	f.mu.Lock()
	defer f.mu.Unlock()
	if numero == "" {
		f.selected = ""
		return nil
	}
	if _, ok := findAccount(f.accounts, numero); !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, numero)
	}
	f.selected = numero
	return nil
}

// SetAmount sets the pending amount. Nil clears it.
func (f *AccountFlow) SetAmount(amount *decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if amount == nil {
		f.amount = nil
		return
	}
	v := *amount
	f.amount = &v
}

// SetAmountText parses user input into the pending amount. Input that does
// not parse clears the amount and is reported back.
func (f *AccountFlow) SetAmountText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		f.SetAmount(nil)
		return nil
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(text, ",", "."))
	if err != nil {
		f.SetAmount(nil)
		return fmt.Errorf("%w: monto %q", ErrInvalidInput, text)
	}
	f.SetAmount(&amount)
	return nil
}

func (f *AccountFlow) SelectedAccount() (domain.Account, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return findAccount(f.accounts, f.selected)
}

func (f *AccountFlow) Session() domain.Session {
	return f.session
}

func (f *AccountFlow) Snapshot() AccountView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := AccountView{
		DUI:         f.session.DUI,
		Accounts:    append([]domain.Account(nil), f.accounts...),
		Selected:    f.selected,
		Message:     f.message,
		MessageKind: f.messageKind,
		Phase:       f.phase,
		Loading:     f.phase == PhaseLoadingList || f.phase == PhaseLoadingTransaction,
	}
	if f.amount != nil {
		v := *f.amount
		view.Amount = &v
	}
	return view
}

func (f *AccountFlow) setMessageLocked(kind MessageKind, message string) {
	f.messageKind = kind
	f.message = message
	if message == "" {
		f.messageKind = MessageNone
	}
}

func findAccount(accounts []domain.Account, numero string) (domain.Account, bool) {
	if numero == "" {
		return domain.Account{}, false
	}
	for _, a := range accounts {
		if a.Number == numero {
			return a, true
		}
	}
	return domain.Account{}, false
}
