package cli

import (
	"fmt"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/usecase/flows"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type CuentasOptions struct {
	*RootOptions
	DUI    string
	Numero string
	Monto  string
	Saldo  string
	Todas  bool
}

func NewCuentasCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CuentasOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cuentas",
		Short: "Consulta y opera las cuentas de un cliente",
	}
	cmd.PersistentFlags().StringVar(&opts.DUI, "dui", "", "DUI del cliente")

	cmd.AddCommand(newCuentasListarCommand(opts))
	cmd.AddCommand(newCuentasTransactionCommand(opts, domain.DirectionCredit, "Abona efectivo a una cuenta"))
	cmd.AddCommand(newCuentasTransactionCommand(opts, domain.DirectionDebit, "Retira efectivo de una cuenta"))
	cmd.AddCommand(newCuentasCrearCommand(opts))
	cmd.AddCommand(newCuentasEliminarCommand(opts))

	return cmd
}

func newCuentasListarCommand(opts *CuentasOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista las cuentas del cliente (--todas para todas las cuentas)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			if opts.Todas {
				accounts, err := opts.Client.ListAccounts(cmd.Context())
				if err != nil {
					return failAPI(out, err)
				}
				return out.Success(newAccountListOutput(accounts))
			}

			flow, err := opts.accountFlow()
			if err != nil {
				return err
			}
			if err := flow.LoadAccounts(cmd.Context()); err != nil {
				return failFlow(out, flow.Snapshot().Message, err)
			}
			return out.Success(newAccountsOutput(flow.Snapshot()))
		},
	}
	cmd.Flags().BoolVar(&opts.Todas, "todas", false, "listar todas las cuentas del banco")
	return cmd
}

func newCuentasTransactionCommand(opts *CuentasOptions, direction domain.Direction, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			ctx := cmd.Context()

			flow, err := opts.accountFlow()
			if err != nil {
				return err
			}
			if err := flow.LoadAccounts(ctx); err != nil {
				return failFlow(out, flow.Snapshot().Message, err)
			}
			if err := flow.Select(opts.Numero); err != nil {
				return out.Fail(ExitFailure, CodeInvalidInput, "Cuenta no encontrada: "+opts.Numero, nil, err)
			}
			if err := flow.SetAmountText(opts.Monto); err != nil {
				return out.Fail(ExitFailure, CodeInvalidInput, "Ingrese un monto válido mayor a 0.", nil, err)
			}

			if err := flow.PerformTransaction(ctx, direction); err != nil {
				return failFlow(out, flow.Snapshot().Message, err)
			}
			return out.Success(newAccountsOutput(flow.Snapshot()))
		},
	}
	cmd.Flags().StringVar(&opts.Numero, "numero", "", "número de cuenta")
	cmd.Flags().StringVar(&opts.Monto, "monto", "", "monto de la transacción")
	_ = cmd.MarkFlagRequired("numero")
	return cmd
}

func newCuentasCrearCommand(opts *CuentasOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea una cuenta para el cliente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			if err := opts.requireDUI(); err != nil {
				return err
			}

			saldo := decimal.Zero
			if opts.Saldo != "" {
				parsed, err := decimal.NewFromString(opts.Saldo)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --saldo", err)
				}
				saldo = parsed
			}

			resp, err := opts.Client.CreateAccount(cmd.Context(), opts.DUI, opts.Numero, saldo)
			if err != nil {
				return failAPI(out, err)
			}
			if !resp.Success {
				return out.Fail(ExitFailure, CodeRejected, resp.Message, resp.Errors, nil)
			}
			return out.Success(newAccountListOutput([]domain.Account{resp.Value()}))
		},
	}
	cmd.Flags().StringVar(&opts.Numero, "numero", "", "número de la cuenta nueva")
	cmd.Flags().StringVar(&opts.Saldo, "saldo", "", "saldo inicial")
	_ = cmd.MarkFlagRequired("numero")
	return cmd
}

func newCuentasEliminarCommand(opts *CuentasOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eliminar",
		Short: "Elimina una cuenta del cliente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			if err := opts.requireDUI(); err != nil {
				return err
			}
			if err := opts.Client.DeleteAccount(cmd.Context(), opts.DUI, opts.Numero); err != nil {
				return failAPI(out, err)
			}
			return out.Success(messageOutput{Mensaje: fmt.Sprintf("Cuenta %s eliminada", opts.Numero)})
		},
	}
	cmd.Flags().StringVar(&opts.Numero, "numero", "", "número de cuenta")
	_ = cmd.MarkFlagRequired("numero")
	return cmd
}

func (o *CuentasOptions) requireDUI() error {
	if !models.IsValidDUI(o.DUI) {
		return NewExitError(ExitCommandError, fmt.Sprintf("--dui %q must have the form 00000000-0", o.DUI))
	}
	return nil
}

// accountFlow builds a flow for the --dui client. Without a login there is
// no token; the session only names the client.
func (o *CuentasOptions) accountFlow() (*flows.AccountFlow, error) {
	if err := o.requireDUI(); err != nil {
		return nil, err
	}
	flow, err := flows.NewAccountFlow(o.Client, domain.Session{DUI: o.DUI, Role: domain.RoleCliente})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open account flow", err)
	}
	return flow, nil
}
