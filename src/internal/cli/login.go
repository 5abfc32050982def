package cli

import (
	"errors"
	"sort"
	"strings"

	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/api-sage/banco-portal/src/internal/usecase/flows"
	"github.com/spf13/cobra"
)

type LoginOptions struct {
	*RootOptions
	Correo      string
	Contrasena  string
	Interactive bool
}

func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión con correo y contraseña",
		Long: `Inicia sesión contra /credenciales/login.

Con --interactive, un inicio de sesión de tipo cliente abre la pantalla de
cuentas.

Ejemplo:
  banco login --correo ejemplo@ejemplo.com --contrasena 123456 --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Correo, "correo", "", "correo del usuario")
	cmd.Flags().StringVar(&opts.Contrasena, "contrasena", "", "contraseña del usuario")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "abrir la pantalla de cuentas tras iniciar sesión")

	return cmd
}

func runLogin(opts *LoginOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	ctx := cmd.Context()

	var route string
	flow := flows.NewLoginFlow(opts.Client, flows.NavigatorFunc(func(r string) {
		route = r
		out.VerboseLog("navegando a %s", r)
	}))
	flow.SetCorreo(opts.Correo)
	flow.SetContrasena(opts.Contrasena)

	session, err := flow.Submit(ctx)
	view := flow.Snapshot()
	if err != nil && !errors.Is(err, flows.ErrUnhandledRole) {
		if errors.Is(err, flows.ErrInvalidInput) {
			details := fieldDetails(view.FieldErrors)
			return out.Fail(ExitFailure, CodeInvalidInput, "Formulario inválido: "+strings.Join(details, "; "), details, err)
		}
		return failFlow(out, view.Message, err)
	}

	if werr := out.Success(sessionOutput{
		DUI:         session.DUI,
		Usuario:     session.Usuario,
		TipoUsuario: string(session.Role),
		Ruta:        view.Route,
	}); werr != nil {
		return WrapExitError(ExitCommandError, "write output", werr)
	}

	if !opts.Interactive {
		return nil
	}
	if err != nil || route != flows.RouteCliente {
		return failFlow(out, "No hay una pantalla para el tipo de usuario "+string(session.Role), err)
	}

	accountFlow, err := flows.NewAccountFlow(opts.Client.WithSessionToken(session.Token), session)
	if err != nil {
		return WrapExitError(ExitCommandError, "open account screen", err)
	}
	logger.Debug("opening account screen", logger.Fields{"dui": session.DUI})
	return NewScreen(accountFlow, cmd.InOrStdin(), out).Run(ctx)
}

// fieldDetails returns per-field messages in field order for output.
func fieldDetails(fieldErrors map[string]string) []string {
	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f+": "+fieldErrors[f])
	}
	return out
}
