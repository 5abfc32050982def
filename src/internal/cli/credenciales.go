package cli

import (
	"fmt"
	"strconv"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/spf13/cobra"
)

type CredencialesOptions struct {
	*RootOptions
	DUI         string
	Usuario     string
	Contrasena  string
	TipoUsuario string
}

// NewCredencialesCommand groups the credential administration calls. They
// send the channel credentials from BANCO_CHANNEL_ID and BANCO_CHANNEL_KEY.
func NewCredencialesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CredencialesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "credenciales",
		Short: "Administra las credenciales de acceso",
	}

	cmd.AddCommand(newCredencialesListarCommand(opts))
	cmd.AddCommand(newCredencialesCrearCommand(opts))
	cmd.AddCommand(newCredencialesActualizarCommand(opts))
	cmd.AddCommand(newCredencialesEliminarCommand(opts))

	return cmd
}

func newCredencialesListarCommand(opts *CredencialesOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista las credenciales (opcionalmente de un DUI)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)

			var (
				credentials []domain.Credential
				err         error
			)
			if opts.DUI != "" {
				credentials, err = opts.Client.CredentialsByDUI(cmd.Context(), opts.DUI)
			} else {
				credentials, err = opts.Client.ListCredentials(cmd.Context())
			}
			if err != nil {
				return failAPI(out, err)
			}
			return out.Success(newCredentialListOutput(credentials))
		},
	}
	cmd.Flags().StringVar(&opts.DUI, "dui", "", "filtrar por DUI")
	return cmd
}

func newCredencialesCrearCommand(opts *CredencialesOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea una credencial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)

			req := models.CreateCredentialRequest{
				DUI:         opts.DUI,
				Usuario:     opts.Usuario,
				Contrasena:  opts.Contrasena,
				TipoUsuario: opts.TipoUsuario,
			}
			if err := req.Validate(); err != nil {
				return out.Fail(ExitFailure, CodeInvalidInput, err.Error(), nil, err)
			}

			created, err := opts.Client.CreateCredential(cmd.Context(), req)
			if err != nil {
				return failAPI(out, err)
			}
			return out.Success(newCredentialOutput(created))
		},
	}
	cmd.Flags().StringVar(&opts.DUI, "dui", "", "DUI del cliente")
	cmd.Flags().StringVar(&opts.Usuario, "usuario", "", "correo de acceso")
	cmd.Flags().StringVar(&opts.Contrasena, "contrasena", "", "contraseña")
	cmd.Flags().StringVar(&opts.TipoUsuario, "tipo", "", "cliente o administrador (por defecto cliente)")
	return cmd
}

func newCredencialesActualizarCommand(opts *CredencialesOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actualizar <id>",
		Short: "Actualiza los campos indicados de una credencial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req models.UpdateCredentialRequest
			flags := cmd.Flags()
			if flags.Changed("dui") {
				req.DUI = &opts.DUI
			}
			if flags.Changed("usuario") {
				req.Usuario = &opts.Usuario
			}
			if flags.Changed("contrasena") {
				req.Contrasena = &opts.Contrasena
			}
			if flags.Changed("tipo") {
				req.TipoUsuario = &opts.TipoUsuario
			}
			if req.Empty() {
				return NewExitError(ExitCommandError, "nothing to update: pass --dui, --usuario, --contrasena or --tipo")
			}
			if err := req.Validate(); err != nil {
				return out.Fail(ExitFailure, CodeInvalidInput, err.Error(), nil, err)
			}

			updated, err := opts.Client.UpdateCredential(cmd.Context(), id, req)
			if err != nil {
				return failAPI(out, err)
			}
			return out.Success(newCredentialOutput(updated))
		},
	}
	cmd.Flags().StringVar(&opts.DUI, "dui", "", "nuevo DUI")
	cmd.Flags().StringVar(&opts.Usuario, "usuario", "", "nuevo correo de acceso")
	cmd.Flags().StringVar(&opts.Contrasena, "contrasena", "", "nueva contraseña")
	cmd.Flags().StringVar(&opts.TipoUsuario, "tipo", "", "nuevo tipo de usuario")
	return cmd
}

func newCredencialesEliminarCommand(opts *CredencialesOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una credencial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.Client.DeleteCredential(cmd.Context(), id); err != nil {
				return failAPI(out, err)
			}
			return out.Success(messageOutput{Mensaje: fmt.Sprintf("Credencial %d eliminada", id)})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}
