package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/api-sage/banco-portal/src/internal/adapter/api"
	"github.com/api-sage/banco-portal/src/internal/config"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/api-sage/banco-portal/src/internal/usecase/flows"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags and what PersistentPreRunE builds from them.
type RootOptions struct {
	Verbose bool
	Format  string
	APIURL  string

	Config config.Config
	Client *api.Client
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "banco",
		Short: "Portal de clientes del banco",
		Long: `Cliente de línea de comandos para el portal bancario.

Inicia sesión con correo y contraseña, consulta las cuentas de un cliente y
realiza abonos y retiros en efectivo contra la API de cuentas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "base URL of the banking API (overrides BANCO_API_URL)")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewCuentasCommand(opts))
	cmd.AddCommand(NewCredencialesCommand(opts))

	return cmd
}

func (o *RootOptions) setup() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	if o.APIURL != "" {
		cfg.APIBaseURL, err = config.NormalizeBaseURL(o.APIURL)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --api-url", err)
		}
	}

	level := cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	if err := logger.SetLevel(level); err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}

	o.Config = cfg
	o.Client = api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithChannelCredentials(cfg.ChannelID, cfg.ChannelKey),
	)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// Execute runs the command tree and returns the process exit code. Failures
// not already written by a command are printed to stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}

// failFlow reports a flow error with the message the flow put on screen.
func failFlow(out *OutputFormatter, message string, err error) error {
	code := CodeConnection
	switch {
	case errors.Is(err, flows.ErrInvalidInput):
		code = CodeInvalidInput
	case errors.Is(err, flows.ErrRejected):
		code = CodeRejected
	case errors.Is(err, flows.ErrUnhandledRole):
		code = CodeUnhandled
	}
	if message == "" {
		message = api.Detail(err)
	}
	return out.Fail(ExitFailure, code, message, nil, err)
}

// failAPI reports an error from a direct API call.
func failAPI(out *OutputFormatter, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
		return out.Fail(ExitFailure, CodeConnection, "Error de conexión: "+api.Detail(err), nil, err)
	}
	return out.Fail(ExitFailure, CodeRejected, api.Detail(err), nil, err)
}
