package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/usecase/flows"
)

const screenHelp = `Comandos:
  listar                 recargar las cuentas
  seleccionar <numero>   elegir la cuenta activa
  monto <valor>          fijar el monto pendiente
  abonar                 abonar el monto a la cuenta activa
  retirar                retirar el monto de la cuenta activa
  ayuda                  mostrar esta ayuda
  salir                  terminar`

// Screen is the line-oriented account screen. Each command maps to one
// AccountFlow operation and the view is rendered after it.
type Screen struct {
	flow *flows.AccountFlow
	in   io.Reader
	out  *OutputFormatter
}

func NewScreen(flow *flows.AccountFlow, in io.Reader, out *OutputFormatter) *Screen {
	return &Screen{flow: flow, in: in, out: out}
}

// Run activates the flow and reads commands until salir, EOF or ctx ends.
// Flow failures are shown on screen and do not end the session.
func (s *Screen) Run(ctx context.Context) error {
	_ = s.flow.Activate(ctx)
	s.render()

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if quit := s.dispatch(ctx, strings.ToLower(fields[0]), fields[1:]); quit {
			return nil
		}
	}
}

func (s *Screen) dispatch(ctx context.Context, command string, args []string) bool {
	switch command {
	case "salir", "exit", "q":
		return true
	case "ayuda", "help", "?":
		s.line(screenHelp)
		return false
	case "listar":
		_ = s.flow.LoadAccounts(ctx)
	case "seleccionar":
		if len(args) != 1 {
			s.line("Uso: seleccionar <numero>")
			return false
		}
		if err := s.flow.Select(args[0]); err != nil {
			s.line("Cuenta no encontrada: " + args[0])
			return false
		}
	case "monto":
		if len(args) != 1 {
			s.line("Uso: monto <valor>")
			return false
		}
		if err := s.flow.SetAmountText(args[0]); err != nil {
			s.line("Monto no reconocido: " + args[0])
		}
	case "abonar":
		_ = s.flow.PerformTransaction(ctx, domain.DirectionCredit)
	case "retirar":
		_ = s.flow.PerformTransaction(ctx, domain.DirectionDebit)
	default:
		s.line(fmt.Sprintf("Comando desconocido %q. Escriba ayuda.", command))
		return false
	}
	s.render()
	return false
}

func (s *Screen) render() {
	_ = s.out.Success(newAccountsOutput(s.flow.Snapshot()))
}

func (s *Screen) prompt() {
	if s.out.Format == "json" {
		return
	}
	fmt.Fprint(s.out.Writer, "> ")
}

func (s *Screen) line(text string) {
	if s.out.Format == "json" {
		_ = s.out.Success(messageOutput{Mensaje: text})
		return
	}
	fmt.Fprintln(s.out.Writer, text)
}
