package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/command"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"go.uber.org/zap"
)

// App drives the interactive prompt on top of an assembled container.
type App struct {
	container *Container
	registry  *command.Registry
	session   *domain.Session
	in        io.Reader
	out       io.Writer
}

func New(container *Container, in io.Reader, out io.Writer) *App {
	a := &App{
		container: container,
		in:        in,
		out:       out,
	}

	print := func(message string) error {
		_, err := fmt.Fprintln(a.out, message)
		return err
	}
	printError := func(message string) error {
		_, err := fmt.Fprintln(a.out, container.Formatter.FormatError(message))
		return err
	}

	a.registry = container.Commands(print, printError)
	a.session = container.NewSession()
	return a
}

// Session exposes the interactive state, mainly for seeding it before Run.
func (a *App) Session() *domain.Session {
	return a.session
}

// Run reads commands line by line until quit, EOF or context cancellation.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "LinkedIn profile finder. Type help for commands, quit to leave.")

	scanner := bufio.NewScanner(a.in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			break
		}

		parsed := a.container.Parser.ParseLine(scanner.Text())
		if parsed.IsEmpty() {
			continue
		}
		if parsed.Name == "quit" || parsed.Name == "exit" {
			break
		}

		if err := a.registry.Execute(ctx, a.session, parsed.Name, parsed.Args); err != nil {
			if errors.Is(err, command.ErrUnknownCommand) {
				fmt.Fprintf(a.out, "Unknown command %q. Type help for the list.\n", parsed.Name)
				continue
			}

			a.container.Logger.Error("Command failed",
				zap.String("command", parsed.Name),
				zap.Error(err))
			fmt.Fprintln(a.out, a.container.Formatter.FormatError(err.Error()))
		}
	}

	return scanner.Err()
}

// RunOnce executes a single search without the prompt: search, optional
// image enrichment, the full result table, then a CSV export. exportPath may
// be empty to use the default timestamped filename.
func (a *App) RunOnce(ctx context.Context, query string, enrichImages bool, exportPath string) error {
	if err := a.registry.Execute(ctx, a.session, "search", strings.Fields(query)); err != nil {
		return err
	}

	if !a.session.HasResults() {
		return nil
	}

	if enrichImages {
		if err := a.registry.Execute(ctx, a.session, "enrich", nil); err != nil {
			return err
		}
	}

	if err := a.registry.Execute(ctx, a.session, "show", nil); err != nil {
		return err
	}

	var args []string
	if exportPath != "" {
		args = []string{exportPath}
	}
	return a.registry.Execute(ctx, a.session, "export", args)
}
