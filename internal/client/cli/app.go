package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/carlosftapiap/arcsapp-sub001/internal/client/client"
	"github.com/carlosftapiap/arcsapp-sub001/internal/client/config"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	min   int
	auth  bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"ping":    {usage: "ping", run: (*App).ping},
	"create":  {usage: "create <product_type> <product name>", min: 2, auth: true, run: (*App).createDossier},
	"dossier": {usage: "dossier <dossier_id>", min: 1, auth: true, run: (*App).showDossier},
	"upload":  {usage: "upload <dossier_id> <file> [item_id]", min: 2, auth: true, run: (*App).upload},
	"run":     {usage: "run <dossier_id> [stage]", min: 1, auth: true, run: (*App).runAudit},
	"cancel":  {usage: "cancel <audit_id>", min: 1, auth: true, run: (*App).cancelAudit},
	"list":    {usage: "list <dossier_id>", min: 1, auth: true, run: (*App).listAudits},
	"export":  {usage: "export <audit_id> [path]", min: 1, auth: true, run: (*App).exportAudit},
	"submit":  {usage: "submit <dossier_id>", min: 1, auth: true, run: (*App).submit},
	"revert":  {usage: "revert <dossier_id>", min: 1, auth: true, run: (*App).revert},
}

type App struct {
	config *config.Config
	api    client.Client
	http   *http.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuditClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{
		config: c,
		api:    apiClient,
		http:   &http.Client{Timeout: c.RequestTimeout},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.api.Close()
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" {
		a.usage()
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", args[0])
		a.usage()
		return 2
	}
	if len(args)-1 < cmd.min {
		fmt.Fprintln(a.out, "Usage: auditctl", cmd.usage)
		return 2
	}

	if cmd.auth {
		if err := a.ensureToken(); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return 1
		}
	}

	if err := cmd.run(a, ctx, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(a.out, "Usage: auditctl", cmd.usage)
			return 2
		}
		fmt.Fprintln(a.out, "Error:", err)
		return 1
	}
	return 0
}

func (a *App) ensureToken() error {
	token := a.config.AccessToken
	if token == "" {
		t, err := GetToken(a.out)
		if err != nil {
			return err
		}
		token = t
	}
	a.api.SetAccessToken(token)
	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: auditctl [-a addr] [-timeout d] [-wait d] <command> [args]")
	fmt.Fprintln(a.out, "Commands:")
	for _, name := range []string{"ping", "create", "dossier", "upload", "run", "cancel", "list", "export", "submit", "revert"} {
		fmt.Fprintln(a.out, "  "+commands[name].usage)
	}
}

// requestCtx bounds an ordinary call by the configured request timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
