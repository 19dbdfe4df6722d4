// Package cli is the terminal front end: a REPL that turns typed commands
// into controller operations, interactive prompts for their inputs, and a
// lipgloss renderer for the controller's output.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paperdock/paperdock/internal/client/api"
	"github.com/paperdock/paperdock/internal/client/config"
	"github.com/paperdock/paperdock/internal/client/controller"
	"github.com/paperdock/paperdock/internal/client/session"
	"github.com/paperdock/paperdock/internal/common"
	"github.com/paperdock/paperdock/internal/logging"
)

// getSimpleText and getPassword are indirections for interactive input,
// swappable in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// App wires the controller to the terminal and exposes one method per REPL
// command.
type App struct {
	ctrl   *controller.Controller
	store  session.Store
	reader *bufio.Reader
	out    io.Writer
}

// NewApp assembles the full client: session store, API client, controller,
// renderer. The caller runs it with Run.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := session.Open(ctx, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	ctrl := controller.New(controller.Params{
		API:           apiClient,
		Store:         store,
		Renderer:      NewRenderer(os.Stdout),
		Confirmer:     NewStdinConfirmer(reader, os.Stdout),
		Log:           log,
		DownloadDir:   cfg.DownloadDir,
		AutosaveDelay: cfg.AutosaveDelay,
	})

	return &App{ctrl: ctrl, store: store, reader: reader, out: os.Stdout}, nil
}

// Run hydrates the session and enters the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	if err := a.ctrl.Startup(ctx); err != nil {
		// Startup failures already produced a notice; the REPL still runs.
		_ = err
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
	return nil
}

func (a *App) status() string {
	s := ""
	if user := a.ctrl.CurrentUser(); user != "" {
		s = user + " " + string(a.ctrl.View())
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) loggedIn() bool {
	return a.ctrl.LoggedIn()
}

func (a *App) login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	return a.ctrl.Login(ctx, username, password)
}

func (a *App) register(ctx context.Context) error {
	var req api.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}

	return a.ctrl.Register(ctx, req)
}

func (a *App) logout(ctx context.Context) error {
	return a.ctrl.Logout(ctx)
}

func (a *App) list(ctx context.Context) error {
	return a.ctrl.ListDocuments(ctx)
}

// parseID resolves the document/template id from the command argument or an
// interactive prompt.
func (a *App) parseID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a valid id: %q\n", raw)
		return 0, err
	}
	return id, nil
}

func (a *App) open(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Enter document id")
	if err != nil {
		return err
	}
	return a.ctrl.OpenDocument(ctx, id)
}

func (a *App) create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter document title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}
	return a.ctrl.CreateDocument(ctx, title, content)
}

func (a *App) edit(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Enter new content", a.out)
	if err != nil {
		return err
	}
	return a.ctrl.Edit(ctx, content)
}

func (a *App) save(ctx context.Context) error {
	return a.ctrl.SaveDocument(ctx)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Enter document id to delete")
	if err != nil {
		return err
	}
	return a.ctrl.DeleteDocument(ctx, id)
}

func (a *App) share(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Share with user", a.out)
	if err != nil {
		return err
	}
	perm, err := getSimpleText(a.reader, "Permission (READ_WRITE or READ_ONLY)", a.out)
	if err != nil {
		return err
	}
	return a.ctrl.ShareDocument(ctx, username, perm)
}

func (a *App) shares(ctx context.Context) error {
	return a.ctrl.ListShares(ctx)
}

func (a *App) revoke(ctx context.Context, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = getSimpleText(a.reader, "Revoke access for user", a.out); err != nil {
			return err
		}
	}
	if username == "" {
		fmt.Fprintln(a.out, "Username is required.")
		return common.ErrEmptyField
	}
	return a.ctrl.RevokeShare(ctx, username)
}

func (a *App) templates(ctx context.Context) error {
	return a.ctrl.ShowTemplates(ctx)
}

func (a *App) preview(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Enter template id")
	if err != nil {
		return err
	}
	return a.ctrl.PreviewTemplate(ctx, id)
}

func (a *App) useTemplate(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Enter template id")
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter document title", a.out)
	if err != nil {
		return err
	}
	return a.ctrl.UseTemplate(ctx, id, title)
}

func (a *App) export(ctx context.Context, args []string) error {
	format := ""
	if len(args) > 0 {
		format = args[0]
	} else {
		var err error
		if format, err = getSimpleText(a.reader, "Export format (pdf, txt, md)", a.out); err != nil {
			return err
		}
	}
	return a.ctrl.ExportDocument(ctx, format)
}

func (a *App) history(ctx context.Context) error {
	return a.ctrl.LoadVersionHistory(ctx)
}

func (a *App) docs(_ context.Context) error {
	a.ctrl.ShowDocuments()
	return nil
}
