package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/config"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/client/screens"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
	"golang.org/x/text/language"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	router  *router.Router
	screens map[router.Screen]screens.Screen

	current screens.Screen
	route   router.Route
	history []string
	notice  string

	reader *bufio.Reader
	out    io.Writer
	width  func() int
}

// NewApp wires the HTTP repository client, the route table and the screens
// for c. Logs go to stderr; the REPL talks on stdin and stdout.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, logger, os.Stdin, os.Stdout, terminalWidth), nil
}

func newApp(c *config.Config, cl client.Client, logger logging.Logger, in io.Reader, out io.Writer, width func() int) *App {
	a := &App{
		config: c,
		logger: logger.With("module", "cli"),
		router: router.New(),
		reader: bufio.NewReader(in),
		out:    out,
		width:  width,
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		a.logger.Warn(context.Background(), "unknown locale, using root collation", "locale", c.Locale, "error", err)
		tag = language.Und
	}

	a.screens = screens.All(screens.Deps{
		Client:  cl,
		Nav:     a,
		Confirm: confirmer{reader: a.reader, out: out},
		Logger:  logger,
		Locale:  tag,
		Width:   width,
	})
	return a
}

// Run enters the catalog and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Mobie Hub (type 'help' for commands)")
	a.logger.Info(ctx, "starting", "api", a.config.APIBaseURL)

	if err := a.Navigate(ctx, router.CatalogPath); err != nil {
		a.logger.Error(ctx, "enter catalog", "error", err)
	}
	_ = a.Render()

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	if router.IsAdmin(a.route.Path) {
		return "admin " + a.route.Path
	}
	return a.route.Path
}

// Navigate leaves the current screen and enters the one bound to path.
func (a *App) Navigate(ctx context.Context, path string) error {
	if a.route.Path != "" && a.route.Path != router.Clean(path) {
		a.history = append(a.history, a.route.Path)
	}
	return a.enter(ctx, path)
}

// Back returns to the previous path, or the catalog when there is none.
func (a *App) Back(ctx context.Context) error {
	path := router.CatalogPath
	if n := len(a.history); n > 0 {
		path = a.history[n-1]
		a.history = a.history[:n-1]
	}
	return a.enter(ctx, path)
}

func (a *App) enter(ctx context.Context, path string) error {
	route := a.router.Resolve(path)
	if route.Redirected {
		a.logger.Debug(ctx, "redirect", "from", path, "to", route.Path)
	}

	if a.current != nil {
		a.current.OnLeave()
	}
	a.route = route
	a.current = a.screens[route.Screen]

	if err := a.current.OnEnter(ctx, route.Params); err != nil {
		return fmt.Errorf("enter %s: %w", route.Path, err)
	}
	return nil
}

// Notify queues msg to be printed after the next render.
func (a *App) Notify(msg string) { a.notice = msg }

// Render draws the current screen and any pending notice.
func (a *App) Render() error {
	if a.current == nil {
		return nil
	}
	fmt.Fprintln(a.out)
	if err := a.current.Render(a.out); err != nil {
		return err
	}
	if a.notice != "" {
		fmt.Fprintln(a.out, a.notice)
		a.notice = ""
	}
	return nil
}
