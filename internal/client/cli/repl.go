package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mobiehub/internal/client/form"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/client/screens"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  help                        show this help
  go <path>                   open a route, e.g. /catalog or /admin/movies
  catalog | admin             shortcuts for /catalog and /admin/movies
  show <id>                   public detail of a movie
  new | edit <id>             open the movie form
  refresh                     reload the current screen
  search [term...]            search (catalog: by name; admin: name or description)
  sort <rating|date|name>     order the catalog
  filter <ALL|publicada|edicion>
                              filter the admin list by status
  delete <id> | toggle <id>   delete or publish/unpublish a movie (admin)
  set <field> <value...>      edit a form field: name, posterPath, description, rating, status
  form                        redraw the form
  nopreview                   hide the poster preview
  submit | cancel             save or leave the form
  back                        previous screen
  exit | quit                 leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Navigate(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Sort(ctx context.Context, key string) error
	Filter(ctx context.Context, status string) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	Set(ctx context.Context, field, value string) error
	Form(ctx context.Context) error
	NoPreview(ctx context.Context) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
	Render() error
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// Each line is split into a command and the rest of the line, which is
// passed to the handler unchanged apart from trimming. After a handler
// succeeds the current screen is redrawn; failures are printed and the loop
// goes on. The prompt shows statusFn().
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mh %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		var res error
		switch cmd {
		case "help":
			printlnFn(helpText)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "go":
			if rest == "" {
				printlnFn("Usage: go <path>")
				continue
			}
			res = a.Navigate(ctx, rest)

		case "catalog":
			res = a.Navigate(ctx, router.CatalogPath)

		case "admin":
			res = a.Navigate(ctx, router.AdminListPath)

		case "new":
			res = a.Navigate(ctx, router.CreatePath)

		case "back":
			res = a.Back(ctx)

		case "show", "edit", "delete", "toggle":
			if rest == "" {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			res = dispatchID(ctx, a, cmd, rest)

		case "refresh":
			res = a.Refresh(ctx)

		case "search":
			res = a.Search(ctx, rest)

		case "sort":
			res = a.Sort(ctx, rest)

		case "filter":
			res = a.Filter(ctx, rest)

		case "set":
			field, value, _ := strings.Cut(rest, " ")
			res = a.Set(ctx, field, strings.TrimSpace(value))

		case "form":
			res = a.Form(ctx)

		case "nopreview":
			res = a.NoPreview(ctx)

		case "submit":
			res = a.Submit(ctx)

		case "cancel":
			res = a.Cancel(ctx)

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if res != nil {
			report(res)
			continue
		}
		if err := a.Render(); err != nil {
			report(err)
		}
	}
}

func dispatchID(ctx context.Context, a execIface, cmd, id string) error {
	switch cmd {
	case "show":
		return a.Show(ctx, id)
	case "edit":
		return a.Edit(ctx, id)
	case "delete":
		return a.Delete(ctx, id)
	}
	return a.Toggle(ctx, id)
}

func report(err error) {
	switch {
	case errors.Is(err, screens.ErrNotSupported):
		printlnFn(screens.ErrNotSupported.Error())
	case errors.Is(err, screens.ErrBusy), errors.Is(err, form.ErrBusy):
		printlnFn("Please wait, a request is in progress")
	default:
		printlnFn("error:", err)
	}
}
