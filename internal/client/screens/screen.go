package screens

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/filter"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
	"golang.org/x/text/language"
)

var (
	ErrNotSupported = errors.New("not available on this screen")
	ErrBusy         = errors.New("request already in progress")
	ErrBadID        = errors.New("invalid movie id")
	ErrNotListed    = errors.New("movie is not in the current list")
)

// Screen is a view bound to a route.
type Screen interface {
	Title() string
	OnEnter(ctx context.Context, params router.Params) error
	OnLeave()
	Render(w io.Writer) error
}

// Navigator moves the application to another route.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
	// Notify shows msg once, after the next screen renders.
	Notify(msg string)
}

// ConfirmationPort asks the user a yes/no question.
type ConfirmationPort interface {
	Confirm(prompt string) bool
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

type Searcher interface {
	Search(ctx context.Context, term string) error
}

type Sorter interface {
	Sort(key filter.SortKey) error
}

type StatusFilterer interface {
	FilterStatus(s models.Status) error
}

type Deleter interface {
	Delete(ctx context.Context, id int) error
}

type Toggler interface {
	ToggleStatus(ctx context.Context, id int) error
}

// Editor is implemented by the movie form.
type Editor interface {
	Set(field, value string) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Client  client.Client
	Nav     Navigator
	Confirm ConfirmationPort
	Logger  logging.Logger
	Locale  language.Tag
	// Width reports the output width in columns. Nil means 80.
	Width func() int
}

func (d Deps) width() int {
	if d.Width == nil {
		return defaultWidth
	}
	if w := d.Width(); w > 0 {
		return w
	}
	return defaultWidth
}

// All builds one instance of every screen keyed by its route.
func All(d Deps) map[router.Screen]Screen {
	return map[router.Screen]Screen{
		router.ScreenCatalog:   NewCatalog(d),
		router.ScreenDetail:    NewDetail(d),
		router.ScreenAdminList: NewAdminList(d),
		router.ScreenCreate:    NewMovieForm(d, false),
		router.ScreenEdit:      NewMovieForm(d, true),
	}
}

// view holds the loading latch and the messages every screen shows.
type view struct {
	loading atomic.Bool
	errMsg  string
	notice  string
}

func (v *view) begin() error {
	if !v.loading.CompareAndSwap(false, true) {
		return ErrBusy
	}
	v.errMsg = ""
	return nil
}

func (v *view) end() { v.loading.Store(false) }

func (v *view) reset() {
	v.errMsg = ""
	v.notice = ""
}

// Loading reports whether a request is in flight.
func (v *view) Loading() bool { return v.loading.Load() }

// ErrorMessage returns the message of the last failure, "" when there is
// none.
func (v *view) ErrorMessage() string { return v.errMsg }

// Notice returns the last success message.
func (v *view) Notice() string { return v.notice }

func parseID(params router.Params) (int, error) {
	id, err := strconv.Atoi(params["id"])
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}

func findMovie(ms []models.Movie, id int) (models.Movie, bool) {
	for _, m := range ms {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}
