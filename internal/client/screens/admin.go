package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/filter"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
)

const (
	msgLoadMovies   = "failed to load movies"
	msgDeleteMovie  = "failed to delete movie"
	msgUpdateStatus = "failed to update status"
	msgDeleted      = "Movie deleted"
	msgStatusSet    = "Status updated"
)

// AdminList is the management table of every movie.
type AdminList struct {
	view
	deps   Deps
	logger logging.Logger

	source []models.Movie
	movies []models.Movie
	state  filter.State
}

func NewAdminList(d Deps) *AdminList {
	return &AdminList{
		deps:   d,
		logger: d.Logger.With("screen", "admin_list"),
		state:  filter.State{Status: models.StatusAll},
	}
}

func (a *AdminList) Title() string { return "Movies admin" }

func (a *AdminList) OnEnter(ctx context.Context, _ router.Params) error {
	a.reset()
	a.state = filter.State{Status: models.StatusAll}
	return a.load(ctx)
}

func (a *AdminList) OnLeave() {
	a.source = nil
	a.movies = nil
}

func (a *AdminList) Movies() []models.Movie { return a.movies }

func (a *AdminList) Refresh(ctx context.Context) error {
	a.notice = ""
	return a.load(ctx)
}

// Search narrows the loaded list by name or description.
func (a *AdminList) Search(_ context.Context, term string) error {
	a.state.Search = strings.TrimSpace(term)
	a.apply()
	return nil
}

func (a *AdminList) FilterStatus(s models.Status) error {
	a.state.Status = s
	a.apply()
	return nil
}

func (a *AdminList) apply() {
	a.movies = filter.Apply(a.source, a.state)
}

func (a *AdminList) load(ctx context.Context) error {
	if err := a.begin(); err != nil {
		return err
	}
	defer a.end()

	ms, err := a.deps.Client.ListAll(ctx)
	if err != nil {
		a.errMsg = client.Message(err, msgLoadMovies)
		a.logger.Error(ctx, "load movies", "error", err)
		return nil
	}
	a.source = ms
	a.apply()
	return nil
}

// Delete removes the movie with id after confirmation and reloads.
func (a *AdminList) Delete(ctx context.Context, id int) error {
	m, ok := findMovie(a.source, id)
	if !ok {
		return fmt.Errorf("delete %d: %w", id, ErrNotListed)
	}
	if !a.deps.Confirm.Confirm(fmt.Sprintf("Delete %q?", m.Name)) {
		return nil
	}

	if err := a.begin(); err != nil {
		return err
	}
	err := a.deps.Client.Delete(ctx, id)
	a.end()
	if err != nil {
		a.errMsg = client.Message(err, msgDeleteMovie)
		a.logger.Error(ctx, "delete movie", "id", id, "error", err)
		return nil
	}

	a.logger.Info(ctx, "movie deleted", "id", id)
	if err := a.load(ctx); err != nil {
		return err
	}
	a.notice = msgDeleted
	return nil
}

// ToggleStatus flips the publication state of the movie with id after
// confirmation and reloads.
func (a *AdminList) ToggleStatus(ctx context.Context, id int) error {
	m, ok := findMovie(a.source, id)
	if !ok {
		return fmt.Errorf("toggle %d: %w", id, ErrNotListed)
	}
	next := m.Status.Toggle()
	if !a.deps.Confirm.Confirm(fmt.Sprintf("Change status to %s?", next)) {
		return nil
	}

	if err := a.begin(); err != nil {
		return err
	}
	req := m.Request()
	req.Status = next
	_, err := a.deps.Client.Update(ctx, id, req)
	a.end()
	if err != nil {
		a.errMsg = client.Message(err, msgUpdateStatus)
		a.logger.Error(ctx, "toggle status", "id", id, "error", err)
		return nil
	}

	a.logger.Info(ctx, "status changed", "id", id, "status", next)
	if err := a.load(ctx); err != nil {
		return err
	}
	a.notice = msgStatusSet
	return nil
}

func (a *AdminList) Render(w io.Writer) error {
	width := a.deps.width()
	title := fmt.Sprintf("%s (status: %s", a.Title(), a.state.Status)
	if a.state.Search != "" {
		title += fmt.Sprintf(", search: %q", a.state.Search)
	}
	title += ")"
	if err := heading(w, title, &a.view, width); err != nil {
		return err
	}

	if len(a.movies) == 0 {
		_, err := fmt.Fprintln(w, "No movies found")
		return err
	}

	nameWidth := max(10, width-50)
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tRATING\tADDED")
	for _, m := range a.movies {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", m.ID, truncate(m.Name, nameWidth), statusCell(m.Status), formatRating(m.Rating), formatDate(m.CreateAt))
	}
	return tw.Flush()
}

func statusCell(s models.Status) string {
	return fmt.Sprintf("%s [%s]", s, strings.TrimPrefix(s.Badge(), "badge-"))
}
