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

const msgLoadCatalog = "failed to load movies"

// Catalog is the public list of published movies.
type Catalog struct {
	view
	deps   Deps
	logger logging.Logger

	source []models.Movie
	movies []models.Movie
	term   string
	state  filter.State
}

func NewCatalog(d Deps) *Catalog {
	return &Catalog{
		deps:   d,
		logger: d.Logger.With("screen", "catalog"),
		state:  filter.State{Status: models.StatusPublished, Locale: d.Locale},
	}
}

func (c *Catalog) Title() string { return "Catalog" }

func (c *Catalog) OnEnter(ctx context.Context, _ router.Params) error {
	c.reset()
	c.term = ""
	c.state.Sort = filter.SortNone
	return c.load(ctx)
}

func (c *Catalog) OnLeave() {
	c.source = nil
	c.movies = nil
}

// Movies returns the list currently shown.
func (c *Catalog) Movies() []models.Movie { return c.movies }

func (c *Catalog) Refresh(ctx context.Context) error { return c.load(ctx) }

// Search asks the backend for movies whose name contains term. A blank
// term restores the published list.
func (c *Catalog) Search(ctx context.Context, term string) error {
	c.term = strings.TrimSpace(term)
	return c.load(ctx)
}

// Sort reorders the current list without a request.
func (c *Catalog) Sort(key filter.SortKey) error {
	c.state.Sort = key
	c.movies = filter.Apply(c.source, c.state)
	return nil
}

func (c *Catalog) load(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	var (
		ms  []models.Movie
		err error
	)
	if c.term == "" {
		ms, err = c.deps.Client.ListByStatus(ctx, models.StatusPublished)
	} else {
		ms, err = c.deps.Client.ListByName(ctx, c.term)
	}
	if err != nil {
		c.errMsg = client.Message(err, msgLoadCatalog)
		c.logger.Error(ctx, "load catalog", "term", c.term, "error", err)
		return nil
	}

	c.source = ms
	c.movies = filter.Apply(c.source, c.state)
	c.logger.Debug(ctx, "catalog loaded", "total", len(ms), "shown", len(c.movies))
	return nil
}

func (c *Catalog) Render(w io.Writer) error {
	width := c.deps.width()
	title := c.Title()
	if c.term != "" {
		title += fmt.Sprintf(" (search: %q)", c.term)
	}
	if c.state.Sort != filter.SortNone {
		title += fmt.Sprintf(" (sort: %s)", c.state.Sort)
	}
	if err := heading(w, title, &c.view, width); err != nil {
		return err
	}

	if len(c.movies) == 0 {
		_, err := fmt.Fprintln(w, "No movies found")
		return err
	}

	nameWidth := max(10, width-40)
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tADDED")
	for _, m := range c.movies {
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\n", m.ID, truncate(m.Name, nameWidth), formatRating(m.Rating), m.Stars(), formatDate(m.CreateAt))
	}
	return tw.Flush()
}
