package screens

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
)

const (
	msgUnavailable = "This movie is not publicly available"
	msgLoadMovie   = "failed to load movie"
	msgNotFound    = "Movie not found"
)

// Detail shows one published movie.
type Detail struct {
	view
	deps   Deps
	logger logging.Logger

	params router.Params
	movie  *models.Movie
}

func NewDetail(d Deps) *Detail {
	return &Detail{deps: d, logger: d.Logger.With("screen", "detail")}
}

func (s *Detail) Title() string { return "Movie" }

// Movie returns the movie shown, nil when none is.
func (s *Detail) Movie() *models.Movie { return s.movie }

func (s *Detail) OnEnter(ctx context.Context, params router.Params) error {
	s.reset()
	s.movie = nil
	s.params = params

	id, err := parseID(params)
	if err != nil {
		s.errMsg = msgNotFound
		return nil
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	m, err := s.deps.Client.GetByID(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "load movie", "id", id, "error", err)
		s.errMsg = client.Message(err, msgLoadMovie)
		return nil
	}
	if !m.Status.IsPublished() {
		s.errMsg = msgUnavailable
		return nil
	}

	s.movie = m
	return nil
}

// Refresh reloads the movie shown.
func (s *Detail) Refresh(ctx context.Context) error { return s.OnEnter(ctx, s.params) }

func (s *Detail) OnLeave() { s.movie = nil }

func (s *Detail) Render(w io.Writer) error {
	width := s.deps.width()
	title := s.Title()
	if s.movie != nil {
		title = s.movie.Name
	}
	if err := heading(w, title, &s.view, width); err != nil {
		return err
	}
	if s.movie == nil {
		return nil
	}

	m := s.movie
	fmt.Fprintf(w, "Rating:  %s/10 %s\n", formatRating(m.Rating), m.Stars())
	fmt.Fprintf(w, "Added:   %s\n", formatDate(m.CreateAt))
	fmt.Fprintf(w, "Poster:  %s\n", m.PosterPath)
	fmt.Fprintln(w)
	for _, line := range wrap(m.Description, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
