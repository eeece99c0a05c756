package screens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/form"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
)

const (
	msgSaveMovie = "failed to save movie"
	msgCreated   = "Movie created"
	msgUpdated   = "Movie updated"
	progressBar  = 20
)

// MovieForm is the create or edit screen.
type MovieForm struct {
	view
	deps   Deps
	logger logging.Logger
	edit   bool

	form *form.Form
}

func NewMovieForm(d Deps, edit bool) *MovieForm {
	name := "movie_new"
	if edit {
		name = "movie_edit"
	}
	return &MovieForm{deps: d, edit: edit, logger: d.Logger.With("screen", name)}
}

func (s *MovieForm) Title() string {
	if s.edit {
		return "Edit movie"
	}
	return "New movie"
}

// Form returns the active form, nil before a successful OnEnter.
func (s *MovieForm) Form() *form.Form { return s.form }

func (s *MovieForm) OnEnter(ctx context.Context, params router.Params) error {
	s.reset()
	s.form = nil

	if !s.edit {
		s.form = form.New()
		return nil
	}

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
		s.errMsg = client.Message(err, msgLoadMovie)
		s.logger.Error(ctx, "load movie", "id", id, "error", err)
		return nil
	}
	s.form = form.Hydrate(*m)
	return nil
}

func (s *MovieForm) OnLeave() { s.form = nil }

func (s *MovieForm) Set(field, value string) error {
	if s.form == nil {
		return ErrNotSupported
	}
	f, ok := form.ParseField(field)
	if !ok {
		return fmt.Errorf("%w: %q", form.ErrUnknownField, field)
	}
	return s.form.Set(f, value)
}

// Submit saves the form and returns to the admin list on success.
func (s *MovieForm) Submit(ctx context.Context) error {
	if s.form == nil {
		return ErrNotSupported
	}
	s.errMsg = ""

	_, err := s.form.Submit(ctx, s.deps.Client)
	switch {
	case err == nil:
	case errors.Is(err, form.ErrBusy):
		return err
	case errors.Is(err, form.ErrInvalidForm):
		s.errMsg = form.MsgInvalidForm
		return nil
	default:
		s.errMsg = client.Message(err, msgSaveMovie)
		s.logger.Error(ctx, "save movie", "mode", s.form.Mode(), "error", err)
		return nil
	}

	notice := msgCreated
	if s.edit {
		notice = msgUpdated
	}
	s.logger.Info(ctx, "movie saved", "mode", s.form.Mode(), "id", s.form.ID())
	s.deps.Nav.Notify(notice)
	return s.deps.Nav.Navigate(ctx, router.AdminListPath)
}

// Cancel leaves the form, asking first when there are unsaved changes.
func (s *MovieForm) Cancel(ctx context.Context) error {
	if s.form != nil && !s.form.Cancel(s.deps.Confirm) {
		return nil
	}
	return s.deps.Nav.Navigate(ctx, router.AdminListPath)
}

// PreviewFailed drops the poster preview, as when the image cannot load.
func (s *MovieForm) PreviewFailed() {
	if s.form != nil {
		s.form.ClearPreview()
	}
}

func (s *MovieForm) Render(w io.Writer) error {
	width := s.deps.width()
	if err := heading(w, s.Title(), &s.view, width); err != nil {
		return err
	}
	f := s.form
	if f == nil {
		return nil
	}

	tw := newTable(w)
	for _, field := range form.Fields {
		value := f.Value(field)
		if field == form.FieldDescription {
			value = truncate(value, max(10, width-40))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", field, value, counter(f, field), marker(f.FieldClass(field)))
		if msg := f.FieldError(field); msg != "" {
			fmt.Fprintf(tw, "\t  %s\t\t\n", msg)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if p := f.ImagePreview(); p != "" {
		fmt.Fprintln(w, "Preview:", p)
	}
	fmt.Fprintf(w, "Rating:  %s %.0f%% (%s %s)\n", bar(f.RatingProgress()), f.RatingProgress(), f.RatingTier(), f.RatingTier().Color())
	return nil
}

func counter(f *form.Form, field form.Field) string {
	if n := f.MaxLength(field); n > 0 {
		return fmt.Sprintf("%d/%d", f.CharCount(field), n)
	}
	return ""
}

func marker(class string) string {
	switch class {
	case "is-valid":
		return "ok"
	case "is-invalid":
		return "!!"
	}
	return ""
}

func bar(progress float64) string {
	filled := int(progress / 100 * progressBar)
	filled = min(max(filled, 0), progressBar)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressBar-filled) + "]"
}
