package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mobiehub/internal/client/filter"
	"github.com/dmitrijs2005/mobiehub/internal/client/form"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/client/screens"
)

var (
	ErrUsage      = errors.New("usage")
	ErrBadSortKey = errors.New("unknown sort key, use rating, date or name")
	ErrBadStatus  = errors.New("unknown status, use ALL, publicada or edicion")
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", screens.ErrBadID, s)
	}
	return id, nil
}

func parseStatus(s string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return models.StatusAll, nil
	case string(models.StatusPublished), "published":
		return models.StatusPublished, nil
	case string(models.StatusDraft), "draft":
		return models.StatusDraft, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadStatus, s)
}

func (a *App) Show(ctx context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}
	return a.Navigate(ctx, router.DetailPath(strings.TrimSpace(id)))
}

func (a *App) Edit(ctx context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}
	return a.Navigate(ctx, router.EditPath(strings.TrimSpace(id)))
}

func (a *App) Refresh(ctx context.Context) error {
	r, ok := a.current.(screens.Refresher)
	if !ok {
		return screens.ErrNotSupported
	}
	return r.Refresh(ctx)
}

func (a *App) Search(ctx context.Context, term string) error {
	s, ok := a.current.(screens.Searcher)
	if !ok {
		return screens.ErrNotSupported
	}
	return s.Search(ctx, term)
}

func (a *App) Sort(_ context.Context, key string) error {
	s, ok := a.current.(screens.Sorter)
	if !ok {
		return screens.ErrNotSupported
	}
	k, valid := filter.ParseSortKey(key)
	if !valid {
		return fmt.Errorf("%w: %q", ErrBadSortKey, key)
	}
	return s.Sort(k)
}

func (a *App) Filter(_ context.Context, status string) error {
	f, ok := a.current.(screens.StatusFilterer)
	if !ok {
		return screens.ErrNotSupported
	}
	st, err := parseStatus(status)
	if err != nil {
		return err
	}
	return f.FilterStatus(st)
}

func (a *App) Delete(ctx context.Context, id string) error {
	d, ok := a.current.(screens.Deleter)
	if !ok {
		return screens.ErrNotSupported
	}
	n, err := parseID(id)
	if err != nil {
		return err
	}
	return d.Delete(ctx, n)
}

func (a *App) Toggle(ctx context.Context, id string) error {
	t, ok := a.current.(screens.Toggler)
	if !ok {
		return screens.ErrNotSupported
	}
	n, err := parseID(id)
	if err != nil {
		return err
	}
	return t.ToggleStatus(ctx, n)
}

// Set assigns value to a form field. A description given without a value
// is read as multiple lines.
func (a *App) Set(_ context.Context, field, value string) error {
	e, ok := a.current.(screens.Editor)
	if !ok {
		return screens.ErrNotSupported
	}
	if field == "" {
		return fmt.Errorf("%w: set <field> <value>", ErrUsage)
	}
	if f, _ := form.ParseField(field); f == form.FieldDescription && value == "" {
		text, err := GetMultiline(a.reader, "Description", a.out)
		if err != nil {
			return err
		}
		value = text
	}
	return e.Set(field, value)
}

func (a *App) Submit(ctx context.Context) error {
	e, ok := a.current.(screens.Editor)
	if !ok {
		return screens.ErrNotSupported
	}
	return e.Submit(ctx)
}

func (a *App) Cancel(ctx context.Context) error {
	e, ok := a.current.(screens.Editor)
	if !ok {
		return screens.ErrNotSupported
	}
	return e.Cancel(ctx)
}

// NoPreview hides the poster preview of the form.
func (a *App) NoPreview(context.Context) error {
	p, ok := a.current.(interface{ PreviewFailed() })
	if !ok {
		return screens.ErrNotSupported
	}
	p.PreviewFailed()
	return nil
}

// Form fails unless the current screen is a form. The REPL redraws it.
func (a *App) Form(context.Context) error {
	if _, ok := a.current.(screens.Editor); !ok {
		return screens.ErrNotSupported
	}
	return nil
}
