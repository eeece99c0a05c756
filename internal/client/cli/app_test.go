package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/config"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/client/router"
	"github.com/dmitrijs2005/mobiehub/internal/client/screens"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memClient is an in-memory client.Client.
type memClient struct {
	movies []models.Movie
	nextID int
}

func newMemClient() *memClient {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &memClient{
		nextID: 4,
		movies: []models.Movie{
			{ID: 1, Name: "Alien", Description: "In space no one can hear you scream.", PosterPath: "http://x.com/a.jpg", Rating: 8.5, Status: models.StatusPublished, CreateAt: t},
			{ID: 2, Name: "Heat", Description: "A crime saga in Los Angeles.", PosterPath: "http://x.com/h.jpg", Rating: 8.3, Status: models.StatusDraft, CreateAt: t.AddDate(0, 1, 0)},
			{ID: 3, Name: "Cube", Description: "Strangers trapped in a maze.", PosterPath: "http://x.com/c.jpg", Rating: 6.1, Status: models.StatusPublished, CreateAt: t.AddDate(0, 2, 0)},
		},
	}
}

func (c *memClient) ListAll(ctx context.Context) ([]models.Movie, error) {
	return append([]models.Movie{}, c.movies...), nil
}

func (c *memClient) ListByStatus(ctx context.Context, s models.Status) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, m := range c.movies {
		if m.Status == s {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *memClient) ListByName(ctx context.Context, name string) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(name)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *memClient) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	for _, m := range c.movies {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, &client.RequestError{Op: "get by id", Status: 404, Message: "failed to load movie", Err: client.ErrNotFound}
}

func (c *memClient) Create(ctx context.Context, r models.MovieRequest) (*models.Movie, error) {
	m := models.Movie{ID: c.nextID, Name: r.Name, Description: r.Description, PosterPath: r.PosterPath, Rating: r.Rating, Status: r.Status}
	c.nextID++
	c.movies = append(c.movies, m)
	return &m, nil
}

func (c *memClient) Update(ctx context.Context, id int, r models.MovieRequest) (*models.Movie, error) {
	for i, m := range c.movies {
		if m.ID == id {
			c.movies[i].Name, c.movies[i].Description = r.Name, r.Description
			c.movies[i].PosterPath, c.movies[i].Rating, c.movies[i].Status = r.PosterPath, r.Rating, r.Status
			return &c.movies[i], nil
		}
	}
	return nil, errors.New("missing")
}

func (c *memClient) Delete(ctx context.Context, id int) error {
	for i, m := range c.movies {
		if m.ID == id {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			return nil
		}
	}
	return errors.New("missing")
}

func testApp(t *testing.T, input string) (*App, *memClient, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	mc := newMemClient()
	var out bytes.Buffer
	a := newApp(cfg, mc, logging.Discard(), strings.NewReader(input), &out, func() int { return 100 })
	return a, mc, &out
}

func TestApp_NavigateCallsLifecycleAndTracksHistory(t *testing.T) {
	a, _, _ := testApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Navigate(ctx, "/"))
	assert.Equal(t, router.CatalogPath, a.route.Path)
	assert.Equal(t, "/catalog", a.status())

	require.NoError(t, a.Navigate(ctx, "/admin/movies"))
	assert.Equal(t, "admin /admin/movies", a.status())

	require.NoError(t, a.Navigate(ctx, "/movie/1"))
	detail := a.current.(*screens.Detail)
	require.NotNil(t, detail.Movie())

	require.NoError(t, a.Back(ctx))
	assert.Equal(t, "/admin/movies", a.route.Path)
	assert.Nil(t, detail.Movie(), "OnLeave ran on the detail screen")

	require.NoError(t, a.Back(ctx))
	assert.Equal(t, "/catalog", a.route.Path)
	require.NoError(t, a.Back(ctx))
	assert.Equal(t, "/catalog", a.route.Path)
}

func TestApp_UnknownPathsFallBackToCatalog(t *testing.T) {
	a, _, _ := testApp(t, "")
	require.NoError(t, a.Navigate(context.Background(), "/does/not/exist"))
	assert.Equal(t, router.ScreenCatalog, a.route.Screen)
	assert.IsType(t, &screens.Catalog{}, a.current)
}

func TestApp_CommandsOnWrongScreen(t *testing.T) {
	a, _, _ := testApp(t, "")
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, "/catalog"))

	assert.ErrorIs(t, a.Delete(ctx, "1"), screens.ErrNotSupported)
	assert.ErrorIs(t, a.Filter(ctx, "ALL"), screens.ErrNotSupported)
	assert.ErrorIs(t, a.Submit(ctx), screens.ErrNotSupported)
	assert.ErrorIs(t, a.Form(ctx), screens.ErrNotSupported)
	assert.ErrorIs(t, a.Sort(ctx, "popularity"), ErrBadSortKey)
	assert.ErrorIs(t, a.Show(ctx, "abc"), screens.ErrBadID)

	require.NoError(t, a.Navigate(ctx, "/admin/movies"))
	assert.ErrorIs(t, a.Sort(ctx, "name"), screens.ErrNotSupported)
	assert.ErrorIs(t, a.Filter(ctx, "published-ish"), ErrBadStatus)
}

func TestApp_SessionThroughREPL(t *testing.T) {
	input := strings.Join([]string{
		"sort name",
		"admin",
		"filter edicion",
		"toggle 2",
		"y",
		"delete 3",
		"n",
		"delete 1",
		"yes",
		"new",
		"set name Dune",
		"set posterPath https://x.com/dune.webp",
		"set description",
		"Paul travels to Arrakis",
		"with his family.",
		"",
		"set rating 9",
		"submit",
		"exit",
	}, "\n") + "\n"

	a, mc, out := testApp(t, input)
	captureOutput(t)
	a.Run(context.Background())

	var names []string
	for _, m := range mc.movies {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Heat", "Cube", "Dune"}, names)
	assert.Equal(t, models.StatusPublished, mc.movies[0].Status)
	assert.Equal(t, "Paul travels to Arrakis\nwith his family.", mc.movies[2].Description)
	assert.Equal(t, models.StatusDraft, mc.movies[2].Status)

	text := out.String()
	assert.Contains(t, text, `Change status to publicada? [y/N]`)
	assert.Contains(t, text, `Delete "Cube"? [y/N]`)
	assert.Contains(t, text, "Movie deleted")
	assert.Contains(t, text, "Movie created")
	assert.Equal(t, router.AdminListPath, a.route.Path)
}

func TestApp_CancelDirtyFormAsks(t *testing.T) {
	input := "new\nset name Dune\ncancel\nn\ncancel\ny\n"
	a, _, out := testApp(t, input)
	captureOutput(t)
	a.Run(context.Background())

	assert.Equal(t, 2, strings.Count(out.String(), "Unsaved changes will be lost."))
	assert.Equal(t, router.AdminListPath, a.route.Path)
}

func TestNewApp_RejectsBadBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = "localhost:8080"
	_, err := NewApp(cfg)
	require.Error(t, err)
}
