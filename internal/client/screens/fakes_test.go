package screens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/mobiehub/internal/client/client"
	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
)

var errNotFound = &client.RequestError{Op: "get by id", Status: 404, Message: "Movie does not exist", Err: client.ErrNotFound}

type fakeClient struct {
	movies map[int]models.Movie
	err    error

	calls   []string
	updates map[int]models.MovieRequest
	created []models.MovieRequest
	deleted []int
	byName  []string
}

func newFakeClient(ms ...models.Movie) *fakeClient {
	c := &fakeClient{movies: make(map[int]models.Movie), updates: make(map[int]models.MovieRequest)}
	for _, m := range ms {
		c.movies[m.ID] = m
	}
	return c
}

func (c *fakeClient) sorted() []models.Movie {
	out := []models.Movie{}
	for id := 1; id <= 100; id++ {
		if m, ok := c.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (c *fakeClient) ListAll(ctx context.Context) ([]models.Movie, error) {
	c.calls = append(c.calls, "ListAll")
	if c.err != nil {
		return nil, c.err
	}
	return c.sorted(), nil
}

func (c *fakeClient) ListByStatus(ctx context.Context, s models.Status) ([]models.Movie, error) {
	c.calls = append(c.calls, "ListByStatus")
	if c.err != nil {
		return nil, c.err
	}
	out := []models.Movie{}
	for _, m := range c.sorted() {
		if m.Status == s {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *fakeClient) ListByName(ctx context.Context, name string) ([]models.Movie, error) {
	c.calls = append(c.calls, "ListByName")
	c.byName = append(c.byName, name)
	if c.err != nil {
		return nil, c.err
	}
	return c.sorted(), nil
}

func (c *fakeClient) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	c.calls = append(c.calls, "GetByID")
	if c.err != nil {
		return nil, c.err
	}
	m, ok := c.movies[id]
	if !ok {
		return nil, errNotFound
	}
	return &m, nil
}

func (c *fakeClient) Create(ctx context.Context, m models.MovieRequest) (*models.Movie, error) {
	c.calls = append(c.calls, "Create")
	c.created = append(c.created, m)
	return nil, c.err
}

func (c *fakeClient) Update(ctx context.Context, id int, m models.MovieRequest) (*models.Movie, error) {
	c.calls = append(c.calls, "Update")
	if c.err != nil {
		return nil, c.err
	}
	c.updates[id] = m
	cur := c.movies[id]
	cur.Status = m.Status
	c.movies[id] = cur
	return &cur, nil
}

func (c *fakeClient) Delete(ctx context.Context, id int) error {
	c.calls = append(c.calls, "Delete")
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, id)
	delete(c.movies, id)
	return nil
}

type fakeNav struct {
	paths   []string
	notices []string
}

func (n *fakeNav) Navigate(ctx context.Context, path string) error {
	n.paths = append(n.paths, path)
	return nil
}

func (n *fakeNav) Notify(msg string) { n.notices = append(n.notices, msg) }

type fakeConfirm struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirm) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

func testDeps(c *fakeClient) (Deps, *fakeNav, *fakeConfirm) {
	nav := &fakeNav{}
	conf := &fakeConfirm{answer: true}
	return Deps{
		Client:  c,
		Nav:     nav,
		Confirm: conf,
		Logger:  logging.Discard(),
		Width:   func() int { return 100 },
	}, nav, conf
}

func day(d int) time.Time { return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC) }

func catalogFixture() []models.Movie {
	return []models.Movie{
		{ID: 1, Name: "Alien", Description: "In space no one can hear you scream.", PosterPath: "http://x.com/a.jpg", Rating: 5, Status: models.StatusPublished, CreateAt: day(1)},
		{ID: 2, Name: "Heat", Description: "A crime saga in Los Angeles.", PosterPath: "http://x.com/h.jpg", Rating: 8, Status: models.StatusDraft, CreateAt: day(2)},
		{ID: 3, Name: "Cube", Description: "Strangers trapped in a maze.", PosterPath: "http://x.com/c.jpg", Rating: 5, Status: models.StatusPublished, CreateAt: day(3)},
		{ID: 4, Name: "Brazil", Description: "A bureaucratic nightmare.", PosterPath: "http://x.com/b.jpg", Rating: 8, Status: models.StatusPublished, CreateAt: day(4)},
	}
}

func testLogger() logging.Logger { return logging.Discard() }
