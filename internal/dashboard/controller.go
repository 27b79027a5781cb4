package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
	"golang.org/x/sync/errgroup"
)

const DefaultMapQuery = "Principais hospitais de excelência e redes laboratoriais no Brasil"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyQuery      = errors.New("empty search query")
)

type Gateway interface {
	FetchNews(ctx context.Context, keywords, sources, query string) (llm.QueryResult, error)
	FetchLocations(ctx context.Context, query string) (llm.QueryResult, error)
	FetchTicker(ctx context.Context) []string
}

type ViewState struct {
	SelectedCategoryID string
	SearchQuery        string
	Loading            model.LoadingState
	// Result is the last completed result. While Loading it still holds the
	// previous one, or nil after a category switch.
	Result *llm.QueryResult
	Ticker []string
	Err    string
}

func (s ViewState) MapMode() bool {
	return s.SelectedCategoryID == model.MapCategoryID
}

// Controller owns the dashboard state for one session. Every request is
// tagged with a sequence number and only the latest one may update state.
type Controller struct {
	gateway Gateway

	mu            sync.Mutex
	state         ViewState
	seq           uint64
	tickerLoading bool

	bg sync.WaitGroup
}

func NewController(gateway Gateway) *Controller {
	return &Controller{
		gateway: gateway,
		state: ViewState{
			SelectedCategoryID: model.DefaultCategoryID,
			Loading:            model.StateIdle,
		},
	}
}

func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Ticker = append([]string(nil), c.state.Ticker...)
	return s
}

// Start performs the initial load of the selected category together with
// the ticker. It returns the category fetch error, if any.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	category, query := c.state.SelectedCategoryID, c.state.SearchQuery
	seq := c.begin(false)
	c.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		c.loadTicker(ctx)
		return nil
	})
	g.Go(func() error {
		return c.load(ctx, seq, category, query)
	})
	return g.Wait()
}

// SelectCategory switches category, clearing the search query and the
// current result before fetching.
func (c *Controller) SelectCategory(ctx context.Context, id string) error {
	run, err := c.selectCategory(ctx, id)
	if err != nil {
		return err
	}
	return run()
}

func (c *Controller) Search(ctx context.Context, query string) error {
	run, err := c.search(ctx, query)
	if err != nil {
		return err
	}
	return run()
}

// Refresh re-issues the current request. It is also the retry path after an
// error.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.refresh(ctx)()
}

// SelectCategoryAsync validates the selection and moves the state to Loading,
// then fetches in the background. The fetch outcome is only visible through
// State.
func (c *Controller) SelectCategoryAsync(ctx context.Context, id string) error {
	run, err := c.selectCategory(ctx, id)
	if err != nil {
		return err
	}
	c.background(run)
	return nil
}

func (c *Controller) SearchAsync(ctx context.Context, query string) error {
	run, err := c.search(ctx, query)
	if err != nil {
		return err
	}
	c.background(run)
	return nil
}

func (c *Controller) RefreshAsync(ctx context.Context) {
	c.background(c.refresh(ctx))
}

// Wait blocks until background fetches have finished.
func (c *Controller) Wait() {
	c.bg.Wait()
}

func (c *Controller) selectCategory(ctx context.Context, id string) (func() error, error) {
	if _, ok := model.FindCategory(id); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}

	c.mu.Lock()
	c.state.SelectedCategoryID = id
	c.state.SearchQuery = ""
	seq := c.begin(true)
	c.mu.Unlock()

	c.background(func() error {
		c.loadTicker(context.WithoutCancel(ctx))
		return nil
	})

	return func() error {
		return c.load(ctx, seq, id, "")
	}, nil
}

func (c *Controller) search(ctx context.Context, query string) (func() error, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	c.mu.Lock()
	c.state.SearchQuery = query
	category := c.state.SelectedCategoryID
	seq := c.begin(false)
	c.mu.Unlock()

	return func() error {
		return c.load(ctx, seq, category, query)
	}, nil
}

func (c *Controller) refresh(ctx context.Context) func() error {
	c.mu.Lock()
	category, query := c.state.SelectedCategoryID, c.state.SearchQuery
	seq := c.begin(false)
	c.mu.Unlock()

	return func() error {
		return c.load(ctx, seq, category, query)
	}
}

// background runs fn under the Wait group. load records any error in the
// state.
func (c *Controller) background(fn func() error) {
	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		_ = fn()
	}()
}

// begin must be called with c.mu held.
func (c *Controller) begin(clearResult bool) uint64 {
	c.seq++
	c.state.Loading = model.StateLoading
	c.state.Err = ""
	if clearResult {
		c.state.Result = nil
	}
	return c.seq
}

func (c *Controller) load(ctx context.Context, seq uint64, categoryID, query string) error {
	result, err := c.fetch(ctx, categoryID, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		slog.Info("discarding superseded response", "category", categoryID, "seq", seq, "latest", c.seq)
		return nil
	}

	if err != nil {
		slog.Error("error loading dashboard", "category", categoryID, "query", query, "error", err)
		c.state.Loading = model.StateError
		c.state.Err = err.Error()
		return err
	}

	c.state.Result = &result
	c.state.Loading = model.StateSuccess
	slog.Info("dashboard loaded", "category", categoryID, "query", query, "chunks", len(result.Chunks))
	return nil
}

func (c *Controller) fetch(ctx context.Context, categoryID, query string) (llm.QueryResult, error) {
	if categoryID == model.MapCategoryID {
		if query == "" {
			query = DefaultMapQuery
		}
		return c.gateway.FetchLocations(ctx, query)
	}

	category, ok := model.FindCategory(categoryID)
	if !ok {
		return llm.QueryResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	return c.gateway.FetchNews(ctx, category.Keywords, category.Sources, query)
}

func (c *Controller) loadTicker(ctx context.Context) {
	c.mu.Lock()
	if len(c.state.Ticker) > 0 || c.tickerLoading {
		c.mu.Unlock()
		return
	}
	c.tickerLoading = true
	c.mu.Unlock()

	headlines := c.gateway.FetchTicker(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickerLoading = false
	if len(c.state.Ticker) == 0 {
		c.state.Ticker = headlines
	}
}
