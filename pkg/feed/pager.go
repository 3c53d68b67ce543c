package feed

import (
	"sync"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// Query narrows the feed to a region, district or cemetery
type Query struct {
	Region   string
	District string
	Cemetery string
}

// FetchFunc loads one page of posts for a query
type FetchFunc func(page, size int, query Query) (*api.PostPage, error)

// Pager accumulates feed pages in fetch order. Fetches are serialized:
// a new one is refused while another is in flight, and no fetch is
// issued once the backend reports the last page.
type Pager struct {
	fetch    FetchFunc
	pageSize int

	mu            sync.Mutex
	query         Query
	posts         []api.Post
	nextPage      int
	last          bool
	inFlight      bool
	generation    int
	totalElements int64
}

// NewPager creates a pager over a page fetch function
func NewPager(fetch FetchFunc, pageSize int) (*Pager, error) {
	if fetch == nil {
		return nil, errors.ValidationError("fetch", "must not be nil")
	}
	if pageSize <= 0 {
		return nil, errors.ValidationError("pageSize", "must be positive")
	}
	return &Pager{fetch: fetch, pageSize: pageSize}, nil
}

// FetchNext loads the next page and appends its posts. It is a no-op
// once the last page has been seen, and refuses to overlap an ongoing
// fetch.
func (p *Pager) FetchNext() error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return errors.ValidationError("fetch", "page fetch already in flight")
	}
	if p.last {
		p.mu.Unlock()
		return nil
	}
	p.inFlight = true
	page := p.nextPage
	query := p.query
	gen := p.generation
	p.mu.Unlock()

	result, err := p.fetch(page, p.pageSize, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false

	if gen != p.generation {
		// Reset happened while the fetch was running; the result
		// belongs to the previous query
		logger.Debug("Dropping stale page", "page", page)
		return nil
	}

	if err != nil {
		return errors.CategorizeError(err)
	}

	p.posts = append(p.posts, result.Content...)
	p.nextPage = page + 1
	p.last = result.Last
	p.totalElements = result.TotalElements

	logger.Debug("Fetched feed page", "page", page, "posts", len(result.Content), "last", result.Last)
	return nil
}

// Posts returns every loaded post in fetch order
func (p *Pager) Posts() []api.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Post, len(p.posts))
	copy(out, p.posts)
	return out
}

// HasMore reports whether another page may exist
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.last
}

// InFlight reports whether a page fetch is currently running
func (p *Pager) InFlight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// PageCount returns the number of pages loaded so far
func (p *Pager) PageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextPage
}

// TotalElements returns the backend's total post count for the query
func (p *Pager) TotalElements() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalElements
}

// Query returns the active filter
func (p *Pager) Query() Query {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// Reset discards every loaded page and restarts at page zero under a
// new query. A fetch still in flight for the old query is dropped when
// it completes.
func (p *Pager) Reset(query Query) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = query
	p.posts = nil
	p.nextPage = 0
	p.last = false
	p.totalElements = 0
	p.generation++
}
