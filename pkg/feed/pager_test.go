package feed

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
)

// pagedFetch serves deterministic pages of n posts each
func pagedFetch(totalPosts, calls *int) FetchFunc {
	return func(page, size int, query Query) (*api.PostPage, error) {
		*calls++
		start := page * size
		var content []api.Post
		for i := start; i < start+size && i < *totalPosts; i++ {
			content = append(content, api.Post{ID: int64(i + 1), FullName: fmt.Sprintf("Post %d", i+1)})
		}
		return &api.PostPage{
			Content:       content,
			Last:          start+size >= *totalPosts,
			Number:        page,
			TotalElements: int64(*totalPosts),
		}, nil
	}
}

func TestNewPagerValidation(t *testing.T) {
	if _, err := NewPager(nil, 10); err == nil {
		t.Error("Expected error for nil fetch")
	}
	if _, err := NewPager(func(int, int, Query) (*api.PostPage, error) { return nil, nil }, 0); err == nil {
		t.Error("Expected error for zero page size")
	}
	if _, err := NewPager(func(int, int, Query) (*api.PostPage, error) { return nil, nil }, -5); err == nil {
		t.Error("Expected error for negative page size")
	}
}

func TestPagesConcatenateInOrder(t *testing.T) {
	total, calls := 5, 0
	p, err := NewPager(pagedFetch(&total, &calls), 2)
	if err != nil {
		t.Fatalf("NewPager failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := p.FetchNext(); err != nil {
			t.Fatalf("FetchNext %d failed: %v", i, err)
		}
	}

	posts := p.Posts()
	if len(posts) != 5 {
		t.Fatalf("Expected 5 posts, got %d", len(posts))
	}
	for i, post := range posts {
		if post.ID != int64(i+1) {
			t.Errorf("Position %d: expected id %d, got %d", i, i+1, post.ID)
		}
	}
	if p.PageCount() != 3 {
		t.Errorf("Expected 3 pages, got %d", p.PageCount())
	}
	if p.TotalElements() != 5 {
		t.Errorf("Expected total 5, got %d", p.TotalElements())
	}
}

func TestNoFetchPastLastPage(t *testing.T) {
	total, calls := 3, 0
	p, _ := NewPager(pagedFetch(&total, &calls), 5)

	if err := p.FetchNext(); err != nil {
		t.Fatalf("FetchNext failed: %v", err)
	}
	if p.HasMore() {
		t.Error("Single-page feed should report no more pages")
	}

	callsBefore := calls
	if err := p.FetchNext(); err != nil {
		t.Fatalf("FetchNext past last should be a silent no-op, got %v", err)
	}
	if calls != callsBefore {
		t.Errorf("Fetch should not run past the last page: %d calls", calls)
	}
	if len(p.Posts()) != 3 {
		t.Errorf("Post list should be unchanged, got %d", len(p.Posts()))
	}
}

func TestConcurrentFetchRefused(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(page, size int, query Query) (*api.PostPage, error) {
		close(started)
		<-release
		return &api.PostPage{Last: true}, nil
	}

	p, _ := NewPager(fetch, 10)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.FetchNext()
	}()

	<-started
	if err := p.FetchNext(); err == nil {
		t.Error("Overlapping fetch should be refused")
	}
	if !p.InFlight() {
		t.Error("First fetch should still be in flight")
	}

	close(release)
	wg.Wait()

	if p.InFlight() {
		t.Error("Fetch should have completed")
	}
}

func TestFetchErrorSurfaces(t *testing.T) {
	boom := errors.New("connection refused")
	p, _ := NewPager(func(int, int, Query) (*api.PostPage, error) { return nil, boom }, 10)

	if err := p.FetchNext(); err == nil {
		t.Fatal("Expected fetch error to surface")
	}
	if len(p.Posts()) != 0 {
		t.Error("Failed fetch should add no posts")
	}
	if !p.HasMore() {
		t.Error("Failed fetch should not mark the feed exhausted")
	}

	// The failed page can be retried
	if p.PageCount() != 0 {
		t.Errorf("Failed fetch should not advance the page counter, got %d", p.PageCount())
	}
}

func TestResetRestartsAtPageZero(t *testing.T) {
	var fetchedPages []int
	var fetchedQueries []Query
	fetch := func(page, size int, query Query) (*api.PostPage, error) {
		fetchedPages = append(fetchedPages, page)
		fetchedQueries = append(fetchedQueries, query)
		return &api.PostPage{
			Content: []api.Post{{ID: int64(page + 1)}},
			Last:    false,
		}, nil
	}

	p, _ := NewPager(fetch, 10)
	p.FetchNext()
	p.FetchNext()

	p.Reset(Query{Region: "Toshkent", District: "Chilonzor"})

	if len(p.Posts()) != 0 {
		t.Errorf("Reset should discard loaded posts, got %d", len(p.Posts()))
	}

	p.FetchNext()

	if got := fetchedPages[len(fetchedPages)-1]; got != 0 {
		t.Errorf("Fetch after reset should request page 0, got %d", got)
	}
	if got := fetchedQueries[len(fetchedQueries)-1]; got.Region != "Toshkent" || got.District != "Chilonzor" {
		t.Errorf("Fetch after reset should carry the new query, got %+v", got)
	}
}

func TestResetDropsStaleInFlightPage(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(page, size int, query Query) (*api.PostPage, error) {
		if query.Region == "" {
			close(started)
			<-release
		}
		return &api.PostPage{
			Content: []api.Post{{ID: 99, FullName: "Stale " + query.Region}},
			Last:    true,
		}, nil
	}

	p, _ := NewPager(fetch, 10)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.FetchNext()
	}()

	<-started
	p.Reset(Query{Region: "Samarqand"})
	close(release)
	wg.Wait()

	if got := len(p.Posts()); got != 0 {
		t.Errorf("Stale page should be dropped after reset, got %d posts", got)
	}
	if !p.HasMore() {
		t.Error("Stale last flag should not stick after reset")
	}
}

func TestResetClearsExhaustion(t *testing.T) {
	total, calls := 1, 0
	p, _ := NewPager(pagedFetch(&total, &calls), 10)

	p.FetchNext()
	if p.HasMore() {
		t.Fatal("Feed should be exhausted")
	}

	p.Reset(Query{})
	if !p.HasMore() {
		t.Error("Reset should clear exhaustion")
	}

	p.FetchNext()
	if calls != 2 {
		t.Errorf("Fetch after reset should hit the backend, got %d calls", calls)
	}
}
