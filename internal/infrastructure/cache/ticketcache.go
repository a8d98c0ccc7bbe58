// Package cache keeps fetched ticket pages in memory, keyed by page
// number. Previously fetched pages stay visible while a refetch is in
// flight, and every fetch carries a generation token so a slow response
// for an abandoned page can never overwrite the page the user is looking
// at now.
package cache

import (
	"sync"
	"time"

	"deskline/internal/domain/ticket"
)

// PageResult is one resolved page of the ticket list.
type PageResult struct {
	Tickets      []ticket.Ticket
	TotalRecords int64
	FetchedAt    time.Time
}

// FetchToken identifies one in-flight fetch: the page it was issued for
// and the selection generation current at issue time.
type FetchToken struct {
	Page       int
	generation uint64
}

// TicketCache is the page-keyed ticket list cache.
type TicketCache struct {
	mu         sync.Mutex
	pages      map[int]PageResult
	selected   int
	generation uint64
}

func NewTicketCache() *TicketCache {
	return &TicketCache{
		pages:    make(map[int]PageResult),
		selected: 1,
	}
}

// Select records the user's navigation to a page and issues the token the
// resulting fetch must present at commit time. Every call invalidates all
// tokens issued before it.
func (c *TicketCache) Select(page int) FetchToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = page
	c.generation++
	return FetchToken{Page: page, generation: c.generation}
}

// Selected returns the currently selected page.
func (c *TicketCache) Selected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Commit stores a resolved page under its own page key and reports
// whether the result is current, i.e. whether the user is still on the
// page this fetch was issued for. A stale commit still refreshes its own
// page's cache entry but must not be rendered as the current view.
func (c *TicketCache) Commit(token FetchToken, result PageResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if result.FetchedAt.IsZero() {
		result.FetchedAt = time.Now()
	}
	c.pages[token.Page] = result
	return token.generation == c.generation && token.Page == c.selected
}

// Page returns the cached result for a page, if present. Serving a cached
// entry while a refetch is in flight is the stale-while-revalidate path.
func (c *TicketCache) Page(page int) (PageResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.pages[page]
	return result, ok
}

// Invalidate drops all cached pages. Called after every successful
// mutation so the next read goes to the server.
func (c *TicketCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[int]PageResult)
	c.generation++
}
