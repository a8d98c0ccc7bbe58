package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/infrastructure/cache"
	"deskline/internal/shared/constants"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type ListTicketsQuery struct {
	Page int
}

type ListTicketsResult struct {
	Tickets      []ticket.Ticket
	TotalRecords int64
	Page         int
	TotalPages   int
	// Stale marks a result served from the page cache after a failed
	// refetch; FromMirror marks the durable last-known-good fallback.
	// Neither may be used as a basis for mutations.
	Stale      bool
	FromMirror bool
	// Superseded marks a response that resolved after the user navigated
	// to another page. It refreshed its own cache slot but must not be
	// rendered as the current view.
	Superseded bool
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	api    TicketAPI
	cache  PageCache
	mirror MirrorStore
	logger logger.Interface
}

func NewListTicketsUseCase(
	api TicketAPI,
	pageCache PageCache,
	mirror MirrorStore,
	log logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		api:    api,
		cache:  pageCache,
		mirror: mirror,
		logger: log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, constants.TicketPageSize)
	page := pagination.Page

	uc.logger.Infow("fetching ticket page", "page", page)

	token := uc.cache.Select(page)
	fetched, err := uc.api.ListTickets(ctx, page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to fetch ticket page", "page", page, "error", err)
		return uc.fallback(page, err)
	}

	// a page past the end comes back empty; clamp and refetch once
	if len(fetched.Tickets) == 0 && fetched.TotalRecords > 0 {
		if clamped := utils.ClampPage(page, fetched.TotalRecords, pagination.PageSize); clamped != page {
			uc.logger.Infow("page out of range, clamping", "requested", page, "clamped", clamped)
			return uc.Execute(ctx, ListTicketsQuery{Page: clamped})
		}
	}

	current := uc.cache.Commit(token, cache.PageResult{
		Tickets:      fetched.Tickets,
		TotalRecords: fetched.TotalRecords,
	})
	if !current {
		uc.logger.Infow("ticket page resolved after navigation, not current", "page", page)
	}

	if len(fetched.Tickets) > 0 {
		if err := uc.mirror.SaveMirror(fetched.Tickets, fetched.TotalRecords); err != nil {
			uc.logger.Warnw("failed to mirror ticket page", "error", err)
		}
	} else if result, ok := uc.mirrorResult(page); ok {
		// transient empty result with a known-good snapshot on hand
		uc.logger.Infow("empty ticket page, falling back to mirror", "page", page)
		result.Superseded = !current
		return result, nil
	}

	return &ListTicketsResult{
		Tickets:      fetched.Tickets,
		TotalRecords: fetched.TotalRecords,
		Page:         page,
		TotalPages:   utils.TotalPages(fetched.TotalRecords, pagination.PageSize),
		Superseded:   !current,
	}, nil
}

// fallback serves the cached page, then the durable mirror, after a
// failed fetch. The error is only surfaced when neither exists.
func (uc *ListTicketsUseCase) fallback(page int, fetchErr error) (*ListTicketsResult, error) {
	superseded := uc.cache.Selected() != page
	if cached, ok := uc.cache.Page(page); ok {
		return &ListTicketsResult{
			Tickets:      cached.Tickets,
			TotalRecords: cached.TotalRecords,
			Page:         page,
			TotalPages:   utils.TotalPages(cached.TotalRecords, constants.TicketPageSize),
			Stale:        true,
			Superseded:   superseded,
		}, nil
	}
	if result, ok := uc.mirrorResult(page); ok {
		result.Superseded = superseded
		return result, nil
	}
	return nil, fetchErr
}

func (uc *ListTicketsUseCase) mirrorResult(page int) (*ListTicketsResult, bool) {
	tickets, totalRecords, ok, err := uc.mirror.LoadMirror()
	if err != nil {
		uc.logger.Warnw("failed to load ticket mirror", "error", err)
		return nil, false
	}
	if !ok || len(tickets) == 0 {
		return nil, false
	}
	return &ListTicketsResult{
		Tickets:      tickets,
		TotalRecords: totalRecords,
		Page:         page,
		TotalPages:   utils.TotalPages(totalRecords, constants.TicketPageSize),
		FromMirror:   true,
	}, true
}
