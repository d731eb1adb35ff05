package handler

import (
	"net/http"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/handler/dto"
	"github.com/mtlprog/proposedesk/internal/service"
)

// stateTransition resolves the account and view, runs op and writes the
// resulting state.
func (h *Handler) stateTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(accountID string, view domain.View) (*service.StateResult, error),
) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}
	view, ok := extractView(w, r)
	if !ok {
		return
	}

	res, err := op(account.ID, view)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToStateResponse(res))
}

// handleGetState returns the current query state of a view.
// @Summary Get view state
// @Description Returns the persisted list-query state of the view and the query parameters sent upstream for it.
// @Tags views
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/state [get]
func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.State(r.Context(), accountID, view)
	})
}

// handleNextPage moves the view one page forward.
// @Summary Next page
// @Tags views
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/page/next [post]
func (h *Handler) handleNextPage(w http.ResponseWriter, r *http.Request) {
	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.NextPage(r.Context(), accountID, view)
	})
}

// handlePreviousPage moves the view one page back.
// @Summary Previous page
// @Description Moves one page back. On the first page the state is unchanged.
// @Tags views
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/page/previous [post]
func (h *Handler) handlePreviousPage(w http.ResponseWriter, r *http.Request) {
	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.PreviousPage(r.Context(), accountID, view)
	})
}

// handleMovePage jumps to a page.
// @Summary Move to page
// @Description Jumps to the given page. Values below 1 land on the first page.
// @Tags views
// @Accept json
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Param request body dto.MovePageRequest true "Target page"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/page [put]
func (h *Handler) handleMovePage(w http.ResponseWriter, r *http.Request) {
	var req dto.MovePageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Page == nil {
		respondDomainError(w, domain.ErrInvalidPage)
		return
	}

	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.MoveToPage(r.Context(), accountID, view, *req.Page)
	})
}

// handleSetFilters merges a partial filter update.
// @Summary Update filters
// @Description Merges the given filters into the state and returns to the first page. Omitted fields are kept; an empty value clears a filter.
// @Tags views
// @Accept json
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Param request body dto.UpdateFiltersRequest true "Filters to change"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/filters [patch]
func (h *Handler) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFiltersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.SetFilters(r.Context(), accountID, view, req.ToFilterFields())
	})
}

// handleClearFilters drops every filter.
// @Summary Clear filters
// @Description Removes every filter. The page and the search term are kept.
// @Tags views
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/filters [delete]
func (h *Handler) handleClearFilters(w http.ResponseWriter, r *http.Request) {
	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.ClearFilters(r.Context(), accountID, view)
	})
}

// handleSearch records a typed search term.
// @Summary Search
// @Description Records the search term. It is applied after a short quiet period, or immediately when commit is true or the term is empty.
// @Tags views
// @Accept json
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/search [put]
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.Search(r.Context(), accountID, view, req.Term, req.Commit)
	})
}

// handleResetView drops the view's state and its persisted copy.
// @Summary Reset view state
// @Description Returns the view to the first page with no filters and no search, and deletes the stored state.
// @Tags views
// @Produce json
// @Param view path string true "View" Enums(proposes, board, users)
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/state [delete]
func (h *Handler) handleResetView(w http.ResponseWriter, r *http.Request) {
	h.stateTransition(w, r, func(accountID string, view domain.View) (*service.StateResult, error) {
		return h.lists.ResetView(r.Context(), accountID, view)
	})
}
