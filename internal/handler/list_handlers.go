package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mtlprog/proposedesk/internal/handler/dto"
)

// handleListProposes returns the page of the view's current state.
// @Summary List proposes
// @Description Fetches the page selected by the view's state. A response superseded by a newer request of the same view is answered with 409.
// @Tags proposes
// @Produce json
// @Param view path string true "View" Enums(proposes, board)
// @Param refresh query bool false "Bypass cached pages"
// @Success 200 {object} dto.ProposeListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/proposes [get]
func (h *Handler) handleListProposes(w http.ResponseWriter, r *http.Request) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}
	view, ok := extractView(w, r)
	if !ok {
		return
	}

	res, err := h.lists.Proposes(r.Context(), account.ID, view, queryBool(r, "refresh"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToProposeListResponse(res))
}

// handleGetBoard returns the current page grouped into kanban columns.
// @Summary Kanban board
// @Tags proposes
// @Produce json
// @Param view path string true "View" Enums(proposes, board)
// @Param refresh query bool false "Bypass cached pages"
// @Success 200 {object} dto.BoardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/board [get]
func (h *Handler) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}
	view, ok := extractView(w, r)
	if !ok {
		return
	}

	res, err := h.lists.Board(r.Context(), account.ID, view, queryBool(r, "refresh"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToBoardResponse(res))
}

// handleExport renders every page of the view's current filters.
// @Summary Export proposes
// @Description Reads every page matching the current filters and returns them as a CSV or PDF file.
// @Tags proposes
// @Produce text/csv
// @Produce application/pdf
// @Param view path string true "View" Enums(proposes, board)
// @Param format query string false "File format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /views/{view}/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}
	view, ok := extractView(w, r)
	if !ok {
		return
	}

	file, err := h.lists.Export(r.Context(), account.ID, view, r.URL.Query().Get("format"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("X-Export-Rows", strconv.Itoa(file.Rows))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		slog.Warn("failed to write export", "error", err)
	}
}

// handleGetPropose returns a single propose.
// @Summary Get propose
// @Tags proposes
// @Produce json
// @Param id path int true "Propose ID"
// @Success 200 {object} domain.Propose
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /proposes/{id} [get]
func (h *Handler) handleGetPropose(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}
	id, ok := extractProposeID(w, r)
	if !ok {
		return
	}

	p, err := h.lists.Propose(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// handleMovePropose moves a propose to another kanban column.
// @Summary Move propose
// @Description Sets the propose status to the one of the target column and invalidates every cached page.
// @Tags proposes
// @Accept json
// @Produce json
// @Param id path int true "Propose ID"
// @Param request body dto.MoveProposeRequest true "Target column"
// @Success 200 {object} dto.MoveProposeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /proposes/{id}/move [post]
func (h *Handler) handleMovePropose(w http.ResponseWriter, r *http.Request) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}
	id, ok := extractProposeID(w, r)
	if !ok {
		return
	}
	var req dto.MoveProposeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	col, err := h.lists.MoveToColumn(r.Context(), id, req.Column)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	slog.Info("propose moved by account", "account_id", account.ID, "propose_id", id, "column", col.ID)

	respondJSON(w, http.StatusOK, dto.MoveProposeResponse{
		ProposeID: id,
		Column:    col.ID,
		Status:    col.Status,
	})
}
