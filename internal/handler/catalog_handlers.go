package handler

import (
	"net/http"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/handler/dto"
)

// handleGetCatalog returns the status codes and kanban columns.
// @Summary Status catalog
// @Description Lists the propose and inspection status codes accepted by the filters and the kanban columns.
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /catalog [get]
func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}
	respondJSON(w, http.StatusOK, dto.ToCatalogResponse(h.lists.Catalog()))
}

// handleListSuppliers returns the users that can be picked as assignee.
// @Summary List suppliers
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.SuppliersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *Handler) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}

	users, err := h.lists.Suppliers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	respondJSON(w, http.StatusOK, dto.SuppliersResponse{Suppliers: users})
}
