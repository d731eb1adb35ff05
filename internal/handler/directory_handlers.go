package handler

import (
	"net/http"

	"github.com/mtlprog/proposedesk/internal/handler/dto"
)

// handleListUsers returns the current page of the user directory.
// @Summary List users
// @Description Returns the page of the account's users view. Page and search are changed through /views/users/*.
// @Tags users
// @Produce json
// @Param refresh query bool false "Bypass cached pages"
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	account, ok := requestAccount(w, r)
	if !ok {
		return
	}

	res, err := h.lists.Users(r.Context(), account.ID, queryBool(r, "refresh"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserListResponse(res))
}

// handleNotifyUser sends a notification to a user.
// @Summary Notify user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.NotifyUserRequest true "Message"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/notifications [post]
func (h *Handler) handleNotifyUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}
	id, ok := extractID(w, r, "user")
	if !ok {
		return
	}
	var req dto.NotifyUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.notifications.Notify(r.Context(), id, req.Message); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListNotifications returns the notifications of the service user.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} dto.NotificationsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}

	list, err := h.notifications.List(r.Context(), queryBool(r, "unread"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToNotificationsResponse(list))
}

// handleGetNotification returns one notification.
// @Summary Get notification
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [get]
func (h *Handler) handleGetNotification(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}
	id, ok := extractID(w, r, "notification")
	if !ok {
		return
	}

	n, err := h.notifications.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, n)
}

// handleReadNotification marks a notification read.
// @Summary Mark notification read
// @Description The id is the recipient entry of the notification, as listed in its recipients.
// @Tags notifications
// @Param id path int true "Recipient ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *Handler) handleReadNotification(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestAccount(w, r); !ok {
		return
	}
	id, ok := extractID(w, r, "notification")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
