package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/localtalent/api/http/presenter"
	"github.com/mkravets/localtalent/pkg/notification"
)

type NotificationHandler struct {
	uc notification.UseCase
}

func NewNotificationHandler(uc notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns the caller's most recent notifications, newest first.
// @Summary Recent notifications
// @Tags    notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} notification.Notification
// @Router  /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	limit, _ := parseLimitOffset(c, 10)
	ns, err := h.uc.Recent(c.Context(), uid, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list notifications")
	}
	return presenter.JSON(c, http.StatusOK, ns)
}

// MarkRead flips the read flag. Safe to repeat.
// @Summary Mark notification read
// @Tags    notifications
// @Produce json
// @Param   id path string true "notification id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.MarkRead(c.Context(), id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "notification not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to mark notification")
	}
	return c.SendStatus(http.StatusNoContent)
}
