package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/localtalent/api/http/presenter"
	"github.com/mkravets/localtalent/pkg/application"
	"github.com/mkravets/localtalent/pkg/listing"
)

type ApplicationHandler struct {
	uc application.UseCase
}

func NewApplicationHandler(uc application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationRequest struct {
	CoverLetter  string  `json:"cover_letter" validate:"required"`
	ProposedRate float64 `json:"proposed_rate" validate:"gte=0"`
}

// Submit creates a pending application against a listing and notifies its
// owner.
// @Summary Apply to a job
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Param   input body submitApplicationRequest true "application payload"
// @Security BearerAuth
// @Success 201 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req submitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	a, err := h.uc.Submit(c.Context(), application.SubmitInput{
		JobID:        jobID,
		FreelancerID: uid,
		CoverLetter:  req.CoverLetter,
		ProposedRate: req.ProposedRate,
	})
	if err != nil {
		var verr application.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, listing.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "listing not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to submit application")
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// ListForListing returns applications to one owned listing, newest first.
// @Summary Applications for a listing
// @Tags    applications
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Security BearerAuth
// @Success 200 {array} application.WithApplicant
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForListing(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	apps, err := h.uc.ListForListing(c.Context(), uid, jobID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotOwner):
			return presenter.Error(c, http.StatusForbidden, "listing belongs to another account")
		case errors.Is(err, listing.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "listing not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// ListOwn returns the caller's applications joined with listing details.
// @Summary My applications
// @Tags    applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.WithListing
// @Router  /applications [get]
func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	apps, err := h.uc.ListForFreelancer(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// ListReceived returns applications across all of the caller's listings.
// @Summary Received applications
// @Tags    applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.WithApplicant
// @Router  /applications/received [get]
func (h *ApplicationHandler) ListReceived(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	apps, err := h.uc.ListForBusiness(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// UpdateStatus accepts or rejects a pending application and notifies the
// applicant.
// @Summary Decide on an application
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "application id (UUID)"
// @Param   input body updateStatusRequest true "decision"
// @Security BearerAuth
// @Success 200 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "status must be accepted or rejected")
	}
	a, err := h.uc.UpdateStatus(c.Context(), uid, id, application.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "application not found")
		case errors.Is(err, application.ErrNotOwner):
			return presenter.Error(c, http.StatusForbidden, "listing belongs to another account")
		case errors.Is(err, application.ErrNotPending):
			return presenter.Error(c, http.StatusConflict, "application is no longer pending")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update application")
	}
	return presenter.JSON(c, http.StatusOK, a)
}
