package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/localtalent/api/http/presenter"
	"github.com/mkravets/localtalent/pkg/talent"
)

type TalentHandler struct {
	uc talent.UseCase
}

func NewTalentHandler(uc talent.UseCase) *TalentHandler { return &TalentHandler{uc: uc} }

type talentListingRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	HourlyRate   float64 `json:"hourly_rate" validate:"gte=0"`
	Location     string  `json:"location" validate:"required"`
	Skills       string  `json:"skills"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
}

// Create posts a talent listing owned by the caller.
// @Summary Create talent listing
// @Tags    talent
// @Accept  json
// @Produce json
// @Param   input body talentListingRequest true "listing fields"
// @Security BearerAuth
// @Success 201 {object} talent.Listing
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /talent [post]
func (h *TalentHandler) Create(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	var req talentListingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	l, err := h.uc.Create(c.Context(), talent.Listing{
		FreelancerID: uid,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		HourlyRate:   req.HourlyRate,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
	}, req.Skills)
	if err != nil {
		var verr talent.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create listing")
	}
	return presenter.JSON(c, http.StatusCreated, l)
}

// Browse lists all talent listings, newest first.
// @Summary Browse talent
// @Tags    talent
// @Produce json
// @Security BearerAuth
// @Success 200 {array} talent.Listing
// @Router  /talent [get]
func (h *TalentHandler) Browse(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	ls, err := h.uc.Browse(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list talent")
	}
	return presenter.JSON(c, http.StatusOK, ls)
}

// ListOwn lists the caller's talent listings.
// @Summary My talent listings
// @Tags    talent
// @Produce json
// @Security BearerAuth
// @Success 200 {array} talent.Listing
// @Router  /talent/mine [get]
func (h *TalentHandler) ListOwn(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	limit, offset := parseLimitOffset(c, 50)
	ls, err := h.uc.ListOwn(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list talent")
	}
	return presenter.JSON(c, http.StatusOK, ls)
}

// Update edits an owned talent listing.
// @Summary Update talent listing
// @Tags    talent
// @Accept  json
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Param   input body talentListingRequest true "listing fields"
// @Security BearerAuth
// @Success 200 {object} talent.Listing
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /talent/{id} [put]
func (h *TalentHandler) Update(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req talentListingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	l, err := h.uc.Update(c.Context(), uid, talent.Listing{
		ID:           id,
		FreelancerID: uid,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		HourlyRate:   req.HourlyRate,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
	}, req.Skills)
	if err != nil {
		var verr talent.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, talent.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "listing not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update listing")
	}
	return presenter.JSON(c, http.StatusOK, l)
}

// Delete removes an owned talent listing.
// @Summary Delete talent listing
// @Tags    talent
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /talent/{id} [delete]
func (h *TalentHandler) Delete(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "listing not found")
	}
	return c.SendStatus(http.StatusNoContent)
}
