package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/localtalent/api/http/presenter"
	"github.com/mkravets/localtalent/pkg/listing"
)

type ListingHandler struct {
	uc listing.UseCase
}

func NewListingHandler(uc listing.UseCase) *ListingHandler { return &ListingHandler{uc: uc} }

type createListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Location    string  `json:"location" validate:"required"`
	// Skills come as comma-separated free text.
	Skills string `json:"skills"`
}

// Create posts a new job listing owned by the caller.
// @Summary Create job listing
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body createListingRequest true "listing fields"
// @Security BearerAuth
// @Success 201 {object} listing.Listing
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	var req createListingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	l, err := h.uc.Create(c.Context(), listing.Listing{
		BusinessID:  uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Location:    req.Location,
	}, req.Skills)
	if err != nil {
		var verr listing.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create listing")
	}
	return presenter.JSON(c, http.StatusCreated, l)
}

// Browse lists open job postings for the public browse view, newest first.
// @Summary Browse open jobs
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} listing.Listing
// @Router  /jobs [get]
func (h *ListingHandler) Browse(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	ls, err := h.uc.Browse(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	return presenter.JSON(c, http.StatusOK, ls)
}

// ListOwn lists the caller's own job postings.
// @Summary My job listings
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} listing.Listing
// @Router  /jobs/mine [get]
func (h *ListingHandler) ListOwn(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	limit, offset := parseLimitOffset(c, 50)
	ls, err := h.uc.ListOwn(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	return presenter.JSON(c, http.StatusOK, ls)
}

// Get returns one listing by id.
// @Summary Get job listing
// @Tags    jobs
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Security BearerAuth
// @Success 200 {object} listing.Listing
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	l, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "listing not found")
	}
	return presenter.JSON(c, http.StatusOK, l)
}

type updateListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Location    string  `json:"location" validate:"required"`
	Skills      string  `json:"skills"`
	Status      string  `json:"status" validate:"required,oneof=open closed"`
}

// Update edits an owned listing.
// @Summary Update job listing
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Param   input body updateListingRequest true "listing fields"
// @Security BearerAuth
// @Success 200 {object} listing.Listing
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	l, err := h.uc.Update(c.Context(), uid, listing.Listing{
		ID:          id,
		BusinessID:  uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Location:    req.Location,
		Status:      listing.Status(req.Status),
	}, req.Skills)
	if err != nil {
		var verr listing.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, listing.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "listing not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update listing")
	}
	return presenter.JSON(c, http.StatusOK, l)
}

// Delete removes an owned listing.
// @Summary Delete job listing
// @Tags    jobs
// @Produce json
// @Param   id path string true "listing id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
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
