package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/mkravets/localtalent/api/http/presenter"
	"github.com/mkravets/localtalent/pkg/profile"
	"github.com/mkravets/localtalent/pkg/skills"
)

type ProfileHandler struct {
	uc profile.UseCase
}

func NewProfileHandler(uc profile.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

// Get returns the caller's profile.
// @Summary Current profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	p, err := h.uc.GetByAccount(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	if p == nil {
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type createProfileRequest struct {
	Role string `json:"role" validate:"required,oneof=business freelancer"`
}

// Create performs one-time role selection. The role is fixed afterwards.
// @Summary Create profile (role selection)
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body createProfileRequest true "role selection"
// @Security BearerAuth
// @Success 201 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /profile [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "please select a role")
	}
	p, err := h.uc.Create(c.Context(), uid, profile.Role(req.Role))
	if err != nil {
		if errors.Is(err, profile.ErrAlreadyExists) {
			return presenter.Error(c, http.StatusConflict, "profile already exists")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create profile")
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

type updateProfileRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	CompanyName string `json:"company_name"`
	Bio         string `json:"bio"`
	// Skills come as comma-separated free text, like the signup forms.
	Skills   string `json:"skills"`
	Location string `json:"location" validate:"required"`
}

// Update edits the profile's display fields. Role and account id are not
// editable.
// @Summary Update profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "profile fields"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	p, err := h.uc.Update(c.Context(), uid, profile.Update{
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		Bio:         req.Bio,
		Skills:      skills.ParseList(req.Skills),
		Location:    req.Location,
	})
	if err != nil {
		var verr profile.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, profile.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Watch streams profile changes for the caller as server-sent events. The
// underlying subscription is torn down when the client disconnects.
// @Summary Live profile change stream (SSE)
// @Tags    profile
// @Produce text/event-stream
// @Security BearerAuth
// @Router  /profile/watch [get]
func (h *ProfileHandler) Watch(c *fiber.Ctx) error {
	uid, ok := accountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify account")
	}
	// The stream outlives this handler call; its lifetime is bound to the
	// writer below, not to the request context.
	ctx, cancel := context.WithCancel(context.Background())
	updates, err := h.uc.Watch(ctx, uid)
	if err != nil {
		cancel()
		return presenter.Error(c, http.StatusInternalServerError, "failed to subscribe")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		heartbeat := time.NewTicker(15 * time.Second)
		defer heartbeat.Stop()
		for {
			select {
			case p, ok := <-updates:
				if !ok {
					return
				}
				payload, err := json.Marshal(p)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-heartbeat.C:
				// Comment line keeps the connection alive and lets
				// Flush detect a gone client.
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}
