// Package handler exposes the HTTP handlers of the name service. Each
// handler validates its input, calls the repository with a bounded
// context, and translates failures into JSON error responses.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/erevald/fantasy-names/internal/model"
	"github.com/erevald/fantasy-names/internal/queue"
	"github.com/erevald/fantasy-names/internal/repository"
	queue_publisher "github.com/erevald/fantasy-names/internal/service"
)

// NameHandler bundles the dependencies of the name endpoints.
type NameHandler struct {
	Repo *repository.NameRepo
}

// NewNameHandler constructs a NameHandler over the given repository.
func NewNameHandler(repo *repository.NameRepo) *NameHandler {
	return &NameHandler{Repo: repo}
}

// ----- DTOs -----

type addNameReq struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Origin string `json:"origin"`
}

type statsResp struct {
	Stats []model.GenderCount `json:"stats"`
}

// RandomNames handles GET /api/names/random. Validation failures map to
// 400 before any query runs; store failures map to 500.
func (h *NameHandler) RandomNames(c echo.Context) error {
	spec, err := parseRandomQuery(
		c.QueryParam("gender"),
		c.QueryParam("count"),
		c.QueryParam("origin"),
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Repo.FindRandom(ctx, spec)
	if err != nil {
		log.Printf("random names query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, res)
}

// AddName handles POST /api/names/add. Name and gender are required and
// gender must be one of the storable values; the same constraint is
// enforced again by the schema, so a direct repository caller that
// bypasses this check still cannot insert an invalid row.
func (h *NameHandler) AddName(c echo.Context) error {
	var req addNameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.Origin = strings.TrimSpace(req.Origin)

	if req.Name == "" || req.Gender == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and gender are required"})
	}
	if !model.ValidGender(req.Gender) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gender must be male, female or neutral"})
	}

	rec := model.NameRecord{Name: req.Name, Gender: req.Gender}
	if req.Origin != "" {
		rec.Origin = &req.Origin
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Repo.Add(ctx, &rec); err != nil {
		log.Printf("add name failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add name"})
	}

	// Best effort: a publish failure must not fail the request.
	_ = queue_publisher.PublishNameAdded(ctx, queue.NameAddedEvent{
		ID:      rec.ID,
		Name:    rec.Name,
		Gender:  rec.Gender,
		Origin:  req.Origin,
		AddedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "name added"})
}

// Stats handles GET /api/names/stats. Genders with no rows are simply
// absent from the list.
func (h *NameHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.Repo.Stats(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPersistence) {
			log.Printf("stats query failed: %v", err)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if stats == nil {
		stats = []model.GenderCount{}
	}
	return c.JSON(http.StatusOK, statsResp{Stats: stats})
}
