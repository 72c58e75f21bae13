package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homehaven/homehaven/backend/go-services/internal/property"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/service"
	"github.com/homehaven/homehaven/backend/go-services/pkg/logger"
	"github.com/homehaven/homehaven/backend/go-services/pkg/metrics"
)

// RegisterPropertyRoutes wires the listing API onto the engine. The handlers
// only marshal requests and responses; filtering, validation, and defaults
// live in the service and below.
func RegisterPropertyRoutes(r *gin.Engine, svc service.Service) {
	h := &propertyHandler{svc: svc}
	r.GET("/properties", h.List)
	r.POST("/properties", h.Create)
	r.GET("/properties/:id", h.Get)
	r.PUT("/properties/:id", h.Update)
	r.DELETE("/properties/:id", h.Delete)
}

type propertyHandler struct {
	svc service.Service
}

// List supports ?type= (facet, "All" means no restriction) and ?search=
// (case-insensitive substring over name, location, description).
func (h *propertyHandler) List(c *gin.Context) {
	typeFacet := c.Query("type")
	search := c.Query("search")
	list, err := h.svc.List(c.Request.Context(), typeFacet, search)
	if err != nil {
		fail(c, "list", http.StatusInternalServerError, "Failed to fetch properties", err)
		return
	}
	metrics.PropertyOps.WithLabelValues("list", "ok").Inc()
	c.JSON(http.StatusOK, list)
}

func (h *propertyHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, "get", http.StatusNotFound, "Property not found", nil)
	case err != nil:
		fail(c, "get", http.StatusInternalServerError, "Failed to fetch property", err)
	default:
		metrics.PropertyOps.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, p)
	}
}

func (h *propertyHandler) Create(c *gin.Context) {
	var in property.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, "create", http.StatusBadRequest, "Missing required fields", nil)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &in)
	switch {
	case errors.Is(err, service.ErrValidation):
		fail(c, "create", http.StatusBadRequest, "Missing required fields", nil)
	case err != nil:
		fail(c, "create", http.StatusInternalServerError, "Failed to create property", err)
	default:
		metrics.PropertyOps.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, p)
	}
}

func (h *propertyHandler) Update(c *gin.Context) {
	var in property.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, "update", http.StatusBadRequest, "Missing required fields", nil)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	switch {
	case errors.Is(err, service.ErrValidation):
		fail(c, "update", http.StatusBadRequest, "Missing required fields", nil)
	case errors.Is(err, service.ErrNotFound):
		fail(c, "update", http.StatusNotFound, "Property not found", nil)
	case err != nil:
		fail(c, "update", http.StatusInternalServerError, "Failed to update property", err)
	default:
		metrics.PropertyOps.WithLabelValues("update", "ok").Inc()
		c.JSON(http.StatusOK, p)
	}
}

func (h *propertyHandler) Delete(c *gin.Context) {
	p, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, "delete", http.StatusNotFound, "Property not found", nil)
	case err != nil:
		fail(c, "delete", http.StatusInternalServerError, "Failed to delete property", err)
	default:
		metrics.PropertyOps.WithLabelValues("delete", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully", "property": p})
	}
}

// fail writes the error body the wire contract promises. Internal detail is
// only logged, never returned to the caller.
func fail(c *gin.Context, op string, status int, msg string, err error) {
	if err != nil {
		logger.Errorf("%s properties: %v", op, err)
	}
	metrics.PropertyOps.WithLabelValues(op, outcome(status)).Inc()
	c.JSON(status, gin.H{"error": msg})
}

func outcome(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}
