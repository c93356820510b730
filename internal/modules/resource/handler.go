// Package resource serves the CRUD routes of one entity store.
package resource

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/logger"
	"starwars/internal/pkg/response"
)

// Service is the store surface a Handler needs.
type Service[T, D, P any] interface {
	Create(ctx context.Context, draft D) (*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, patch P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Names are used to build response messages.
type Names struct {
	Singular string // "Character"
	Plural   string // "characters"
}

func (n Names) notFound() string { return n.Singular + " not found" }
func (n Names) empty() string    { return "No " + n.Plural + " found" }

type Handler[T, D, P any] struct {
	svc   Service[T, D, P]
	names Names
}

func NewHandler[T, D, P any](svc Service[T, D, P], names Names) *Handler[T, D, P] {
	return &Handler[T, D, P]{svc: svc, names: names}
}

// RegisterRoutes mounts the five CRUD routes on rg, which is expected to be
// the group of the resource path.
func (h *Handler[T, D, P]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *Handler[T, D, P]) List(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs)
}

func (h *Handler[T, D, P]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler[T, D, P]) Create(c *gin.Context) {
	var draft D
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidJSON, err.Error())
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, response.Message{
		Message: h.names.Singular + " created successfully",
		Record:  rec,
	})
}

func (h *Handler[T, D, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidJSON, err.Error())
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Message{
		Message: fmt.Sprintf("%s with id %d has been updated", h.names.Singular, id),
		Record:  rec,
	})
}

func (h *Handler[T, D, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Message{
		Message: fmt.Sprintf("%s with id %d has been deleted", h.names.Singular, id),
	})
}

func (h *Handler[T, D, P]) fail(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).WithError(err).Debug("request failed")
	response.FromError(c, err, h.names.notFound(), h.names.empty())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidID, "invalid id")
		return 0, false
	}
	return id, true
}
