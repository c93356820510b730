package favorite

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars/internal/domain"
	"starwars/internal/pkg/response"
)

// View is the favorites aggregate read model.
type View interface {
	All(ctx context.Context) ([]domain.UserFavorites, error)
	ForUser(ctx context.Context, userID int64) (*domain.UserFavorites, error)
}

// Handler serves the per-user favorites aggregate.
type Handler struct {
	view View
}

func NewHandler(view View) *Handler {
	return &Handler{view: view}
}

// RegisterRoutes mounts the aggregate under the user group.
func (h *Handler) RegisterRoutes(users *gin.RouterGroup) {
	users.GET("/favorites", h.GetAll)
	users.GET("/:id/favorites", h.GetForUser)
}

// GetAll returns one entry per user. No users is an empty list, not an error.
func (h *Handler) GetAll(c *gin.Context) {
	views, err := h.view.All(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "", "")
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) GetForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidID, "invalid user id")
		return
	}

	view, err := h.view.ForUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "User not found", "")
		return
	}
	response.Success(c, http.StatusOK, view)
}
