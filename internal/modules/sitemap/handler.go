// Package sitemap lists the API's routes at the root path.
package sitemap

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/response"
)

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Handler struct {
	routes func() gin.RoutesInfo
}

// NewHandler reads the engine's routes on every request, so routes
// registered after the handler are still listed.
func NewHandler(engine *gin.Engine) *Handler {
	return &Handler{routes: engine.Routes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	routes := h.routes()
	endpoints := make([]Endpoint, 0, len(routes))
	for _, r := range routes {
		endpoints = append(endpoints, Endpoint{Method: r.Method, Path: r.Path})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})
	response.Success(c, http.StatusOK, endpoints)
}
