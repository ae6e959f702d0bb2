// Package v1 provides the HTTP API of the service.
package v1

import (
	"github.com/gin-gonic/gin"
)

// ResourceRouteHandler defines the endpoints every resource exposes.
type ResourceRouteHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
	Count(c *gin.Context)
}

// RegisterResourceRoutes registers the standard routes for a resource.
//
// Usage:
//
//	repo := catalog_repo.NewBeerRepo(cfg.TxManager)
//	service := beer.NewService(repo, cfg.DefaultPageSize)
//	handler := handlers.NewBeerHandler(baseHandler, service, cfg.TaggedResults)
//	RegisterResourceRoutes(api.Group("/beer"), handler)
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	group.POST("", handler.Create)
	group.PATCH("", handler.Update)
	group.DELETE("", handler.Delete)
	group.POST("/get", handler.Search)
	group.POST("/count", handler.Count)
}
