package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes served without authentication, such as
// quote calculation and catalog reads.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes that mutate the price catalog. The
// router places them behind JWT auth when an auth service is configured.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
