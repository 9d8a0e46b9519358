package i

import "github.com/gin-gonic/gin"

// Controller mounts its routes on the versioned API group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
