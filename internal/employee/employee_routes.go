package employee

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(enforcer, "employees", "read"), handler.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(enforcer, "employees", "read"), handler.GetById)
		employees.POST("", middleware.RBACAuthorize(enforcer, "employees", "create"), handler.Create)
		employees.PATCH("/:id", middleware.RBACAuthorize(enforcer, "employees", "update"), handler.Update)
		employees.POST("/:id/activate", middleware.RBACAuthorize(enforcer, "employees", "update"), handler.Activate)
		employees.POST("/:id/deactivate", middleware.RBACAuthorize(enforcer, "employees", "update"), handler.Deactivate)
		employees.DELETE("/:id", middleware.RBACAuthorize(enforcer, "employees", "delete"), handler.Delete)
	}
}
