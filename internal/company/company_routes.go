package company

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", middleware.RBACAuthorize(enforcer, "companies", "read"), handler.GetAll)
		companies.GET("/:id", middleware.RBACAuthorize(enforcer, "companies", "read"), handler.GetById)
		companies.POST("", middleware.RBACAuthorize(enforcer, "companies", "create"), handler.Create)
		companies.PATCH("/:id", middleware.RBACAuthorize(enforcer, "companies", "update"), handler.Update)
		companies.DELETE("/:id", middleware.RBACAuthorize(enforcer, "companies", "delete"), handler.Delete)
	}
}
