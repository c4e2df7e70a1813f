package attendance

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(enforcer, "attendances", "read"), handler.GetAll)
		attendances.POST("/clock-in", middleware.RBACAuthorize(enforcer, "attendances", "create"), handler.ClockIn)
		attendances.POST("/clock-out", middleware.RBACAuthorize(enforcer, "attendances", "create"), handler.ClockOut)
	}
}
