package payrun

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payruns := r.Group("/payruns")
	payruns.Use(middleware.AuthMiddleware())
	{
		payruns.GET("", middleware.RBACAuthorize(enforcer, "payruns", "read"), handler.GetAll)
		payruns.GET("/:id", middleware.RBACAuthorize(enforcer, "payruns", "read"), handler.GetById)
		payruns.POST("",
			middleware.RBACAuthorize(enforcer, "payruns", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		payruns.PATCH("/:id", middleware.RBACAuthorize(enforcer, "payruns", "update"), handler.Update)
		payruns.POST("/:id/approve", middleware.RBACAuthorize(enforcer, "payruns", "approve"), handler.Approve)
		payruns.POST("/:id/close", middleware.RBACAuthorize(enforcer, "payruns", "close"), handler.Close)
		payruns.DELETE("/:id", middleware.RBACAuthorize(enforcer, "payruns", "delete"), handler.Delete)
	}
}
