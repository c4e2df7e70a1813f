package payment

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("/:id", middleware.RBACAuthorize(enforcer, "payments", "read"), handler.GetById)
		payments.POST("",
			middleware.RBACAuthorize(enforcer, "payments", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		payments.PATCH("/:id", middleware.RBACAuthorize(enforcer, "payments", "update"), handler.Update)
		payments.DELETE("/:id", middleware.RBACAuthorize(enforcer, "payments", "delete"), handler.Delete)
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("/:id/payments", middleware.RBACAuthorize(enforcer, "payments", "read"), handler.GetAllByPayslip)
	}
}
