package payslip

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("/:id", middleware.RBACAuthorize(enforcer, "payslips", "read"), handler.GetById)
		payslips.GET("/:id/can-modify", middleware.RBACAuthorize(enforcer, "payslips", "read"), handler.CanModify)
		payslips.PATCH("/:id", middleware.RBACAuthorize(enforcer, "payslips", "update"), handler.Update)
	}
}
