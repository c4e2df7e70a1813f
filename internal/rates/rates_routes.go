package rates

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	g := r.Group("")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/employees/:id/rates", middleware.RBACAuthorize(enforcer, "rates", "read"), handler.GetEmployeeRates)
		g.PATCH("/employees/:id/rates", middleware.RBACAuthorize(enforcer, "rates", "update"), handler.UpdateEmployeeRates)
		g.PATCH("/companies/:id/rates", middleware.RBACAuthorize(enforcer, "rates", "update"), handler.UpdateCompanyRates)
	}
}
