package rates

import (
	"net/http"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/middleware"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/apperror"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func companyScope(c *gin.Context) string {
	if v := c.Param("companyId"); v != "" {
		return v
	}
	return c.GetString("company_id")
}

func (h *Handler) GetEmployeeRates(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	resp, err := h.service.EffectiveRatesFor(c.Request.Context(), actor, companyScope(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateCompanyRates(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.UpdateCompanyRates(c.Request.Context(), actor, c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}

func (h *Handler) UpdateEmployeeRates(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.UpdateEmployeeRates(c.Request.Context(), actor, companyScope(c), c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}
