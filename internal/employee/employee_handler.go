package employee

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

// companyScope resolves which company the request operates on: path
// param for SUPERADMIN-style access, otherwise the actor's own.
func companyScope(c *gin.Context) string {
	if v := c.Param("companyId"); v != "" {
		return v
	}
	return c.GetString("company_id")
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, companyScope(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	resp, err := h.service.GetAll(c.Request.Context(), actor, companyScope(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	resp, err := h.service.GetByID(c.Request.Context(), actor, companyScope(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actor, companyScope(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Activate(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	if err := h.service.Activate(c.Request.Context(), actor, companyScope(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_active": true}, nil)
}

func (h *Handler) Deactivate(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	if err := h.service.Deactivate(c.Request.Context(), actor, companyScope(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_active": false}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	if err := h.service.HardDelete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
