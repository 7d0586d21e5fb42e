package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/domain/catalogs/category"
	"khata/internal/infrastructure/http/v1/dto"
)

// CategoryHandler handles category catalog endpoints.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

func NewCategoryHandler(service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: NewBaseHandler(), service: service}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := category.New(req.Name)
	if err := h.service.Create(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cat.ID.String())
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), categoryID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}
