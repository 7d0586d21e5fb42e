package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/domain/settings"
	"khata/internal/infrastructure/http/v1/dto"
)

// maxLogoSize caps logo uploads at 2 MiB.
const maxLogoSize = 2 << 20

// SettingsHandler handles shop profile endpoints.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
	dataDir string
}

func NewSettingsHandler(service *settings.Service, dataDir string) *SettingsHandler {
	return &SettingsHandler{BaseHandler: NewBaseHandler(), service: service, dataDir: dataDir}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s := &settings.Settings{
		ShopName: req.ShopName,
		Address:  req.Address,
		Phone:    req.Phone,
	}
	if err := h.service.Update(c.Request.Context(), s); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, s)
}

// UploadLogo stores the shop logo under the data directory and records
// its path in settings.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		h.Error(c, apperror.NewValidation("logo file is required"))
		return
	}
	if file.Size > maxLogoSize {
		h.Error(c, apperror.NewValidation("logo exceeds maximum size").
			WithDetail("maxBytes", maxLogoSize))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		h.Error(c, apperror.NewValidation("unsupported logo format").WithDetail("ext", ext))
		return
	}

	path := filepath.Join(h.dataDir, "logo"+ext)
	if err := c.SaveUploadedFile(file, path); err != nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("save logo: %w", err)))
		return
	}

	if err := h.service.SetLogoPath(c.Request.Context(), path); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "logo uploaded")
}

// Logo serves the stored shop logo.
func (h *SettingsHandler) Logo(c *gin.Context) {
	path, err := h.service.LogoPath(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if path == "" {
		h.Error(c, apperror.NewNotFound("logo", "shop"))
		return
	}
	c.File(path)
}
