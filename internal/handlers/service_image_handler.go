package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studiobarber49/agendamento-api/internal/catalog"
	"github.com/studiobarber49/agendamento-api/internal/httperr"
	"github.com/studiobarber49/agendamento-api/internal/imaging"
	"github.com/studiobarber49/agendamento-api/internal/infra/storage"
	"github.com/studiobarber49/agendamento-api/internal/models"
)

const maxImageWidth = 1280

// ======================================================
// HANDLER (foto de divulgação do serviço)
// ======================================================

type ServiceImageHandler struct {
	db       *gorm.DB
	catalog  *catalog.Catalog
	uploader *storage.Uploader
}

func NewServiceImageHandler(
	db *gorm.DB,
	cat *catalog.Catalog,
	uploader *storage.Uploader,
) *ServiceImageHandler {
	return &ServiceImageHandler{
		db:       db,
		catalog:  cat,
		uploader: uploader,
	}
}

func (h *ServiceImageHandler) Upload(c *gin.Context) {
	serviceID := c.Param("id")
	if _, ok := h.catalog.Get(serviceID); !ok {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	if !h.uploader.Enabled() {
		httperr.Unavailable(c, "storage_disabled", "Armazenamento de imagens não configurado.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo 'image'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "image_read_failed", "Erro ao ler a imagem.")
		return
	}
	defer src.Close()

	// sempre normaliza para webp antes de subir
	encoded, err := imaging.ToWebP(src, maxImageWidth)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use jpeg ou png).")
		return
	}

	key := fmt.Sprintf("services/%s.webp", serviceID)
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "image_upload_failed", "Erro ao enviar a imagem.")
		return
	}

	img := models.ServiceImage{ServiceID: serviceID, URL: url}
	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"url", "updated_at"}),
		}).
		Create(&img).Error; err != nil {

		httperr.Internal(c, "image_save_failed", "Erro ao salvar a imagem.")
		return
	}

	c.JSON(http.StatusOK, img)
}
