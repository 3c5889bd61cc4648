package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobarber49/agendamento-api/internal/catalog"
	domain "github.com/studiobarber49/agendamento-api/internal/domain/booking"
	"github.com/studiobarber49/agendamento-api/internal/httperr"
	"github.com/studiobarber49/agendamento-api/internal/httpresp"
	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
	ucBooking "github.com/studiobarber49/agendamento-api/internal/usecase/booking"
)

// ======================================================
// HANDLER PÚBLICO (formulário de agendamento)
// ======================================================

type BookingHandler struct {
	db        *gorm.DB
	catalog   *catalog.Catalog
	hours     domain.Hours
	resolver  *ucBooking.Resolver
	submitter *ucBooking.Submitter
}

func NewBookingHandler(
	db *gorm.DB,
	cat *catalog.Catalog,
	hours domain.Hours,
	resolver *ucBooking.Resolver,
	submitter *ucBooking.Submitter,
) *BookingHandler {
	return &BookingHandler{
		db:        db,
		catalog:   cat,
		hours:     hours,
		resolver:  resolver,
		submitter: submitter,
	}
}

// ======================================================
// SERVICES
// ======================================================

type serviceWithImage struct {
	catalog.Service
	ImageURL string `json:"image_url,omitempty"`
}

func (h *BookingHandler) ListServices(c *gin.Context) {
	services := h.catalog.All()

	var images []models.ServiceImage
	h.db.Find(&images)

	urls := make(map[string]string, len(images))
	for _, img := range images {
		urls[img.ServiceID] = img.URL
	}

	out := make([]serviceWithImage, 0, len(services))
	for _, s := range services {
		out = append(out, serviceWithImage{
			Service:  s,
			ImageURL: urls[s.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"services": out})
}

// ======================================================
// BUSINESS HOURS
// ======================================================

// A grade é configuração de deploy; o front só lê, para desabilitar os
// dias sem atendimento no calendário.
func (h *BookingHandler) GetBusinessHours(c *gin.Context) {
	days := make(map[int][]domain.Window, len(h.hours))
	for weekday, windows := range h.hours {
		days[int(weekday)] = windows
	}

	c.JSON(http.StatusOK, gin.H{
		"interval_minutes": int(domain.SlotInterval.Minutes()),
		"days":             days,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.resolver.Resolve(c.Request.Context(), dateStr)
	if err != nil {
		// indisponibilidade do store não é "dia lotado"
		httperr.Unavailable(c, "store_unavailable",
			"Não foi possível verificar os horários disponíveis. Tente novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var form domain.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, fieldErrs, err := h.submitter.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ucBooking.ErrSubmissionInFlight) {
			httperr.Conflict(c, "submission_in_flight",
				"Seu agendamento já está sendo processado.")
			return
		}
		if errors.Is(err, store.ErrUnavailable) {
			httperr.Unavailable(c, "store_unavailable",
				"Não foi possível salvar seu agendamento. Tente novamente.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	if len(fieldErrs) > 0 {
		httperr.Validation(c, fieldErrs)
		return
	}

	httpresp.Created(c, ap)
}
