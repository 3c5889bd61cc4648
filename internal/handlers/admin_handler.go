package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiobarber49/agendamento-api/internal/feed"
	"github.com/studiobarber49/agendamento-api/internal/httperr"
	"github.com/studiobarber49/agendamento-api/internal/httpresp"
	"github.com/studiobarber49/agendamento-api/internal/store"
	ucRoster "github.com/studiobarber49/agendamento-api/internal/usecase/roster"
)

// ======================================================
// HANDLER (painel de agendamentos)
// ======================================================

type AdminHandler struct {
	roster *ucRoster.Roster
	feed   *feed.Feed
}

func NewAdminHandler(roster *ucRoster.Roster, f *feed.Feed) *AdminHandler {
	return &AdminHandler{roster: roster, feed: f}
}

// ======================================================
// LIST
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	aps, err := h.roster.List(c.Request.Context())
	if err != nil {
		httperr.Unavailable(c, "store_unavailable", "Não foi possível carregar os agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AdminHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in ucRoster.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.roster.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case errors.Is(err, store.ErrConflict):
			httperr.Conflict(c, "time_conflict", "Este horário já está agendado.")
		default:
			httperr.Unavailable(c, "store_unavailable", "Não foi possível atualizar o agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.roster.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		default:
			httperr.Unavailable(c, "store_unavailable", "Não foi possível remover o agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// EVENTS (SSE)
// ======================================================

// Events transmite o feed de mudanças; a cada evento o painel re-busca a
// lista completa.
func (h *AdminHandler) Events(c *gin.Context) {
	if h.feed == nil {
		httperr.Unavailable(c, "feed_disabled", "Feed de mudanças não configurado.")
		return
	}

	sub := h.feed.Subscribe(c.Request.Context())
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
