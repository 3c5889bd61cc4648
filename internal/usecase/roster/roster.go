package roster

import (
	"context"
	"strings"

	"github.com/studiobarber49/agendamento-api/internal/audit"
	"github.com/studiobarber49/agendamento-api/internal/catalog"
	"github.com/studiobarber49/agendamento-api/internal/store"

	"github.com/studiobarber49/agendamento-api/internal/models"
)

// Roster é a visão administrativa dos agendamentos. Só repassa operações
// ao store e reflete o que ele confirmou; nada muda localmente antes
// da confirmação.
type Roster struct {
	store   store.Store
	catalog *catalog.Catalog
	audit   *audit.Dispatcher
}

func New(st store.Store, cat *catalog.Catalog, auditD *audit.Dispatcher) *Roster {
	return &Roster{store: st, catalog: cat, audit: auditD}
}

// UpdateInput carrega a edição parcial do painel. Services chega em ids
// do catálogo, como no formulário público.
type UpdateInput struct {
	Name     *string  `json:"name"`
	Phone    *string  `json:"phone"`
	Services []string `json:"services"`
	Date     *string  `json:"date"`
	Time     *string  `json:"time"`
}

func (r *Roster) List(ctx context.Context) ([]models.Appointment, error) {
	return r.store.FetchAll(ctx)
}

func (r *Roster) Update(
	ctx context.Context,
	id string,
	in UpdateInput,
) (*models.Appointment, error) {

	patch := store.Patch{
		Date: in.Date,
		Time: in.Time,
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		patch.Name = &name
	}
	if in.Phone != nil {
		patch.Phone = in.Phone
	}

	// trocar serviços re-desnormaliza e re-precifica; o total nunca vem
	// do cliente
	if in.Services != nil {
		titles := r.catalog.Titles(in.Services)
		total := r.catalog.Total(in.Services)
		patch.Services = titles
		patch.TotalValue = &total
	}

	ap, err := r.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	r.dispatch(audit.Event{
		Actor:    "admin",
		Action:   "booking_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

func (r *Roster) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.dispatch(audit.Event{
		Actor:    "admin",
		Action:   "booking_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return nil
}

func (r *Roster) dispatch(ev audit.Event) {
	if r.audit != nil {
		r.audit.Dispatch(ev)
	}
}
