package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/studiobarber49/agendamento-api/internal/audit"
	"github.com/studiobarber49/agendamento-api/internal/catalog"
	domain "github.com/studiobarber49/agendamento-api/internal/domain/booking"
	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// ErrSubmissionInFlight: o mesmo formulário já tem uma submissão pendente.
// A repetição é rejeitada sem tocar em nada (single-flight).
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Submitter orquestra validar → gravar → atualizar disponibilidade.
type Submitter struct {
	catalog   *catalog.Catalog
	validator *domain.Validator
	resolver  *Resolver
	store     store.Store
	audit     *audit.Dispatcher
	log       *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitter(
	cat *catalog.Catalog,
	validator *domain.Validator,
	resolver *Resolver,
	st store.Store,
	auditD *audit.Dispatcher,
	log *zap.Logger,
) *Submitter {
	return &Submitter{
		catalog:   cat,
		validator: validator,
		resolver:  resolver,
		store:     st,
		audit:     auditD,
		log:       log,
		inFlight:  make(map[string]struct{}),
	}
}

// Submit processa um formulário de agendamento.
//
// Resultados possíveis:
//   - agendamento criado: (*Appointment, nil, nil)
//   - formulário inválido ou horário perdido na corrida: (nil, fields, nil)
//   - store indisponível ou submissão repetida: (nil, nil, err) — nada foi
//     gravado, repetir é seguro.
func (s *Submitter) Submit(
	ctx context.Context,
	form domain.Form,
) (*models.Appointment, map[string]string, error) {

	key := submissionKey(form)
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return nil, nil, ErrSubmissionInFlight
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	// Disponibilidade é re-resolvida aqui, não só na seleção: fecha a
	// janela entre o cliente escolher o horário e apertar enviar.
	var available []string
	if form.Date != "" {
		fresh, err := s.resolver.Refresh(ctx, form.Date)
		if err != nil {
			return nil, nil, err
		}
		available = fresh
	}

	if errs := s.validator.Validate(form, available); len(errs) > 0 {
		return nil, errs, nil
	}

	ap := &models.Appointment{
		Name:       strings.TrimSpace(form.Name),
		Phone:      form.Phone,
		Services:   s.catalog.Titles(form.Services),
		Date:       form.Date,
		Time:       form.Time,
		TotalValue: s.catalog.Total(form.Services),
	}

	if err := s.store.Insert(ctx, ap); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// outro cliente levou o horário entre o Refresh e o Insert
			if _, rerr := s.resolver.Refresh(ctx, form.Date); rerr != nil {
				s.log.Warn("availability refresh after conflict failed", zap.Error(rerr))
			}
			s.dispatch(audit.Event{
				Actor:  "public",
				Action: "booking_conflict",
				Entity: "appointment",
				Metadata: map[string]string{
					"date": form.Date,
					"time": form.Time,
				},
			})
			return nil, map[string]string{
				"time": "Este horário já está agendado.",
			}, nil
		}
		return nil, nil, err
	}

	// só depois do insert confirmar; ler antes traria disponibilidade velha
	if _, err := s.resolver.Refresh(ctx, form.Date); err != nil {
		s.log.Warn("availability refresh after insert failed", zap.Error(err))
		s.resolver.Invalidate(form.Date)
	}

	s.dispatch(audit.Event{
		Actor:    "public",
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil, nil
}

func (s *Submitter) dispatch(ev audit.Event) {
	if s.audit != nil {
		s.audit.Dispatch(ev)
	}
}

func submissionKey(f domain.Form) string {
	return strings.Join([]string{f.Name, f.Phone, f.Date, f.Time}, "|")
}
