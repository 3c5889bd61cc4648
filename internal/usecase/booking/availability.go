package booking

import (
	"context"
	"sync"

	domain "github.com/studiobarber49/agendamento-api/internal/domain/booking"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// Resolver transforma uma data nos horários ainda livres: grade do dia
// da semana menos os horários já gravados no store, na ordem de geração.
//
// O resultado fica em cache por data; quem escreve no store chama
// Refresh/Invalidate depois da escrita confirmar. Não há polling.
type Resolver struct {
	hours domain.Hours
	store store.Store

	mu    sync.Mutex
	cache map[string][]string
}

func NewResolver(hours domain.Hours, st store.Store) *Resolver {
	return &Resolver{
		hours: hours,
		store: st,
		cache: make(map[string][]string),
	}
}

// Resolve devolve os horários agendáveis para a data. Data fora dos dias
// configurados (ou mal formada) resolve para vazio sem consultar o store.
// Falha do store volta como erro embrulhando store.ErrUnavailable: "loja
// fora do ar" nunca se disfarça de "dia lotado".
func (r *Resolver) Resolve(ctx context.Context, date string) ([]string, error) {
	r.mu.Lock()
	if cached, ok := r.cache[date]; ok {
		out := make([]string, len(cached))
		copy(out, cached)
		r.mu.Unlock()
		return out, nil
	}
	r.mu.Unlock()

	return r.Refresh(ctx, date)
}

// Refresh ignora o cache, consulta o store e re-popula a entrada da data.
func (r *Resolver) Refresh(ctx context.Context, date string) ([]string, error) {
	weekday, err := domain.Weekday(date)
	if err != nil || !r.hours.Bookable(weekday) {
		return []string{}, nil
	}

	booked, err := r.store.FetchTimesByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := []string{}
	for _, slot := range domain.SlotsFor(r.hours, weekday) {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	r.mu.Lock()
	r.cache[date] = available
	r.mu.Unlock()

	out := make([]string, len(available))
	copy(out, available)
	return out, nil
}

func (r *Resolver) Invalidate(date string) {
	r.mu.Lock()
	delete(r.cache, date)
	r.mu.Unlock()
}
