package store

import (
	"context"
	"errors"

	"github.com/studiobarber49/agendamento-api/internal/models"
)

// Erros que o core distingue. Qualquer outra falha do store é tratada
// como transitória e segura de repetir.
var (
	// ErrNotFound: o alvo de um update/delete não existe mais.
	ErrNotFound = errors.New("appointment not found")
	// ErrConflict: o par (date, time) já está ocupado. O store resolve a
	// corrida entre seleção e submit com a constraint de unicidade.
	ErrConflict = errors.New("time slot already booked")
	// ErrUnavailable: o backend de persistência não respondeu. Nunca deve
	// ser confundido com "dia lotado".
	ErrUnavailable = errors.New("store unavailable")
)

// Patch descreve uma edição parcial vinda do painel. Campo nil não muda.
// Services chega já desnormalizado em títulos.
type Patch struct {
	Name       *string
	Phone      *string
	Services   []string
	Date       *string
	Time       *string
	TotalValue *float64
}

// Store é o colaborador de persistência dos agendamentos. O core não
// conhece o formato no disco nem o transporte, só este contrato.
type Store interface {
	// FetchTimesByDate devolve os horários já ocupados na data exata.
	FetchTimesByDate(ctx context.Context, date string) ([]string, error)

	// Insert grava um agendamento novo; o store atribui o id.
	Insert(ctx context.Context, ap *models.Appointment) error

	// FetchAll lista tudo ordenado por (date, time) ascendente.
	FetchAll(ctx context.Context) ([]models.Appointment, error)

	Update(ctx context.Context, id string, patch Patch) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
}
