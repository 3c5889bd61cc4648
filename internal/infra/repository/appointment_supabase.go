package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	supa "github.com/supabase-community/supabase-go"

	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

const appointmentsTable = "appointments"

// AppointmentSupabaseRepository fala com a tabela hospedada que o site
// original já usava, via PostgREST. Permite cortar o front para esta API
// sem migrar os registros existentes.
type AppointmentSupabaseRepository struct {
	client *supa.Client
}

func NewAppointmentSupabaseRepository(client *supa.Client) *AppointmentSupabaseRepository {
	return &AppointmentSupabaseRepository{client: client}
}

type appointmentRow struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Services   []string `json:"services"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	TotalValue float64  `json:"total_value"`
}

func (r *AppointmentSupabaseRepository) FetchTimesByDate(
	ctx context.Context,
	date string,
) ([]string, error) {

	data, _, err := r.client.From(appointmentsTable).
		Select("time", "", false).
		Eq("date", date).
		Execute()
	if err != nil {
		return nil, unavailable(err)
	}

	var rows []struct {
		Time string `json:"time"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, unavailable(err)
	}

	times := make([]string, 0, len(rows))
	for _, row := range rows {
		times = append(times, row.Time)
	}
	return times, nil
}

func (r *AppointmentSupabaseRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {

	payload := appointmentRow{
		Name:       ap.Name,
		Phone:      ap.Phone,
		Services:   ap.Services,
		Date:       ap.Date,
		Time:       ap.Time,
		TotalValue: ap.TotalValue,
	}

	data, _, err := r.client.From(appointmentsTable).
		Insert(payload, false, "", "representation", "").
		Execute()
	if err != nil {
		if isDuplicateKey(err) {
			return store.ErrConflict
		}
		return unavailable(err)
	}

	var created []models.Appointment
	if err := json.Unmarshal(data, &created); err == nil && len(created) > 0 {
		ap.ID = created[0].ID
		ap.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *AppointmentSupabaseRepository) FetchAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	data, _, err := r.client.From(appointmentsTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, unavailable(err)
	}

	var aps []models.Appointment
	if err := json.Unmarshal(data, &aps); err != nil {
		return nil, unavailable(err)
	}

	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		return aps[i].Time < aps[j].Time
	})

	return aps, nil
}

func (r *AppointmentSupabaseRepository) Update(
	ctx context.Context,
	id string,
	patch store.Patch,
) (*models.Appointment, error) {

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Services != nil {
		fields["services"] = patch.Services
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Time != nil {
		fields["time"] = *patch.Time
	}
	if patch.TotalValue != nil {
		fields["total_value"] = *patch.TotalValue
	}

	if len(fields) == 0 {
		return r.fetchOne(id)
	}

	data, _, err := r.client.From(appointmentsTable).
		Update(fields, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		if isDuplicateKey(err) {
			return nil, store.ErrConflict
		}
		return nil, unavailable(err)
	}

	var updated []models.Appointment
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, unavailable(err)
	}
	if len(updated) == 0 {
		return nil, store.ErrNotFound
	}

	return &updated[0], nil
}

func (r *AppointmentSupabaseRepository) Delete(
	ctx context.Context,
	id string,
) error {

	data, _, err := r.client.From(appointmentsTable).
		Delete("representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return unavailable(err)
	}

	var deleted []models.Appointment
	if err := json.Unmarshal(data, &deleted); err != nil {
		return unavailable(err)
	}
	if len(deleted) == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *AppointmentSupabaseRepository) fetchOne(id string) (*models.Appointment, error) {
	data, _, err := r.client.From(appointmentsTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, unavailable(err)
	}

	var aps []models.Appointment
	if err := json.Unmarshal(data, &aps); err != nil {
		return nil, unavailable(err)
	}
	if len(aps) == 0 {
		return nil, store.ErrNotFound
	}
	return &aps[0], nil
}

func isDuplicateKey(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

// Compile-time check
var _ store.Store = (*AppointmentSupabaseRepository)(nil)
