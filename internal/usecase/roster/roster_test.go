package roster

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/studiobarber49/agendamento-api/internal/catalog"
	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

type memStore struct {
	rows map[string]models.Appointment
}

func newMemStore(rows ...models.Appointment) *memStore {
	m := &memStore{rows: make(map[string]models.Appointment)}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *memStore) FetchTimesByDate(ctx context.Context, date string) ([]string, error) {
	var times []string
	for _, r := range m.rows {
		if r.Date == date {
			times = append(times, r.Time)
		}
	}
	return times, nil
}

func (m *memStore) Insert(ctx context.Context, ap *models.Appointment) error {
	m.rows[ap.ID] = *ap
	return nil
}

func (m *memStore) FetchAll(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (m *memStore) Update(ctx context.Context, id string, patch store.Patch) (*models.Appointment, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Phone != nil {
		row.Phone = *patch.Phone
	}
	if patch.Services != nil {
		row.Services = patch.Services
	}
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.Time != nil {
		row.Time = *patch.Time
	}
	if patch.TotalValue != nil {
		row.TotalValue = *patch.TotalValue
	}
	m.rows[id] = row
	return &row, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

var _ store.Store = (*memStore)(nil)

func strptr(s string) *string { return &s }

func TestList_OrderedByDateThenTime(t *testing.T) {
	st := newMemStore(
		models.Appointment{ID: "c", Date: "2026-09-08", Time: "08:00"},
		models.Appointment{ID: "a", Date: "2026-09-07", Time: "14:00"},
		models.Appointment{ID: "b", Date: "2026-09-07", Time: "13:00"},
	)
	r := New(st, catalog.Default(), nil)

	list, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, ap := range list {
		ids = append(ids, ap.ID)
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestUpdate_ReplacesFieldsAndReprices(t *testing.T) {
	st := newMemStore(models.Appointment{
		ID:         "a",
		Name:       "João",
		Services:   []string{"Corte de Cabelo"},
		Date:       "2026-09-07",
		Time:       "13:00",
		TotalValue: 35,
	})
	r := New(st, catalog.Default(), nil)

	ap, err := r.Update(context.Background(), "a", UpdateInput{
		Name:     strptr("  João Pedro  "),
		Services: []string{"corte", "barba"},
		Time:     strptr("14:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Name != "João Pedro" {
		t.Errorf("name = %q, want trimmed João Pedro", ap.Name)
	}
	if ap.Time != "14:00" {
		t.Errorf("time = %q, want 14:00", ap.Time)
	}
	if ap.Date != "2026-09-07" {
		t.Errorf("date = %q, should be untouched", ap.Date)
	}
	if len(ap.Services) != 2 || ap.Services[1] != "Barba" {
		t.Errorf("services = %v, want denormalized titles", ap.Services)
	}
	if ap.TotalValue != 60 {
		t.Errorf("total = %v, want repriced 60", ap.TotalValue)
	}
}

func TestUpdate_OmittedServicesKeepPrice(t *testing.T) {
	st := newMemStore(models.Appointment{
		ID:         "a",
		Services:   []string{"Corte de Cabelo"},
		TotalValue: 35,
	})
	r := New(st, catalog.Default(), nil)

	ap, err := r.Update(context.Background(), "a", UpdateInput{
		Phone: strptr("49988887777"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.TotalValue != 35 {
		t.Errorf("total = %v, must not change when services are omitted", ap.TotalValue)
	}
	if ap.Phone != "49988887777" {
		t.Errorf("phone = %q, want updated value", ap.Phone)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	r := New(newMemStore(), catalog.Default(), nil)

	if _, err := r.Update(context.Background(), "missing", UpdateInput{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	st := newMemStore(
		models.Appointment{ID: "a", Date: "2026-09-07", Time: "13:00"},
		models.Appointment{ID: "b", Date: "2026-09-07", Time: "14:00"},
	)
	r := New(st, catalog.Default(), nil)
	ctx := context.Background()

	if err := r.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(st.rows))
	}

	// apagar quem não existe devolve NotFound e não mexe no resto
	if err := r.Delete(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
	if len(st.rows) != 1 {
		t.Fatalf("rows = %d after failed delete, want 1", len(st.rows))
	}
}
