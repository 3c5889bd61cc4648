package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// fakeStore imita o colaborador de persistência em memória, incluindo a
// constraint de unicidade em (date, time).
type fakeStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
	nextID       int

	fetchCalls int
	failFetch  bool
	insertErr  error

	// quando armados, Insert sinaliza insertStarted e espera insertGate
	insertStarted chan struct{}
	insertGate    chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) FetchTimesByDate(ctx context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchCalls++
	if f.failFetch {
		return nil, fmt.Errorf("%w: connection refused", store.ErrUnavailable)
	}

	var times []string
	for _, ap := range f.appointments {
		if ap.Date == date {
			times = append(times, ap.Time)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeStore) Insert(ctx context.Context, ap *models.Appointment) error {
	if f.insertStarted != nil {
		f.insertStarted <- struct{}{}
		<-f.insertGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.appointments {
		if existing.Date == ap.Date && existing.Time == ap.Time {
			return store.ErrConflict
		}
	}

	f.nextID++
	ap.ID = fmt.Sprintf("fake-%d", f.nextID)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeStore) FetchAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Appointment, len(f.appointments))
	copy(out, f.appointments)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, patch store.Patch) (*models.Appointment, error) {
	return nil, store.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	return store.ErrNotFound
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

var _ store.Store = (*fakeStore)(nil)
