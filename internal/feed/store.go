package feed

import (
	"context"

	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// WrapStore decora um Store para publicar no feed depois que cada escrita
// confirma. Leituras passam direto. Com feed nulo devolve o store como veio.
func WrapStore(s store.Store, f *Feed) store.Store {
	if f == nil {
		return s
	}
	return &publishingStore{inner: s, feed: f}
}

type publishingStore struct {
	inner store.Store
	feed  *Feed
}

func (p *publishingStore) FetchTimesByDate(ctx context.Context, date string) ([]string, error) {
	return p.inner.FetchTimesByDate(ctx, date)
}

func (p *publishingStore) FetchAll(ctx context.Context) ([]models.Appointment, error) {
	return p.inner.FetchAll(ctx)
}

func (p *publishingStore) Insert(ctx context.Context, ap *models.Appointment) error {
	if err := p.inner.Insert(ctx, ap); err != nil {
		return err
	}
	p.feed.Publish(ctx, Event{Op: "insert", ID: ap.ID, Date: ap.Date})
	return nil
}

func (p *publishingStore) Update(ctx context.Context, id string, patch store.Patch) (*models.Appointment, error) {
	ap, err := p.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	p.feed.Publish(ctx, Event{Op: "update", ID: ap.ID, Date: ap.Date})
	return ap, nil
}

func (p *publishingStore) Delete(ctx context.Context, id string) error {
	if err := p.inner.Delete(ctx, id); err != nil {
		return err
	}
	p.feed.Publish(ctx, Event{Op: "delete", ID: id})
	return nil
}
