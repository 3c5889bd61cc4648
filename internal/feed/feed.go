package feed

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const channel = "appointments:changed"

// Event é a notificação mínima de mudança. Quem assina re-busca a lista
// inteira; o roster é pequeno e não vale merge incremental.
type Event struct {
	Op   string `json:"op"` // insert | update | delete
	ID   string `json:"id"`
	Date string `json:"date"`
}

// Feed publica e assina mudanças de agendamento via redis pub/sub.
type Feed struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(rdb *redis.Client, log *zap.Logger) *Feed {
	return &Feed{rdb: rdb, log: log}
}

// Publish é melhor-esforço: o feed é diagnóstico secundário, uma falha
// aqui nunca derruba a escrita que já foi confirmada.
func (f *Feed) Publish(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := f.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		f.log.Warn("feed publish failed", zap.Error(err))
	}
}

type Subscription struct {
	ps     *redis.PubSub
	events chan Event
}

func (f *Feed) Subscribe(ctx context.Context) *Subscription {
	ps := f.rdb.Subscribe(ctx, channel)
	sub := &Subscription{
		ps:     ps,
		events: make(chan Event, 16),
	}

	go func() {
		defer close(sub.events)
		for msg := range ps.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				f.log.Warn("feed message ignored", zap.Error(err))
				continue
			}
			select {
			case sub.events <- ev:
			default:
				// assinante lento perde eventos antigos; ele re-busca tudo
				// de qualquer jeito no próximo evento
			}
		}
	}()

	return sub
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Close() {
	_ = s.ps.Close()
}
