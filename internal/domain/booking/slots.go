package booking

import (
	"fmt"
	"math"
	"time"
)

const SlotInterval = 30 * time.Minute

// GenerateSlots emite os horários HH:MM de cada janela, do início ao fim
// inclusive, de interval em interval. As janelas entram na ordem recebida.
// Fim que não cai exato no passo apenas encerra a janela no último valor
// menor ou igual a ele.
func GenerateSlots(windows []Window, interval time.Duration) []string {
	step := int(interval.Minutes())
	if step <= 0 {
		return nil
	}

	var slots []string
	for _, w := range windows {
		start := int(math.Round(w.Start * 60))
		end := int(math.Round(w.End * 60))

		for m := start; m <= end; m += step {
			slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
		}
	}
	return slots
}

// SlotsFor gera a grade completa do dia da semana informado.
func SlotsFor(h Hours, d time.Weekday) []string {
	return GenerateSlots(h.WindowsFor(d), SlotInterval)
}
