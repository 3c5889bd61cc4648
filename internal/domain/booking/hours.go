package booking

import "time"

// Window é um intervalo contíguo de expediente dentro de um dia,
// em horas fracionárias (11.5 = 11:30). As janelas de um mesmo dia
// não podem se sobrepor; quem configura responde por isso.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Hours mapeia dia da semana para as janelas de atendimento.
// Dia sem janela não recebe agendamento.
type Hours map[time.Weekday][]Window

// DefaultHours é a grade real da barbearia: segunda só à tarde,
// terça de manhã e à tarde.
func DefaultHours() Hours {
	return Hours{
		time.Monday:  {{Start: 13, End: 20}},
		time.Tuesday: {{Start: 8, End: 11.5}, {Start: 13, End: 20}},
	}
}

func (h Hours) WindowsFor(d time.Weekday) []Window {
	return h[d]
}

func (h Hours) Bookable(d time.Weekday) bool {
	return len(h[d]) > 0
}

// Weekday resolve o dia da semana de uma data do formulário (YYYY-MM-DD).
// O parse é feito sem fuso para a data não escorregar um dia.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
