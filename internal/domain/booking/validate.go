package booking

import (
	"regexp"
	"strings"

	"github.com/studiobarber49/agendamento-api/internal/catalog"
	"github.com/studiobarber49/agendamento-api/internal/timezone"
)

// Form é o que chega do formulário público de agendamento.
// Services carrega ids do catálogo; a desnormalização para títulos
// acontece só na borda do store.
type Form struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Services []string `json:"services"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
}

var nonDigits = regexp.MustCompile(`\D`)

type Validator struct {
	Catalog *catalog.Catalog
	Hours   Hours

	// Today permite fixar a data corrente nos testes. Vazio usa o
	// relógio no fuso da barbearia.
	Today func() string
}

func NewValidator(cat *catalog.Catalog, hours Hours) *Validator {
	return &Validator{Catalog: cat, Hours: hours, Today: timezone.Today}
}

// Validate avalia todas as regras e devolve campo → mensagem. Mapa vazio
// significa formulário válido. Nenhuma regra corta as demais: a interface
// destaca todos os campos ruins de uma vez.
//
// available é a disponibilidade já resolvida para f.Date (grade do dia
// menos horários ocupados), recalculada no momento do submit.
func (v *Validator) Validate(f Form, available []string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Nome é obrigatório."
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Telefone é obrigatório."
	} else {
		digits := nonDigits.ReplaceAllString(f.Phone, "")
		if len(digits) < 10 || len(digits) > 11 {
			errs["phone"] = "Telefone inválido (use apenas números, ex: 49999999999)."
		}
	}

	if len(f.Services) == 0 {
		errs["services"] = "Selecione ao menos um serviço."
	} else {
		for _, id := range f.Services {
			if _, ok := v.Catalog.Get(id); !ok {
				errs["services"] = "Serviço inválido."
				break
			}
		}
	}

	dateOK := false
	if f.Date == "" {
		errs["date"] = "Data é obrigatória."
	} else if weekday, err := Weekday(f.Date); err != nil {
		errs["date"] = "Data inválida."
	} else if !v.Hours.Bookable(weekday) {
		errs["date"] = "Atendemos apenas segunda e terça-feira."
	} else if f.Date < v.today() {
		errs["date"] = "A data não pode ser no passado."
	} else {
		dateOK = true
	}

	if f.Time == "" {
		errs["time"] = "Hora é obrigatória."
	} else if dateOK {
		weekday, _ := Weekday(f.Date)
		if !contains(SlotsFor(v.Hours, weekday), f.Time) {
			errs["time"] = "Horário inválido."
		} else if !contains(available, f.Time) {
			errs["time"] = "Este horário já está agendado."
		}
	}

	return errs
}

func (v *Validator) today() string {
	if v.Today != nil {
		return v.Today()
	}
	return timezone.Today()
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
