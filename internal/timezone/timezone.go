package timezone

import "time"

// A barbearia atende em um único fuso. Tudo que compara "hoje"
// com a data escolhida no formulário passa por aqui.
const Locale = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(Locale)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today devolve a data corrente no formato usado pelo formulário (YYYY-MM-DD).
func Today() string {
	return Now().Format("2006-01-02")
}
