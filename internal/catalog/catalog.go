package catalog

// Service descreve um item do catálogo da barbearia. A lista é definida
// uma vez na subida do processo e nunca muda em runtime.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min,omitempty"`
}

type Catalog struct {
	services []Service
	byID     map[string]Service
}

func New(services []Service) *Catalog {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &Catalog{services: services, byID: byID}
}

// Default é o catálogo de produção da barbearia.
func Default() *Catalog {
	return New([]Service{
		{ID: "corte", Title: "Corte de Cabelo", Price: 35, DurationMin: 30},
		{ID: "barba", Title: "Barba", Price: 25, DurationMin: 30},
		{ID: "corte-barba", Title: "Corte + Barba", Price: 55, DurationMin: 60},
		{ID: "sobrancelha", Title: "Sobrancelha", Price: 10, DurationMin: 15},
		{ID: "pezinho", Title: "Pezinho", Price: 15, DurationMin: 15},
		{ID: "hidratacao", Title: "Hidratação", Price: 20, DurationMin: 30},
	})
}

func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Get(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Titles desnormaliza ids para títulos, preservando a ordem de seleção.
// Id desconhecido passa adiante como veio.
func (c *Catalog) Titles(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.byID[id]; ok {
			out = append(out, s.Title)
			continue
		}
		out = append(out, id)
	}
	return out
}

// Total soma os preços dos serviços selecionados. Ids desconhecidos
// não somam nada.
func (c *Catalog) Total(ids []string) float64 {
	var total float64
	for _, id := range ids {
		if s, ok := c.byID[id]; ok {
			total += s.Price
		}
	}
	return total
}
