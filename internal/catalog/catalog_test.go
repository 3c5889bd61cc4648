package catalog

import "testing"

func TestGet(t *testing.T) {
	cat := Default()

	s, ok := cat.Get("corte")
	if !ok {
		t.Fatal("expected corte in default catalog")
	}
	if s.Title != "Corte de Cabelo" {
		t.Errorf("title = %q, want Corte de Cabelo", s.Title)
	}

	if _, ok := cat.Get("manicure"); ok {
		t.Error("unexpected service manicure")
	}
}

func TestTotal(t *testing.T) {
	cat := New([]Service{
		{ID: "a", Title: "A", Price: 10},
		{ID: "b", Title: "B", Price: 25.5},
	})

	if got := cat.Total([]string{"a", "b"}); got != 35.5 {
		t.Errorf("Total = %v, want 35.5", got)
	}
	// id desconhecido não soma
	if got := cat.Total([]string{"a", "x"}); got != 10 {
		t.Errorf("Total with unknown id = %v, want 10", got)
	}
	if got := cat.Total(nil); got != 0 {
		t.Errorf("Total(nil) = %v, want 0", got)
	}
}

func TestTitles_PreservesOrderAndPassesUnknownThrough(t *testing.T) {
	cat := New([]Service{
		{ID: "a", Title: "Primeiro"},
		{ID: "b", Title: "Segundo"},
	})

	titles := cat.Titles([]string{"b", "x", "a"})
	want := []string{"Segundo", "x", "Primeiro"}

	if len(titles) != len(want) {
		t.Fatalf("len = %d, want %d", len(titles), len(want))
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}
