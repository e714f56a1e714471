package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/f1scraper/internal/model"
)

// TestNameIndex tests name lookups.
func TestNameIndex(t *testing.T) {
	t.Parallel()

	t.Run("slug match takes priority over display name", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		scuderia := model.Team{Slug: "ferrari", DisplayName: "Scuderia"}
		other := model.Team{Slug: "scuderia", DisplayName: "Ferrari"}
		x.Add(scuderia)
		x.Add(other)

		got, ok := x.Lookup("Ferrari")
		if !ok || got != scuderia {
			t.Errorf("Lookup(Ferrari) = %v, want %v", got, scuderia)
		}
		got, ok = x.Lookup("scuderia")
		if !ok || got != other {
			t.Errorf("Lookup(scuderia) = %v, want %v", got, other)
		}
	})

	t.Run("rows sharing a slug stay distinct entities", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		austria := model.Circuit{Index: 1045, Slug: "austria", DisplayName: "Austria"}
		styria := model.Circuit{Index: 1046, Slug: "austria", DisplayName: "Styria"}
		if !x.Add(austria) || !x.Add(styria) {
			t.Fatal("expected both races to be new entities")
		}

		if diff := cmp.Diff([]model.Fragment{austria, styria}, x.Entities()); diff != "" {
			t.Errorf("entities mismatch (-want +got):\n%s", diff)
		}
		if got, ok := x.Lookup("austria"); !ok || got != austria {
			t.Errorf("Lookup(austria) = %v, want %v", got, austria)
		}
		if got, ok := x.Lookup("Styria"); !ok || got != styria {
			t.Errorf("Lookup(Styria) = %v, want %v", got, styria)
		}

		slugs, names := x.Keys()
		if diff := cmp.Diff([]string{"austria"}, slugs); diff != "" {
			t.Errorf("slug keys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"austria", "styria"}, names); diff != "" {
			t.Errorf("name keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated entity keeps the first display name", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		first := model.Team{Slug: "ferrari", DisplayName: "Ferrari"}
		if !x.Add(first) {
			t.Fatal("expected first add to succeed")
		}
		if x.Add(model.Team{Slug: "ferrari", DisplayName: "Scuderia Ferrari"}) {
			t.Error("expected the same team to be reported as known")
		}
		if x.Len() != 1 {
			t.Errorf("Len() = %d, want 1", x.Len())
		}
		if got, _ := x.Lookup("ferrari"); got != first {
			t.Errorf("Lookup(ferrari) = %v, want %v", got, first)
		}
		if _, ok := x.Lookup("scuderia ferrari"); !ok {
			t.Error("expected the second display name to be indexed")
		}
	})

	t.Run("drivers are told apart by id", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		x.Add(model.Driver{ID: "NINFAR01", Slug: "nino-farina", DisplayName: "Nino Farina"})
		if !x.Add(model.Driver{ID: "NINFAR02", Slug: "nino-farina", DisplayName: "Nino Farina"}) {
			t.Error("expected a different driver id to be a new entity")
		}
		if x.Len() != 2 {
			t.Errorf("Len() = %d, want 2", x.Len())
		}
	})

	t.Run("folds unicode case", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		x.Add(model.Driver{ID: "KIMRAI01", Slug: "kimi-raikkonen", DisplayName: "Kimi Räikkönen"})
		if _, ok := x.Lookup("KIMI RÄIKKÖNEN"); !ok {
			t.Error("expected case-insensitive unicode match")
		}
	})

	t.Run("blank name matches nothing", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		x.Add(model.Team{Slug: "alta", DisplayName: ""})
		if _, ok := x.Lookup("   "); ok {
			t.Error("expected blank lookup to fail")
		}
	})

	t.Run("entities keep first-seen order", func(t *testing.T) {
		t.Parallel()

		x := NewNameIndex()
		for _, slug := range []string{"maserati", "alfa_romeo", "ferrari"} {
			x.Add(model.Team{Slug: slug, DisplayName: slug})
		}
		got := x.Entities()
		if len(got) != 3 || got[0].InternalName() != "maserati" || got[2].InternalName() != "ferrari" {
			t.Errorf("unexpected order %v", got)
		}
	})
}

// TestYearRange tests season ranges.
func TestYearRange(t *testing.T) {
	t.Parallel()

	var got []int
	for y := range (YearRange{First: 1950, Last: 1952}).All() {
		got = append(got, y)
	}
	if len(got) != 3 || got[0] != 1950 || got[2] != 1952 {
		t.Errorf("All() = %v", got)
	}

	if s := SingleYear(1950).String(); s != "1950" {
		t.Errorf("String() = %q", s)
	}
	if s := (YearRange{First: 1950, Last: 2023}).String(); s != "1950..2023" {
		t.Errorf("String() = %q", s)
	}
	if err := (YearRange{First: 2000, Last: 1999}).Validate(); err == nil {
		t.Error("expected inverted range to fail validation")
	}
}
