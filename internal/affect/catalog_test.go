package affect

import (
	"testing"
)

// narrowDef puts every range far into the positive corner so ordinary
// vectors score near zero against it.
func narrowDef(label string, category Category) Definition {
	far := Range{95, 100}
	return Definition{
		FormalLabel:    label,
		Category:       category,
		PleasureRange:  far,
		ArousalRange:   far,
		DominanceRange: far,
		CompositeRange: far,
	}
}

// fallbackCatalog holds only the five fallback representatives, all
// unmatchable, so every lookup exercises the pleasure-threshold fallback.
func fallbackCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog([]Definition{
		narrowDef("Cheerful", CategoryJoy),
		narrowDef("Serene", CategoryCalm),
		narrowDef("Bored", CategoryBoredom),
		narrowDef("Anxious", CategoryAnxiety),
		narrowDef("Furious", CategoryAnger),
	})
	if err != nil {
		t.Fatalf("expected catalog to build, got %v", err)
	}
	return catalog
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	if _, err := NewCatalog(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestNewCatalogRequiresFallbackRepresentatives(t *testing.T) {
	_, err := NewCatalog([]Definition{
		narrowDef("Cheerful", CategoryJoy),
		narrowDef("Serene", CategoryCalm),
		narrowDef("Bored", CategoryBoredom),
		narrowDef("Anxious", CategoryAnxiety),
		// Furious missing.
	})
	if err == nil {
		t.Fatal("expected error for catalog missing a representative")
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()
	if catalog.Len() != 26 {
		t.Fatalf("expected 26 definitions, got %d", catalog.Len())
	}
	counts := map[Category]int{}
	for _, def := range catalog.Definitions() {
		counts[def.Category]++
	}
	want := map[Category]int{
		CategoryElation: 3,
		CategoryJoy:     5,
		CategoryCalm:    4,
		CategoryBoredom: 4,
		CategoryAnxiety: 6,
		CategoryAnger:   4,
	}
	for category, n := range want {
		if counts[category] != n {
			t.Fatalf("expected %d %s definitions, got %d", n, category, counts[category])
		}
	}
}

func TestInRangeScore(t *testing.T) {
	r := Range{-20, 20}
	cases := []struct {
		value float64
		want  float64
	}{
		{0, 1.0},    // center
		{-20, 0.5},  // lower edge
		{20, 0.5},   // upper edge
		{45, 0.5},   // 25 beyond, halfway through the decay margin
		{70, 0.0},   // exactly 50 beyond
		{-100, 0.0}, // far past the margin
	}
	for _, tc := range cases {
		if got := inRangeScore(tc.value, r); got != tc.want {
			t.Fatalf("inRangeScore(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestFindMatchIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()
	v := Vector{Pleasure: 33, Arousal: -12, Dominance: 7}
	first := catalog.FindMatch(v)
	second := catalog.FindMatch(v)
	if first != second {
		t.Fatalf("expected identical results, got %#v and %#v", first, second)
	}
}

func TestFindMatchTieBreaksOnDeclarationOrder(t *testing.T) {
	shared := Range{-10, 10}
	def := func(label string) Definition {
		return Definition{
			FormalLabel:    label,
			Category:       CategoryBoredom,
			PleasureRange:  shared,
			ArousalRange:   shared,
			DominanceRange: shared,
		}
	}
	catalog, err := NewCatalog([]Definition{
		narrowDef("Cheerful", CategoryJoy),
		narrowDef("Serene", CategoryCalm),
		narrowDef("Anxious", CategoryAnxiety),
		narrowDef("Furious", CategoryAnger),
		def("Bored"),
		def("Listless"),
	})
	if err != nil {
		t.Fatalf("expected catalog to build, got %v", err)
	}
	got := catalog.FindMatch(Vector{})
	if got.FormalLabel != "Bored" {
		t.Fatalf("expected first-listed definition to win the tie, got %q", got.FormalLabel)
	}
}

func TestFindMatchHighPleasureArousal(t *testing.T) {
	catalog := DefaultCatalog()
	v := Vector{Pleasure: 70, Arousal: 60, Dominance: 50}
	def := catalog.FindMatch(v)
	if def.Category != CategoryElation {
		t.Fatalf("expected Elation-category match, got %s (%s)", def.Category, def.FormalLabel)
	}
	if confidence := catalog.Confidence(v, def); confidence < 0.3 {
		t.Fatalf("expected confidence >= 0.3, got %v", confidence)
	}
}

func TestFindMatchLowPleasureNegativeDominance(t *testing.T) {
	catalog := DefaultCatalog()
	def := catalog.FindMatch(Vector{Pleasure: -50, Arousal: -30, Dominance: -40})
	if def.Category != CategoryAnxiety {
		t.Fatalf("expected Anxiety-category match, got %s (%s)", def.Category, def.FormalLabel)
	}
}

func TestFindMatchFallbackThresholds(t *testing.T) {
	catalog := fallbackCatalog(t)
	cases := []struct {
		pleasure int
		want     string
	}{
		{100, "Cheerful"},
		{60, "Cheerful"},
		{59, "Serene"},
		{20, "Serene"},
		{19, "Bored"},
		{-20, "Bored"},
		{-21, "Anxious"},
		{-50, "Anxious"},
		{-51, "Furious"},
		{-100, "Furious"},
	}
	for _, tc := range cases {
		// Arousal and dominance must not influence the fallback pick.
		got := catalog.FindMatch(Vector{Pleasure: tc.pleasure, Arousal: -100, Dominance: -100})
		if got.FormalLabel != tc.want {
			t.Fatalf("pleasure %d: expected %q, got %q", tc.pleasure, tc.want, got.FormalLabel)
		}
	}
}

func TestConfidence(t *testing.T) {
	catalog := DefaultCatalog()
	ecstatic := catalog.Definitions()[0]

	// Dead center on arousal and dominance, 10 off on pleasure.
	got := catalog.Confidence(Vector{Pleasure: 80, Arousal: 90, Dominance: 80}, ecstatic)
	if got != 0.967 {
		t.Fatalf("expected confidence 0.967, got %v", got)
	}

	// A hopeless match still floors at 0.3.
	got = catalog.Confidence(Vector{Pleasure: -100, Arousal: -100, Dominance: -100}, ecstatic)
	if got != 0.3 {
		t.Fatalf("expected floor confidence 0.3, got %v", got)
	}
}
