package affect

import (
	"fmt"
	"math"
)

// Category is one of the six coarse emotion groupings.
type Category string

const (
	CategoryElation Category = "Elation"
	CategoryJoy     Category = "Joy"
	CategoryCalm    Category = "Calm"
	CategoryBoredom Category = "Boredom"
	CategoryAnxiety Category = "Anxiety"
	CategoryAnger   Category = "Anger"
)

// Range is a closed interval over an affect axis or composite score.
type Range struct {
	Min float64
	Max float64
}

func (r Range) center() float64 { return (r.Min + r.Max) / 2 }
func (r Range) width() float64  { return r.Max - r.Min }

// Definition is one catalog entry: display metadata plus the PAD and
// composite ranges it covers.
type Definition struct {
	FormalLabel string
	CasualLabel string
	Glyph       string
	Color       string
	Description string
	Category    Category

	PleasureRange  Range
	ArousalRange   Range
	DominanceRange Range
	CompositeRange Range
}

// fallbackThreshold is the minimum weighted match score for a definition to
// win outright; below it classification falls back by pleasure band.
const fallbackThreshold = 0.3

// outOfRangeMargin is how far beyond a range's bound the per-axis score
// decays linearly to zero.
const outOfRangeMargin = 50.0

// Catalog is an immutable, ordered emotion catalog. Declaration order is a
// compatibility contract: ties on match score resolve to the first listed
// definition, so entries must not be reordered.
type Catalog struct {
	defs []Definition

	// fallback representatives by pleasure band, resolved at construction.
	reps map[Category]Definition
}

// fallbackRepresentatives names the specific definition that stands in for
// each category reachable through the pleasure-threshold fallback.
var fallbackRepresentatives = map[Category]string{
	CategoryJoy:     "Cheerful",
	CategoryCalm:    "Serene",
	CategoryBoredom: "Bored",
	CategoryAnxiety: "Anxious",
	CategoryAnger:   "Furious",
}

// NewCatalog builds a catalog from an ordered definition list. An empty list
// or a missing fallback representative is a configuration error; the caller
// is expected to treat it as fatal at startup.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("affect: emotion catalog is empty")
	}
	c := &Catalog{
		defs: append([]Definition(nil), defs...),
		reps: make(map[Category]Definition, len(fallbackRepresentatives)),
	}
	for category, label := range fallbackRepresentatives {
		def, ok := c.lookup(label)
		if !ok {
			return nil, fmt.Errorf("affect: catalog is missing fallback representative %q for category %s", label, category)
		}
		c.reps[category] = def
	}
	return c, nil
}

// Definitions returns the catalog entries in declaration order.
func (c *Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.defs) }

// FindMatch returns the definition that best matches the vector. It is a
// pure function of the input: the catalog is never mutated after
// construction and ties resolve to the first maximal entry.
func (c *Catalog) FindMatch(v Vector) Definition {
	best := c.defs[0]
	bestScore := matchScore(v, best)
	for _, def := range c.defs[1:] {
		if score := matchScore(v, def); score > bestScore {
			best = def
			bestScore = score
		}
	}
	if bestScore >= fallbackThreshold {
		return best
	}

	// No confident match: fall back on pleasure bands into a fixed
	// representative per category.
	switch p := v.Pleasure; {
	case p >= 60:
		return c.reps[CategoryJoy]
	case p >= 20:
		return c.reps[CategoryCalm]
	case p >= -20:
		return c.reps[CategoryBoredom]
	case p >= -50:
		return c.reps[CategoryAnxiety]
	default:
		return c.reps[CategoryAnger]
	}
}

// Confidence scores how centrally the vector sits inside the definition's
// ranges: 1 minus the mean normalized distance to the three range centers,
// floored at 0.3 and rounded to three decimals.
func (c *Catalog) Confidence(v Vector, def Definition) float64 {
	pDist := math.Abs(float64(v.Pleasure)-def.PleasureRange.center()) / 100
	aDist := math.Abs(float64(v.Arousal)-def.ArousalRange.center()) / 100
	dDist := math.Abs(float64(v.Dominance)-def.DominanceRange.center()) / 100

	confidence := 1 - (pDist+aDist+dDist)/3
	if confidence < fallbackThreshold {
		confidence = fallbackThreshold
	}
	return math.Round(confidence*1000) / 1000
}

func (c *Catalog) lookup(formalLabel string) (Definition, bool) {
	for _, def := range c.defs {
		if def.FormalLabel == formalLabel {
			return def, true
		}
	}
	return Definition{}, false
}

// matchScore weights the three per-axis range scores with the composite
// score weights.
func matchScore(v Vector, def Definition) float64 {
	return inRangeScore(float64(v.Pleasure), def.PleasureRange)*WeightPleasure +
		inRangeScore(float64(v.Arousal), def.ArousalRange)*WeightArousal +
		inRangeScore(float64(v.Dominance), def.DominanceRange)*WeightDominance
}

// inRangeScore rewards proximity to the range center inside the range
// (floor 0.5 at the edges) and decays linearly to zero over a 50-unit
// margin outside it.
func inRangeScore(value float64, r Range) float64 {
	if value >= r.Min && value <= r.Max {
		distance := math.Abs(value - r.center())
		return 1.0 - (distance/(r.width()/2))*0.5
	}
	var distance float64
	if value < r.Min {
		distance = r.Min - value
	} else {
		distance = value - r.Max
	}
	return math.Max(0, 1.0-distance/outOfRangeMargin)
}
