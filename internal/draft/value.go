package draft

import (
	"fmt"

	"github.com/lox/galaxydraft/internal/catalog"
)

// SkipValues maps a tech specialty to the misc bonus it contributes to
// a tile's value.
type SkipValues map[catalog.TechSpecialty]float64

// DefaultSkipValues are the standard per-specialty bonuses.
var DefaultSkipValues = SkipValues{
	catalog.TechNone:   0,
	catalog.TechRed:    0.1,
	catalog.TechYellow: 0.15,
	catalog.TechGreen:  0.2,
	catalog.TechBlue:   0.25,
}

// Value is the scoring aggregate for a planet, tile, or slice:
// effective resources and influence after per-planet optimal-use
// assignment, a misc bonus for tech specialties, and the strict
// (unweighted) sums. Addition is commutative and associative.
type Value struct {
	EffResources float64
	EffInfluence float64
	Misc         float64

	StrictResources int
	StrictInfluence int
}

// Total is the combined effective value.
func (v Value) Total() float64 {
	return v.EffResources + v.EffInfluence + v.Misc
}

// Add returns the component-wise sum of two values.
func (v Value) Add(o Value) Value {
	return Value{
		EffResources:    v.EffResources + o.EffResources,
		EffInfluence:    v.EffInfluence + o.EffInfluence,
		Misc:            v.Misc + o.Misc,
		StrictResources: v.StrictResources + o.StrictResources,
		StrictInfluence: v.StrictInfluence + o.StrictInfluence,
	}
}

// String renders the value for display, e.g.
// "9.50 = 5.00 (6) R + 4.25 (5) I + 0.25 E".
func (v Value) String() string {
	return fmt.Sprintf("%.2f = %.2f (%d) R + %.2f (%d) I + %.2f E",
		v.Total(), v.EffResources, v.StrictResources,
		v.EffInfluence, v.StrictInfluence, v.Misc)
}

// Quantity selects one scoring dimension of a Value.
type Quantity int

const (
	QuantityTotal Quantity = iota
	QuantityEffResources
	QuantityEffInfluence
	QuantityStrictResources
	QuantityStrictInfluence
)

func (q Quantity) String() string {
	switch q {
	case QuantityTotal:
		return "total"
	case QuantityEffResources:
		return "eff_resources"
	case QuantityEffInfluence:
		return "eff_influence"
	case QuantityStrictResources:
		return "strict_resources"
	case QuantityStrictInfluence:
		return "strict_influence"
	default:
		return fmt.Sprintf("quantity(%d)", int(q))
	}
}

// Get returns the named dimension of the value.
func (v Value) Get(q Quantity) float64 {
	switch q {
	case QuantityTotal:
		return v.Total()
	case QuantityEffResources:
		return v.EffResources
	case QuantityEffInfluence:
		return v.EffInfluence
	case QuantityStrictResources:
		return float64(v.StrictResources)
	case QuantityStrictInfluence:
		return float64(v.StrictInfluence)
	default:
		return 0
	}
}

// EvaluateTile scores a tile by the optimal-use rule: each planet
// contributes its resource value to effective resources when R > I, its
// influence to effective influence when R < I, and splits evenly on a
// tie. Tech specialties add their skip bonus to misc regardless of the
// split. A nil SkipValues uses the defaults.
//
// The tie split is a scoring policy, not a rule of the game; keep it
// stable for deterministic scoring.
func EvaluateTile(t catalog.Tile, skip SkipValues) Value {
	if skip == nil {
		skip = DefaultSkipValues
	}
	var v Value
	for _, p := range t.Planets {
		v.StrictResources += p.Resources
		v.StrictInfluence += p.Influence
		switch {
		case p.Resources > p.Influence:
			v.EffResources += float64(p.Resources)
		case p.Resources < p.Influence:
			v.EffInfluence += float64(p.Influence)
		default:
			v.EffResources += float64(p.Resources) / 2
			v.EffInfluence += float64(p.Influence) / 2
		}
		v.Misc += skip[p.Tech]
	}
	return v
}
