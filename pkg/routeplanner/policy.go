package routeplanner

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// TransferPenalty is added per leg by the balanced policy so fewer transfers win close calls
const TransferPenalty = 5

type Preferences struct {
	Fastest  bool `json:"fastest"`
	Cheapest bool `json:"cheapest"`
}

type SelectionPolicy int

const (
	PolicyBalanced SelectionPolicy = iota
	PolicyFastest
	PolicyCheapest
	PolicyExpression
)

func (p SelectionPolicy) String() string {
	switch p {
	case PolicyFastest:
		return "fastest"
	case PolicyCheapest:
		return "cheapest"
	case PolicyExpression:
		return "expression"
	default:
		return "balanced"
	}
}

// Objective scores a candidate, lower is better
type Objective func(c *Candidate) float64

func fastestObjective(c *Candidate) float64 {
	return float64(c.Time)
}

func cheapestObjective(c *Candidate) float64 {
	return c.Fare
}

func balancedObjective(c *Candidate) float64 {
	return float64(c.Time + c.Legs()*TransferPenalty)
}

// Selector turns preferences into a policy and picks the winning candidate
type Selector struct {
	expression string
	program    *vm.Program
}

// NewSelector compiles an optional scoring expression over time, fare, distance and legs.
// An empty expression keeps the balanced default.
func NewSelector(expression string) (*Selector, error) {
	selector := &Selector{}

	if expression == "" {
		return selector, nil
	}

	program, err := expr.Compile(expression, expr.Env(expressionEnvironment(&Candidate{})), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile score expression %q: %w", expression, err)
	}

	selector.expression = expression
	selector.program = program

	return selector, nil
}

func expressionEnvironment(c *Candidate) map[string]any {
	return map[string]any{
		"time":     float64(c.Time),
		"fare":     c.Fare,
		"distance": c.Distance,
		"legs":     float64(c.Legs()),
	}
}

// Policy applies the fixed precedence fastest, cheapest, then the configured default
func (s *Selector) Policy(preferences Preferences) SelectionPolicy {
	switch {
	case preferences.Fastest:
		return PolicyFastest
	case preferences.Cheapest:
		return PolicyCheapest
	case s.program != nil:
		return PolicyExpression
	default:
		return PolicyBalanced
	}
}

func (s *Selector) Objective(policy SelectionPolicy) Objective {
	switch policy {
	case PolicyFastest:
		return fastestObjective
	case PolicyCheapest:
		return cheapestObjective
	case PolicyExpression:
		if s.program != nil {
			return s.expressionObjective
		}
		return balancedObjective
	default:
		return balancedObjective
	}
}

// PruningObjective is the objective Enumerate may prune on in relaxed mode. It is nil for
// PolicyExpression, where a longer path can score lower than its own prefix.
func (s *Selector) PruningObjective(policy SelectionPolicy) Objective {
	if policy == PolicyExpression && s.program != nil {
		return nil
	}

	return s.Objective(policy)
}

func (s *Selector) expressionObjective(c *Candidate) float64 {
	output, err := expr.Run(s.program, expressionEnvironment(c))
	if err != nil {
		log.Error().Err(err).Str("expression", s.expression).Msg("Failed to evaluate score expression")
		return math.Inf(1)
	}

	return output.(float64)
}

// Rank orders candidates by objective, ties keep discovery order
func Rank(candidates []*Candidate, objective Objective) []*Candidate {
	type scored struct {
		candidate *Candidate
		score     float64
	}

	scoredCandidates := make([]scored, len(candidates))
	for i, candidate := range candidates {
		scoredCandidates[i] = scored{candidate: candidate, score: objective(candidate)}
	}

	slices.SortStableFunc(scoredCandidates, func(a, b scored) int {
		switch {
		case a.score < b.score:
			return -1
		case a.score > b.score:
			return 1
		default:
			return 0
		}
	})

	ranked := make([]*Candidate, len(scoredCandidates))
	for i, s := range scoredCandidates {
		ranked[i] = s.candidate
	}

	return ranked
}

// Select returns the best candidate under policy, or nil when there are none
func (s *Selector) Select(candidates []*Candidate, policy SelectionPolicy) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	return Rank(candidates, s.Objective(policy))[0]
}
