// Package config loads planning scenarios from YAML.
//
// A scenario file describes one planning request:
//
//	grid:
//	  - "......"
//	  - "#####."
//	start: [0, 0]
//	destination: [1, 5]
//	algorithm: wavefront   # wavefront | exact
//	bound: 4
//	epsilon: 1
//
// Omitted bound and epsilon take DefaultBound and DefaultEpsilon.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/planner"
)

// DefaultEpsilon is the simplification tolerance used when a scenario omits it.
const DefaultEpsilon = 1.0

// DefaultBound mirrors planner.DefaultBound.
const DefaultBound = planner.DefaultBound

// ErrInvalidScenario wraps every load, decode and validation failure.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Scenario is one planning request as read from YAML.
type Scenario struct {
	Map            []string `yaml:"grid"`
	Start          []int    `yaml:"start"`
	Destination    []int    `yaml:"destination"`
	Algorithm      string   `yaml:"algorithm,omitempty"`
	Bound          float64  `yaml:"bound,omitempty"`
	Epsilon        float64  `yaml:"epsilon,omitempty"`
	IterationLimit int      `yaml:"iteration_limit,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, fills defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Bound == 0 {
		s.Bound = DefaultBound
	}
	if s.Epsilon == 0 {
		s.Epsilon = DefaultEpsilon
	}
	if s.IterationLimit == 0 {
		s.IterationLimit = planner.DefaultIterationLimit
	}
}

// Validate checks the grid, both endpoints, the algorithm name and the
// numeric tunables.
func (s *Scenario) Validate() error {
	g, err := s.Grid()
	if err != nil {
		return err
	}
	if _, err := cellAt(g, "start", s.Start); err != nil {
		return err
	}
	if _, err := cellAt(g, "destination", s.Destination); err != nil {
		return err
	}
	if _, err := s.Strategy(); err != nil {
		return err
	}
	switch {
	case !(s.Bound > 0) || math.IsInf(s.Bound, 0):
		return fmt.Errorf("%w: bound must be positive, got %v", ErrInvalidScenario, s.Bound)
	case !(s.Epsilon > 0) || math.IsInf(s.Epsilon, 0):
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidScenario, s.Epsilon)
	case s.IterationLimit < 0:
		return fmt.Errorf("%w: iteration_limit must not be negative", ErrInvalidScenario)
	}
	return nil
}

// Grid parses the map rows.
func (s *Scenario) Grid() (*gridmap.Grid, error) {
	g, err := gridmap.Parse(s.Map)
	if err != nil {
		return nil, fmt.Errorf("%w: grid: %w", ErrInvalidScenario, err)
	}
	return g, nil
}

// StartCell returns the start as a Cell. Valid only after Validate.
func (s *Scenario) StartCell() gridmap.Cell {
	return gridmap.Cell{Row: s.Start[0], Col: s.Start[1]}
}

// DestinationCell returns the destination as a Cell. Valid only after Validate.
func (s *Scenario) DestinationCell() gridmap.Cell {
	return gridmap.Cell{Row: s.Destination[0], Col: s.Destination[1]}
}

// Strategy resolves the algorithm name. AStar is refused here since no
// builder backs it.
func (s *Scenario) Strategy() (field.Strategy, error) {
	st, err := field.ParseStrategy(s.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if st == field.AStar {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScenario, field.ErrStrategyNotImplemented)
	}
	return st, nil
}

// Options translates the scenario tunables into planner options.
func (s *Scenario) Options() ([]planner.Option, error) {
	st, err := s.Strategy()
	if err != nil {
		return nil, err
	}
	return []planner.Option{
		planner.WithStrategy(st),
		planner.WithBound(s.Bound),
		planner.WithIterationLimit(s.IterationLimit),
	}, nil
}

func cellAt(g *gridmap.Grid, name string, xy []int) (gridmap.Cell, error) {
	if len(xy) != 2 {
		return gridmap.Cell{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrInvalidScenario, name, xy)
	}
	c := gridmap.Cell{Row: xy[0], Col: xy[1]}
	if err := g.Check(c); err != nil {
		return gridmap.Cell{}, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, name, err)
	}
	return c, nil
}
