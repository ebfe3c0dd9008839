// SPDX-License-Identifier: MIT
// Package config reads annealing schedules from YAML files.
//
// A file names the required scales and any optional schedule parameters:
//
//	diameter: 1.0
//	p: 2              # optional, defaults to annealing.DefaultP
//	blur: 0.01
//	reach: 0.5        # optional
//	n_iter: 10        # optional
//	scaling: 0.5      # optional
//	scales: [1, 0.1]  # optional
//
// When both n_iter and scaling are absent, annealing.DefaultScaling is used.
// The diameter may be omitted in favour of two point clouds x and y (one
// point per row); it is then estimated with annealing.MaxDiameter.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/otanneal/annealing"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Schedule models one schedule file. Optional keys are pointers so that an
// absent key stays distinguishable from an explicit zero.
type Schedule struct {
	Name     string      `yaml:"name,omitempty"`
	Diameter *float64    `yaml:"diameter,omitempty"`
	P        *float64    `yaml:"p,omitempty"`
	Blur     *float64    `yaml:"blur"`
	Reach    *float64    `yaml:"reach,omitempty"`
	NIter    *int        `yaml:"n_iter,omitempty"`
	Scaling  *float64    `yaml:"scaling,omitempty"`
	Scales   []float64   `yaml:"scales,omitempty"`
	X        [][]float64 `yaml:"x,omitempty"`
	Y        [][]float64 `yaml:"y,omitempty"`
}

// Load reads and parses the schedule file at path.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Parse decodes a schedule document. Unknown keys are rejected.
func Parse(data []byte) (*Schedule, error) {
	var s Schedule
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMissingField)
		}

		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// validate checks presence and shape only; numeric ranges are left to
// annealing.Parameters so both entry points report the same errors.
func (s *Schedule) validate() error {
	if s.Blur == nil {
		return fmt.Errorf("%w: blur", ErrMissingField)
	}
	if s.Diameter != nil {
		return nil
	}
	if len(s.X) == 0 || len(s.Y) == 0 {
		return fmt.Errorf("%w: diameter (or both point clouds x and y)", ErrMissingField)
	}
	if _, err := dense("x", s.X); err != nil {
		return err
	}
	_, err := dense("y", s.Y)

	return err
}

// Exponent returns p, or annealing.DefaultP when the key is absent.
func (s *Schedule) Exponent() float64 {
	if s.P == nil {
		return annealing.DefaultP
	}

	return *s.P
}

// ResolveDiameter returns the explicit diameter, or the bounding-box
// estimate of the two point clouds.
func (s *Schedule) ResolveDiameter() (float64, error) {
	if s.Diameter != nil {
		return *s.Diameter, nil
	}
	x, err := dense("x", s.X)
	if err != nil {
		return 0, err
	}
	y, err := dense("y", s.Y)
	if err != nil {
		return 0, err
	}

	return annealing.MaxDiameter(x, y)
}

// Options resolves the optional keys into annealing options.
func (s *Schedule) Options() []annealing.Option {
	opts := make([]annealing.Option, 0, 4)
	if s.Reach != nil {
		opts = append(opts, annealing.WithReach(*s.Reach))
	}
	if s.NIter != nil {
		opts = append(opts, annealing.WithIterations(*s.NIter))
	}
	switch {
	case s.Scaling != nil:
		opts = append(opts, annealing.WithScaling(*s.Scaling))
	case s.NIter == nil:
		opts = append(opts, annealing.WithScaling(annealing.DefaultScaling))
	}
	if len(s.Scales) > 0 {
		opts = append(opts, annealing.WithScales(s.Scales...))
	}

	return opts
}

// Plan runs the scheduler for this file through p.
func (s *Schedule) Plan(p *annealing.Planner) (annealing.DescentParameters, error) {
	if p == nil {
		return annealing.DescentParameters{}, ErrNilPlanner
	}
	diameter, err := s.ResolveDiameter()
	if err != nil {
		return annealing.DescentParameters{}, err
	}

	return p.Plan(diameter, s.Exponent(), *s.Blur, s.Options()...)
}

// dense copies rows into a gonum matrix; rows must be non-empty and of equal
// length.
func dense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidField, name)
	}
	d := len(rows[0])
	m := mat.NewDense(len(rows), d, nil)
	for i, r := range rows {
		if len(r) != d {
			return nil, fmt.Errorf("%w: %s[%d] has %d coordinates, want %d", ErrInvalidField, name, i, len(r), d)
		}
		m.SetRow(i, r)
	}

	return m, nil
}
