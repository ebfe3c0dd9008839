// SPDX-License-Identifier: MIT
package config

import "errors"

var (
	// ErrMissingField is returned when a required key is absent: blur always,
	// diameter unless both point clouds x and y are given.
	ErrMissingField = errors.New("config: missing required field")

	// ErrInvalidField is returned for a present but malformed value, such as
	// ragged point-cloud rows.
	ErrInvalidField = errors.New("config: invalid field")

	// ErrNilPlanner is returned by Schedule.Plan when given a nil planner.
	ErrNilPlanner = errors.New("config: planner is nil")
)
