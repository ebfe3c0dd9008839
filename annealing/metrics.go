package annealing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansTotal tracks the number of descent plans served by a Planner
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "annealing_plans_total",
			Help: "The total number of descent plans served",
		},
		[]string{"mode", "cached"},
	)

	// PlanErrors tracks rejected schedule configurations
	PlanErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "annealing_plan_errors_total",
			Help: "The total number of rejected schedule configurations",
		},
		[]string{"kind"},
	)

	// PlanIterations tracks the number of Sinkhorn iterations per built plan
	PlanIterations = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "annealing_plan_iterations",
			Help:    "The number of Sinkhorn iterations of built plans",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // From 1 to 2048
		},
		[]string{"mode"},
	)

	// PlanJumps tracks the number of coarse-to-fine jumps per built plan
	PlanJumps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "annealing_plan_jumps",
			Help:    "The number of coarse-to-fine jumps of built plans",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		},
	)
)
