package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "writingspace_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	promptGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "writingspace_prompt_generations_total",
			Help: "Total number of prompt generation attempts by mode and status.",
		},
		[]string{"mode", "status"},
	)

	storySavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "writingspace_story_saves_total",
			Help: "Total number of story create/update operations by status.",
		},
		[]string{"operation", "status"},
	)

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "writingspace_token_verifications_total",
			Help: "Total number of access token verification attempts by status.",
		},
		[]string{"status"},
	)
)
