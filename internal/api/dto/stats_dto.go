package dto

import (
	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/stats"
)

// StatsResponse is the dashboard snapshot on the wire.
type StatsResponse struct {
	TotalTrainees      int                             `json:"totalTrainees"`
	TotalTrainings     int                             `json:"totalTrainings"`
	PendingTrainings   int                             `json:"pendingTrainings"`
	OngoingTrainings   int                             `json:"ongoingTrainings"`
	CompletedTrainings int                             `json:"completedTrainings"`
	TraineesByTraining map[domain.TrainingCategory]int `json:"traineesByTraining"`
	StatusPercentages  map[domain.TraineeStatus]int    `json:"statusPercentages"`
	UpcomingTrainings  []TraineeResponse               `json:"upcomingTrainings"`
	RecentCompletions  []TraineeResponse               `json:"recentCompletions"`
}

// FromStats maps the aggregated snapshot onto the wire shape.
func FromStats(s stats.Stats) StatsResponse {
	return StatsResponse{
		TotalTrainees:      s.TotalTrainees,
		TotalTrainings:     s.TotalTrainings,
		PendingTrainings:   s.PendingTrainings,
		OngoingTrainings:   s.OngoingTrainings,
		CompletedTrainings: s.CompletedTrainings,
		TraineesByTraining: s.TraineesByTraining,
		StatusPercentages: map[domain.TraineeStatus]int{
			domain.TraineeStatusPending:   s.StatusPercentage(domain.TraineeStatusPending),
			domain.TraineeStatusOngoing:   s.StatusPercentage(domain.TraineeStatusOngoing),
			domain.TraineeStatusCompleted: s.StatusPercentage(domain.TraineeStatusCompleted),
		},
		UpcomingTrainings: FromTrainees(s.UpcomingTrainings),
		RecentCompletions: FromTrainees(s.RecentCompletions),
	}
}
