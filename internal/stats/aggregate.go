// Package stats derives dashboard statistics from a raw trainee collection.
// Aggregation is a pure function of its input: no I/O, no mutation, and
// identical inputs (including ordering) always produce identical output.
package stats

import (
	"math"
	"sort"

	"github.com/spec-kit/training-service/internal/domain"
)

const topListLimit = 5

// Stats is the classified dashboard view of a trainee collection.
type Stats struct {
	// TotalTrainees counts distinct employees holding at least one
	// enrollment. An employee with several trainings counts once; an
	// employee with none does not appear here at all.
	TotalTrainees  int
	TotalTrainings int

	PendingTrainings   int
	OngoingTrainings   int
	CompletedTrainings int

	// TraineesByTraining has an entry for every offered category, zero
	// when no enrollment references it.
	TraineesByTraining map[domain.TrainingCategory]int

	// UpcomingTrainings holds at most five Pending enrollments, ascending
	// by start date. Ties keep input order.
	UpcomingTrainings []domain.Trainee

	// RecentCompletions holds at most five Completed enrollments,
	// descending by end date (start date when no end date is set).
	RecentCompletions []domain.Trainee
}

// Aggregate classifies trainees into dashboard statistics. Records carrying
// a status outside the closed set are excluded from every status bucket and
// from both top lists; this is a defined boundary, not an error.
func Aggregate(trainees []domain.Trainee) Stats {
	s := Stats{
		TraineesByTraining: make(map[domain.TrainingCategory]int, len(domain.TrainingCategories())),
	}

	// Unique-by-employeeId is an explicit set over identifiers.
	uniqueEmployees := make(map[string]struct{}, len(trainees))
	for _, t := range trainees {
		uniqueEmployees[t.EmployeeID] = struct{}{}
	}
	s.TotalTrainees = len(uniqueEmployees)
	s.TotalTrainings = len(trainees)

	for _, t := range trainees {
		switch t.Status {
		case domain.TraineeStatusPending:
			s.PendingTrainings++
		case domain.TraineeStatusOngoing:
			s.OngoingTrainings++
		case domain.TraineeStatusCompleted:
			s.CompletedTrainings++
		}
	}

	for _, category := range domain.TrainingCategories() {
		s.TraineesByTraining[category] = 0
	}
	for _, t := range trainees {
		if t.TrainingName.Valid() {
			s.TraineesByTraining[t.TrainingName]++
		}
	}

	s.UpcomingTrainings = upcoming(trainees)
	s.RecentCompletions = recentCompletions(trainees)
	return s
}

// StatusPercentage returns the rounded share of trainings in the given
// status. A zero total yields 0 rather than dividing by zero.
func (s Stats) StatusPercentage(status domain.TraineeStatus) int {
	if s.TotalTrainings == 0 {
		return 0
	}
	var count int
	switch status {
	case domain.TraineeStatusPending:
		count = s.PendingTrainings
	case domain.TraineeStatusOngoing:
		count = s.OngoingTrainings
	case domain.TraineeStatusCompleted:
		count = s.CompletedTrainings
	default:
		return 0
	}
	return int(math.Round(float64(count) / float64(s.TotalTrainings) * 100))
}

func upcoming(trainees []domain.Trainee) []domain.Trainee {
	pending := filterByStatus(trainees, domain.TraineeStatusPending)
	// Stable keeps input order for equal start dates; no secondary key is
	// defined for ties.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].StartDate.Before(pending[j].StartDate)
	})
	return truncate(pending)
}

func recentCompletions(trainees []domain.Trainee) []domain.Trainee {
	completed := filterByStatus(trainees, domain.TraineeStatusCompleted)
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletionDate().After(completed[j].CompletionDate())
	})
	return truncate(completed)
}

func filterByStatus(trainees []domain.Trainee, status domain.TraineeStatus) []domain.Trainee {
	out := make([]domain.Trainee, 0, len(trainees))
	for _, t := range trainees {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func truncate(list []domain.Trainee) []domain.Trainee {
	if len(list) > topListLimit {
		return list[:topListLimit]
	}
	return list
}
