// Package search implements client-side filtering over in-memory record
// collections. Filtering is pure: the source slice is never mutated and the
// result is a fresh view recomputed on every call.
package search

import (
	"strings"

	"github.com/spec-kit/training-service/internal/domain"
)

// Filter returns the records whose listed fields contain term, compared
// case-insensitively. A term that trims to empty returns the whole
// collection unchanged. Matching is OR across fields with a single
// free-text term; input order is preserved.
func Filter[T any](list []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}
	filtered := make([]T, 0, len(list))
	for _, item := range list {
		for _, field := range fields(item) {
			if containsFold(field, term) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Employees filters by name, identifier, or email.
func Employees(list []domain.Employee, term string) []domain.Employee {
	return Filter(list, term, func(emp domain.Employee) []string {
		return []string{emp.Name, emp.EmployeeID, emp.Email}
	})
}

// Trainees filters enrollment records by employee name, employee identifier,
// or training name.
func Trainees(list []domain.Trainee, term string) []domain.Trainee {
	return Filter(list, term, func(tr domain.Trainee) []string {
		return []string{tr.EmployeeName, tr.EmployeeID, string(tr.TrainingName)}
	})
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
