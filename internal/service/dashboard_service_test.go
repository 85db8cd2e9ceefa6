package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/events"
	"github.com/spec-kit/training-service/internal/stats"
)

func seedTrainees(repo *fakeTraineeRepo) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	repo.trainees["t-1"] = &domain.Trainee{
		ID: "t-1", EmployeeID: "EMP00001", EmployeeName: "Asha Rao",
		TrainingName: domain.TrainingMEAN, StartDate: start,
		Status: domain.TraineeStatusPending,
	}
	repo.trainees["t-2"] = &domain.Trainee{
		ID: "t-2", EmployeeID: "EMP00001", EmployeeName: "Asha Rao",
		TrainingName: domain.TrainingSAP, StartDate: start,
		Status: domain.TraineeStatusOngoing,
	}
}

func TestGetStatsCacheMissAggregatesAndStores(t *testing.T) {
	t.Parallel()

	repo := newFakeTraineeRepo()
	seedTrainees(repo)
	cache := &fakeStatsCache{}
	ttl := 45 * time.Second
	svc := NewDashboardService(DashboardDependencies{TraineeRepo: repo, Cache: cache, CacheTTL: ttl})

	snapshot, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if snapshot.TotalTrainings != 2 || snapshot.TotalTrainees != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if cache.sets != 1 || cache.lastTTL != ttl {
		t.Fatalf("snapshot not cached with configured ttl: sets=%d ttl=%v", cache.sets, cache.lastTTL)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one repository scan, got %d", repo.listCalls)
	}
}

func TestGetStatsCacheHitSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := newFakeTraineeRepo()
	cached := stats.Stats{TotalTrainings: 7, TotalTrainees: 3}
	cache := &fakeStatsCache{value: &cached}
	svc := NewDashboardService(DashboardDependencies{TraineeRepo: repo, Cache: cache})

	snapshot, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if snapshot.TotalTrainings != 7 {
		t.Fatalf("cached snapshot not returned: %+v", snapshot)
	}
	if repo.listCalls != 0 {
		t.Fatalf("repository scanned despite cache hit: %d", repo.listCalls)
	}
}

func TestGetStatsCacheFailureDegradesToAggregation(t *testing.T) {
	t.Parallel()

	repo := newFakeTraineeRepo()
	seedTrainees(repo)
	cache := &fakeStatsCache{getErr: errors.New("redis down")}
	svc := NewDashboardService(DashboardDependencies{TraineeRepo: repo, Cache: cache})

	snapshot, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if snapshot.TotalTrainings != 2 {
		t.Fatalf("fresh aggregation expected: %+v", snapshot)
	}
}

func TestInvalidationSubscribesToTraineeEvents(t *testing.T) {
	t.Parallel()

	repo := newFakeTraineeRepo()
	cache := &fakeStatsCache{value: &stats.Stats{}}
	svc := NewDashboardService(DashboardDependencies{TraineeRepo: repo, Cache: cache})

	dispatcher := events.NewInMemoryDispatcher()
	svc.RegisterInvalidation(dispatcher)

	_ = dispatcher.Publish(context.Background(), events.Event{Type: events.EventTraineeEnrolled})
	if cache.dels != 1 {
		t.Fatalf("cache not invalidated on enrollment: dels=%d", cache.dels)
	}

	_ = dispatcher.Publish(context.Background(), events.Event{Type: events.EventTraineeDeleted})
	if cache.dels != 2 {
		t.Fatalf("cache not invalidated on deletion: dels=%d", cache.dels)
	}

	// Employee events leave the trainee snapshot untouched.
	_ = dispatcher.Publish(context.Background(), events.Event{Type: events.EventEmployeeUpdated})
	if cache.dels != 2 {
		t.Fatalf("unexpected invalidation: dels=%d", cache.dels)
	}
}
