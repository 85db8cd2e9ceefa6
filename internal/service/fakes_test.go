package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/training-service/internal/domain"
	"github.com/spec-kit/training-service/internal/events"
	"github.com/spec-kit/training-service/internal/repository"
	"github.com/spec-kit/training-service/internal/stats"
)

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
	createErr error
	calls     []string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]*domain.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	f.calls = append(f.calls, "Create")
	if f.createErr != nil {
		return f.createErr
	}
	now := time.Now().UTC()
	emp.CreatedAt, emp.UpdatedAt = now, now
	cp := *emp
	f.employees[emp.EmployeeID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	f.calls = append(f.calls, "Update")
	if _, ok := f.employees[emp.EmployeeID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *emp
	f.employees[emp.EmployeeID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	f.calls = append(f.calls, "GetByID")
	emp, ok := f.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *emp
	return &cp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ repository.EmployeeFilter) ([]domain.Employee, error) {
	f.calls = append(f.calls, "List")
	var out []domain.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	f.calls = append(f.calls, "Deactivate")
	emp, ok := f.employees[id]
	if !ok {
		return pgx.ErrNoRows
	}
	emp.Active = false
	return nil
}

func (f *fakeEmployeeRepo) SearchByTerm(_ context.Context, term string) ([]domain.Employee, error) {
	f.calls = append(f.calls, "SearchByTerm:"+term)
	return nil, nil
}

type fakeTraineeRepo struct {
	trainees  map[string]*domain.Trainee
	nextID    int
	createErr error
	listErr   error
	listCalls int
	calls     []string
}

func newFakeTraineeRepo() *fakeTraineeRepo {
	return &fakeTraineeRepo{trainees: map[string]*domain.Trainee{}}
}

func (f *fakeTraineeRepo) Create(_ context.Context, tr *domain.Trainee) error {
	f.calls = append(f.calls, "Create")
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	tr.ID = fmt.Sprintf("trainee-%d", f.nextID)
	now := time.Now().UTC()
	tr.CreatedAt, tr.UpdatedAt = now, now
	cp := *tr
	f.trainees[tr.ID] = &cp
	return nil
}

func (f *fakeTraineeRepo) Update(_ context.Context, tr *domain.Trainee) error {
	f.calls = append(f.calls, "Update")
	if _, ok := f.trainees[tr.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *tr
	f.trainees[tr.ID] = &cp
	return nil
}

func (f *fakeTraineeRepo) GetByID(_ context.Context, id string) (*domain.Trainee, error) {
	f.calls = append(f.calls, "GetByID")
	tr, ok := f.trainees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *tr
	return &cp, nil
}

func (f *fakeTraineeRepo) List(_ context.Context) ([]domain.Trainee, error) {
	f.calls = append(f.calls, "List")
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Trainee
	for _, tr := range f.trainees {
		out = append(out, *tr)
	}
	return out, nil
}

func (f *fakeTraineeRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.Trainee, error) {
	f.calls = append(f.calls, "ListByEmployee")
	var out []domain.Trainee
	for _, tr := range f.trainees {
		if tr.EmployeeID == employeeID {
			out = append(out, *tr)
		}
	}
	return out, nil
}

func (f *fakeTraineeRepo) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if _, ok := f.trainees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.trainees, id)
	return nil
}

func (f *fakeTraineeRepo) DeleteByEmployeeName(_ context.Context, name string) (int64, error) {
	f.calls = append(f.calls, "DeleteByEmployeeName")
	var count int64
	for id, tr := range f.trainees {
		if tr.EmployeeName == name {
			delete(f.trainees, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeTraineeRepo) SearchByTerm(_ context.Context, term string) ([]domain.Trainee, error) {
	f.calls = append(f.calls, "SearchByTerm:"+term)
	return nil, nil
}

type fakeDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (f *fakeDispatcher) eventTypes() []events.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]events.EventType, 0, len(f.published))
	for _, ev := range f.published {
		out = append(out, ev.Type)
	}
	return out
}

type fakeStatsCache struct {
	value    *stats.Stats
	getErr   error
	sets     int
	dels     int
	lastTTL  time.Duration
	setErr   error
	delErr   error
	getCalls int
}

func (f *fakeStatsCache) Get(_ context.Context) (*stats.Stats, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.value == nil {
		return nil, ErrCacheMiss
	}
	return f.value, nil
}

func (f *fakeStatsCache) Set(_ context.Context, s stats.Stats, ttl time.Duration) error {
	f.sets++
	f.lastTTL = ttl
	if f.setErr != nil {
		return f.setErr
	}
	f.value = &s
	return nil
}

func (f *fakeStatsCache) Del(_ context.Context) error {
	f.dels++
	if f.delErr != nil {
		return f.delErr
	}
	f.value = nil
	return nil
}
