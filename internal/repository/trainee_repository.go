package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/training-service/internal/domain"
)

// TraineeRepository handles persistence for enrollment records. Trainees key
// by an internal id; delete-by-name removes every enrollment carrying the
// denormalized employee name.
type TraineeRepository interface {
	Create(ctx context.Context, tr *domain.Trainee) error
	Update(ctx context.Context, tr *domain.Trainee) error
	GetByID(ctx context.Context, id string) (*domain.Trainee, error)
	List(ctx context.Context) ([]domain.Trainee, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Trainee, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeName(ctx context.Context, name string) (int64, error)
	SearchByTerm(ctx context.Context, term string) ([]domain.Trainee, error)
}

const traineeColumns = `id, employee_id, employee_name, training_name, start_date, end_date, status, created_at, updated_at`

type traineeRepository struct {
	pool Querier
}

// NewTraineeRepository instantiates the repository.
func NewTraineeRepository(pool Querier) TraineeRepository {
	return &traineeRepository{pool: pool}
}

func (r *traineeRepository) Create(ctx context.Context, tr *domain.Trainee) error {
	const query = `
        INSERT INTO trainees (employee_id, employee_name, training_name, start_date, end_date, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		tr.EmployeeID,
		tr.EmployeeName,
		tr.TrainingName,
		tr.StartDate,
		tr.EndDate,
		tr.Status,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.UpdatedAt)
}

func (r *traineeRepository) Update(ctx context.Context, tr *domain.Trainee) error {
	const query = `
        UPDATE trainees
        SET employee_id=$1, employee_name=$2, training_name=$3, start_date=$4, end_date=$5, status=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		tr.EmployeeID,
		tr.EmployeeName,
		tr.TrainingName,
		tr.StartDate,
		tr.EndDate,
		tr.Status,
		tr.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *traineeRepository) GetByID(ctx context.Context, id string) (*domain.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees WHERE id=$1`

	var tr domain.Trainee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tr.ID,
		&tr.EmployeeID,
		&tr.EmployeeName,
		&tr.TrainingName,
		&tr.StartDate,
		&tr.EndDate,
		&tr.Status,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *traineeRepository) List(ctx context.Context) ([]domain.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrainees(rows)
}

func (r *traineeRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees WHERE employee_id=$1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrainees(rows)
}

func (r *traineeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByEmployeeName bulk-removes enrollments matching the denormalized
// name field. Zero matches is not an error; the count tells the caller.
func (r *traineeRepository) DeleteByEmployeeName(ctx context.Context, name string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE employee_name=$1`, name)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *traineeRepository) SearchByTerm(ctx context.Context, term string) ([]domain.Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees
        WHERE employee_name ILIKE $1 OR employee_id ILIKE $1 OR training_name ILIKE $1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrainees(rows)
}

func scanTrainees(rows pgx.Rows) ([]domain.Trainee, error) {
	var result []domain.Trainee
	for rows.Next() {
		var tr domain.Trainee
		if err := rows.Scan(
			&tr.ID,
			&tr.EmployeeID,
			&tr.EmployeeName,
			&tr.TrainingName,
			&tr.StartDate,
			&tr.EndDate,
			&tr.Status,
			&tr.CreatedAt,
			&tr.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	return result, rows.Err()
}
