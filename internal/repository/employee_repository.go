package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/training-service/internal/domain"
)

// EmployeeRepository handles persistence for employee records. Uniqueness of
// the employee identifier is enforced here by the primary key, not by the
// advisory client-side generator.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Deactivate(ctx context.Context, id string) error
	SearchByTerm(ctx context.Context, term string) ([]domain.Employee, error)
}

// EmployeeFilter defines query params for employee listing.
type EmployeeFilter struct {
	Department *domain.Department
	Active     *bool
	Limit      int
	Offset     int
}

const employeeColumns = `employee_id, employee_name, email, department, joining_date, phone, active_flag, created_at, updated_at`

type employeeRepository struct {
	pool Querier
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(pool Querier) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (employee_id, employee_name, email, department, joining_date, phone, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		emp.EmployeeID,
		emp.Name,
		emp.Email,
		emp.Department,
		emp.JoiningDate,
		emp.Phone,
		emp.Active,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET employee_name=$1, email=$2, department=$3, joining_date=$4, phone=$5, active_flag=$6, updated_at=NOW()
        WHERE employee_id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.Department,
		emp.JoiningDate,
		emp.Phone,
		emp.Active,
		emp.EmployeeID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id=$1`

	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.EmployeeID,
		&emp.Name,
		&emp.Email,
		&emp.Department,
		&emp.JoiningDate,
		&emp.Phone,
		&emp.Active,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	clauses := []string{}

	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("department=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active_flag=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Deactivate performs the soft delete: the row is kept, only the active
// flag drops.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE employees SET active_flag=FALSE, updated_at=NOW() WHERE employee_id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SearchByTerm is the server-side variant of the filter engine: substring
// match across name, identifier, and email.
func (r *employeeRepository) SearchByTerm(ctx context.Context, term string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
        WHERE employee_name ILIKE $1 OR employee_id ILIKE $1 OR email ILIKE $1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.EmployeeID,
			&emp.Name,
			&emp.Email,
			&emp.Department,
			&emp.JoiningDate,
			&emp.Phone,
			&emp.Active,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}
