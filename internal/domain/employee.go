package domain

import "time"

// Department enumerates the organizational units an employee belongs to.
type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentIT         Department = "IT"
	DepartmentFinance    Department = "Finance"
	DepartmentOperations Department = "Operations"
	DepartmentSales      Department = "Sales"
	DepartmentMarketing  Department = "Marketing"
)

// Departments lists every valid department.
func Departments() []Department {
	return []Department{
		DepartmentHR,
		DepartmentIT,
		DepartmentFinance,
		DepartmentOperations,
		DepartmentSales,
		DepartmentMarketing,
	}
}

// Valid reports whether d is one of the enumerated departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentHR, DepartmentIT, DepartmentFinance,
		DepartmentOperations, DepartmentSales, DepartmentMarketing:
		return true
	}
	return false
}

// Employee models a person record independent of any training. The
// EmployeeID is immutable once created; deletion deactivates the record
// instead of removing the row.
type Employee struct {
	EmployeeID  string
	Name        string
	Email       string
	Department  Department
	JoiningDate time.Time
	Phone       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmployeeUpdate carries the mutable fields of an employee. The identifier
// is deliberately absent.
type EmployeeUpdate struct {
	Name        string
	Email       string
	Department  Department
	JoiningDate time.Time
	Phone       string
	Active      *bool
}
