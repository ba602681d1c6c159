package employee

import "context"

// EmployeeRepository defines data access for staff records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// ListTracked returns employed staff whose role is attendance-tracked.
	ListTracked(ctx context.Context) ([]Employee, error)
}
