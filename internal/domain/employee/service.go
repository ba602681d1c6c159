package employee

import "context"

// EmployeeService defines staff management operations.
type EmployeeService interface {
	Create(ctx context.Context, req EmployeePayload) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeePayload) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
