package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zenstaff/attendance-backend-go/internal/domain/employee"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

func parseBirthday(birthday *string) (*time.Time, error) {
	if birthday == nil || *birthday == "" {
		return nil, nil
	}
	parsed, ok := validator.IsValidDate(*birthday)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "birthday", Message: "must be YYYY-MM-DD"},
		}
	}
	return &parsed, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Role:          string(emp.Role),
		Employed:      emp.Employed,
		HourlyPayRate: emp.HourlyPayRate,
		Tracked:       emp.Tracked(),
	}
	if emp.Birthday != nil {
		formatted := emp.Birthday.Format("2006-01-02")
		resp.Birthday = &formatted
	}
	return resp
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeePayload) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:            id,
		Name:          req.Name,
		Role:          employee.Role(req.Role),
		Employed:      req.Employed,
		HourlyPayRate: req.HourlyPayRate,
		Birthday:      birthday,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.EmployeePayload) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.ID != "" && req.ID != id {
		return employee.EmployeeResponse{}, validator.ValidationErrors{
			{Field: "id", Message: "does not match the id in the path"},
		}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.Role = employee.Role(req.Role)
	emp.Employed = req.Employed
	emp.HourlyPayRate = req.HourlyPayRate
	if birthday != nil {
		emp.Birthday = birthday
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	staff, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(staff))
	for _, emp := range staff {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}
