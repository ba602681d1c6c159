package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeNotActive = errors.New("employee is no longer employed")
)
