package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("period must be month, quarter or year")
	ErrNoPayRate     = errors.New("employee has no hourly pay rate configured")
)
