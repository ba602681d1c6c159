package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/zenstaff/attendance-backend-go/internal/domain/holiday"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
	}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.HolidayResponse{
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
		})
	}
	return responses, nil
}

// Upsert implements holiday.HolidayService. Date is the key, so marking the
// same date twice just renames the holiday.
func (s *HolidayServiceImpl) Upsert(ctx context.Context, req holiday.HolidayPayload) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return holiday.HolidayResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	saved, err := s.HolidayRepository.Upsert(ctx, holiday.Holiday{Date: date, Name: req.Name})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return holiday.HolidayResponse{
		Date: saved.Date.Format("2006-01-02"),
		Name: saved.Name,
	}, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, dateStr string) error {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	if err := s.HolidayRepository.Delete(ctx, date); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
