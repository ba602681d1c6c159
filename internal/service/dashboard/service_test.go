package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/validator"
)

func TestGetDashboard_MalformedDateIsValidationError(t *testing.T) {
	svc := NewDashboardService(nil, nil, nil)

	_, err := svc.GetDashboard(context.Background(), "13-09-2025", time.Now())

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "date", verrs[0].Field)
}
