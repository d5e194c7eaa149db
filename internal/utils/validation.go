package utils

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

// ValidateScheduleRow is the write-side check for a schedule row: the day
// must be a weekday name and every cell must be "off" or a parsable range.
func ValidateScheduleRow(row *domain.ScheduleRow) error {
	if !slices.Contains(shift.Weekdays, row.Day) {
		return fmt.Errorf("%q is not a weekday name", row.Day)
	}

	seen := make(map[string]bool)
	for _, e := range row.Shifts {
		if err := ValidateShiftEntry(e); err != nil {
			return err
		}
		if seen[e.Name] {
			return fmt.Errorf("%s appears more than once on %s", e.Name, row.Day)
		}
		seen[e.Name] = true
	}

	return nil
}

func ValidateShiftEntry(e domain.ShiftEntry) error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return fmt.Errorf("person name must not be empty")
	}
	if strings.EqualFold(name, "days") || strings.EqualFold(name, "id") {
		return fmt.Errorf("%q is a reserved column name", e.Name)
	}
	if err := shift.ValidateSpec(e.Shift); err != nil {
		return fmt.Errorf("shift for %s must be \"off\" or a range like \"9:00 am-5:00 pm\"", e.Name)
	}
	return nil
}

func ValidatePaymentStatus(status domain.PaymentStatus) error {
	switch status {
	case domain.PaymentPaid, domain.PaymentOutstanding:
		return nil
	default:
		return fmt.Errorf("unknown payment status %q", status)
	}
}
