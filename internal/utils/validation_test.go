package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func TestValidateScheduleRow(t *testing.T) {
	tests := []struct {
		name    string
		row     domain.ScheduleRow
		wantErr bool
	}{
		{
			name: "valid row",
			row: domain.ScheduleRow{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Thomas", Shift: "9:00 am-5:00 pm"},
				{Name: "Nora", Shift: "off"},
				{Name: "Eric", Shift: "9-5 pm"},
			}},
		},
		{name: "empty row", row: domain.ScheduleRow{Day: "Sunday"}},
		{name: "lowercase day", row: domain.ScheduleRow{Day: "monday"}, wantErr: true},
		{name: "unknown day", row: domain.ScheduleRow{Day: "Funday"}, wantErr: true},
		{
			name: "malformed shift",
			row: domain.ScheduleRow{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Thomas", Shift: "9-"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate person",
			row: domain.ScheduleRow{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Thomas", Shift: "off"},
				{Name: "Thomas", Shift: "9 am-5 pm"},
			}},
			wantErr: true,
		},
		{
			name: "reserved name",
			row: domain.ScheduleRow{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Days", Shift: "off"},
			}},
			wantErr: true,
		},
		{
			name: "blank name",
			row: domain.ScheduleRow{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "  ", Shift: "off"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheduleRow(&tt.row)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePaymentStatus(t *testing.T) {
	assert.NoError(t, ValidatePaymentStatus(domain.PaymentPaid))
	assert.NoError(t, ValidatePaymentStatus(domain.PaymentOutstanding))
	assert.Error(t, ValidatePaymentStatus("paid"))
	assert.Error(t, ValidatePaymentStatus(""))
}
