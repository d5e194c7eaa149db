package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	day := monday(0, 0, 0)

	tests := []struct {
		spec      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"9:00 am-5:00 pm", monday(9, 0, 0), monday(17, 0, 0)},
		{"9:00 am-5:30 pm", monday(9, 0, 0), monday(17, 30, 0)},
		{"9 AM - 5 PM", monday(9, 0, 0), monday(17, 0, 0)},
		{"9am-5pm", monday(9, 0, 0), monday(17, 0, 0)},
		{"12 am-12 pm", monday(0, 0, 0), monday(12, 0, 0)},
		{"11:30 am-8 pm", monday(11, 30, 0), monday(20, 0, 0)},
		// a lone marker is shared by both bounds
		{"9-5 pm", monday(21, 0, 0), monday(17, 0, 0)},
		{"8-11 am", monday(8, 0, 0), monday(11, 0, 0)},
		{"1 pm-5", monday(13, 0, 0), monday(17, 0, 0)},
		// no marker at all: hours are taken as they are
		{"9:00-17:30", monday(9, 0, 0), monday(17, 30, 0)},
		{"13 pm-14 pm", monday(13, 0, 0), monday(14, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			w, err := ParseWindow(tt.spec, day)
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(w.Start), "start %s", w.Start)
			assert.True(t, tt.wantEnd.Equal(w.End), "end %s", w.End)
		})
	}
}

func TestParseWindow_Malformed(t *testing.T) {
	for _, spec := range []string{
		"",
		"off",
		"garbled",
		"9-",
		"-5 pm",
		"9 am 5 pm",
		"9-12-3",
		"24-25",
		"9:60 am-5 pm",
		"nine-five",
		"9 xm-5 pm",
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseWindow(spec, monday(0, 0, 0))
			assert.ErrorIs(t, err, ErrMalformedShift)
		})
	}
}

func TestParseWindow_AnchorsOnTheGivenDate(t *testing.T) {
	day := time.Date(2024, time.March, 10, 15, 4, 5, 0, Pacific()) // DST starts at 02:00

	w, err := ParseWindow("9:00 am-5:00 pm", day)
	require.NoError(t, err)

	assert.Equal(t, Pacific(), w.Start.Location())
	assert.Equal(t, time.Date(2024, time.March, 10, 9, 0, 0, 0, Pacific()), w.Start)
	assert.Equal(t, time.Date(2024, time.March, 10, 17, 0, 0, 0, Pacific()), w.End)
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: monday(9, 0, 0), End: monday(17, 0, 0)}

	assert.True(t, w.Contains(monday(9, 0, 0)))
	assert.True(t, w.Contains(monday(17, 0, 0)))
	assert.False(t, w.Contains(monday(17, 0, 0).Add(time.Nanosecond)))
	assert.False(t, w.Contains(monday(8, 59, 59)))

	inverted := Window{Start: monday(21, 0, 0), End: monday(17, 0, 0)}
	assert.False(t, inverted.Contains(monday(19, 0, 0)))
	assert.False(t, inverted.Contains(monday(22, 0, 0)))
}

func TestIsOff(t *testing.T) {
	assert.True(t, IsOff("off"))
	assert.True(t, IsOff("Off"))
	assert.True(t, IsOff(" OFF "))
	assert.False(t, IsOff("office"))
	assert.False(t, IsOff(""))
}

func TestValidateSpec(t *testing.T) {
	assert.NoError(t, ValidateSpec("off"))
	assert.NoError(t, ValidateSpec("9:00 am-5:00 pm"))
	assert.NoError(t, ValidateSpec("9-5 pm"))
	assert.ErrorIs(t, ValidateSpec("9-"), ErrMalformedShift)
	assert.ErrorIs(t, ValidateSpec(""), ErrMalformedShift)
}
