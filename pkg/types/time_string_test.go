package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	earlier := TimeString("09:00")
	later := TimeString("17:30")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsAfter(earlier))
	assert.True(t, earlier.Equal("09:00"))
}

func TestTimeString_TotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").TotalMinutes())
	assert.Equal(t, 570, TimeString("09:30").TotalMinutes())
	assert.Equal(t, 1439, TimeString("23:59").TotalMinutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_MinutesBetween(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:00").MinutesBetween("11:30"))
	assert.Equal(t, -90, TimeString("11:30").MinutesBetween("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, TimeString("09:30"), ts)

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:00:59")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2022, 12, 16, 8, 30, 12, 0, time.UTC)))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)
}
