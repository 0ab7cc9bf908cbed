package date

import (
	"testing"
	"time"

	"github.com/sobadon/dateext/internal/timeutil"
)

func TestNewFromToday(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{
			name:  "時刻は切り捨てられる",
			today: time.Date(2022, 8, 23, 21, 30, 15, 500, timeutil.LocationJST()),
			want:  time.Date(2022, 8, 23, 0, 0, 0, 0, timeutil.LocationJST()),
		},
		{
			name:  "0 時ちょうどはそのまま",
			today: time.Date(2022, 8, 23, 0, 0, 0, 0, timeutil.LocationJST()),
			want:  time.Date(2022, 8, 23, 0, 0, 0, 0, timeutil.LocationJST()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := time.Time(NewFromToday(tt.today)); !got.Equal(tt.want) {
				t.Errorf("NewFromToday() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFirstOfMonth(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{
			name:  "月の途中",
			today: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "うるう年の 2 月末",
			today: time.Date(2024, 2, 29, 12, 0, 0, 0, timeutil.LocationJST()),
			want:  time.Date(2024, 2, 1, 0, 0, 0, 0, timeutil.LocationJST()),
		},
		{
			name:  "1 日は同じ日の 0 時",
			today: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := time.Time(NewFirstOfMonth(tt.today)); !got.Equal(tt.want) {
				t.Errorf("NewFirstOfMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got := NewFromToday(time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)).String(); got != "2024-01-05" {
		t.Errorf("String() = %v, want 2024-01-05", got)
	}
}

func TestDate_Instant(t *testing.T) {
	got := NewFromToday(time.Date(2024, 1, 5, 8, 3, 9, 0, timeutil.LocationJST())).Instant()
	if got.FormatDateTime() != "2024-01-05 00:00:00" {
		t.Errorf("Instant() = %v", got)
	}
	if got.Location().String() != "Asia/Tokyo" {
		t.Errorf("Location() = %v, want Asia/Tokyo", got.Location())
	}
}
