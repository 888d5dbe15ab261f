package date

import (
	"testing"
	"time"
)

func TestMonth_Days(t *testing.T) {
	testCases := []struct {
		month Month
		want  int
	}{
		{NewMonth(2023, time.February), 28},
		{NewMonth(2024, time.February), 29},
		{NewMonth(2025, time.April), 30},
		{NewMonth(2025, time.January), 31},
		{NewMonth(2000, time.February), 29}, // centennial leap year
		{NewMonth(1900, time.February), 28}, // centennial non-leap year
	}
	for _, tc := range testCases {
		if got := tc.month.Days(); got != tc.want {
			t.Errorf("%v.Days() = %d, want %d", tc.month, got, tc.want)
		}
	}
}

func TestMonth_Date_Clamps(t *testing.T) {
	testCases := []struct {
		month Month
		day   int
		want  Date
	}{
		{NewMonth(2025, time.April), 31, New(2025, time.April, 30)},
		{NewMonth(2023, time.February), 31, New(2023, time.February, 28)},
		{NewMonth(2024, time.February), 31, New(2024, time.February, 29)},
		{NewMonth(2025, time.January), 31, New(2025, time.January, 31)},
		{NewMonth(2025, time.June), 15, New(2025, time.June, 15)},
		{NewMonth(2025, time.June), 0, New(2025, time.June, 1)},
	}
	for _, tc := range testCases {
		if got := tc.month.Date(tc.day); got != tc.want {
			t.Errorf("%v.Date(%d) = %v, want %v", tc.month, tc.day, got, tc.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-08")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m != NewMonth(2025, time.August) {
		t.Errorf("ParseMonth = %v", m)
	}
	if m.String() != "2025-08" {
		t.Errorf("String = %q", m.String())
	}
	if _, err := ParseMonth("2025-8-1"); err == nil {
		t.Error("ParseMonth accepted a full date")
	}
}

func TestMonth_Contains(t *testing.T) {
	m := NewMonth(2025, time.August)
	if !m.Contains(MustParse("2025-08-31")) {
		t.Error("2025-08-31 should be in 2025-08")
	}
	if m.Contains(MustParse("2025-09-01")) {
		t.Error("2025-09-01 should not be in 2025-08")
	}
}
