package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldDecorateText(t *testing.T) {
	msg := DecorateText("generated", SuccessMessage)
	if !strings.HasPrefix(msg, SuccessColor) {
		t.Errorf("A success message should start with the success color code")
	}
	if !strings.HasSuffix(msg, DefaultColor) {
		t.Errorf("A decorated message should reset the color at the end")
	}

	msg = DecorateText("failed", ErrorMessage)
	if !strings.HasPrefix(msg, ErrorColor) {
		t.Errorf("An error message should start with the error color code")
	}

	msg = DecorateText("plain", MessageType(42))
	if msg != "plain" {
		t.Errorf("An unknown message type should be returned undecorated, got %q", msg)
	}
}

func TestUtils_ShouldFormatTime(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{time.Millisecond * 1500, "1.50s"},
		{time.Second * 59, "59.00s"},
		{time.Second * 90, "1m 30.00s"},
		{time.Hour*2 + time.Minute*3 + time.Second*4, "2h 3m 4.00s"},
		{time.Hour*26 + time.Minute*5, "1d 2h 5m 0.00s"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.d); got != tc.expected {
			t.Errorf("FormatTime(%v) expected to be %q. Got %q", tc.d, tc.expected, got)
		}
	}
}

func TestUtils_ShouldReturnMinMax(t *testing.T) {
	if got := Min(2, 7); got != 2 {
		t.Errorf("Min expected to return the smaller value. Got %v", got)
	}
	if got := Min(7.5, 2.5); got != 2.5 {
		t.Errorf("Min expected to return the smaller value. Got %v", got)
	}
	if got := Max(2, 7); got != 7 {
		t.Errorf("Max expected to return the bigger value. Got %v", got)
	}
	if got := Max("a", "b"); got != "b" {
		t.Errorf("Max expected to return the bigger value. Got %v", got)
	}
}

func TestUtils_ShouldReturnAbsoluteValue(t *testing.T) {
	if got := Abs(-4); got != 4 {
		t.Errorf("Abs expected to return the absolute value. Got %v", got)
	}
	if got := Abs(3.25); got != 3.25 {
		t.Errorf("Abs expected to return the absolute value. Got %v", got)
	}
}
