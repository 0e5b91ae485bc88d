package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:        "0 B",
		1023:     "1023 B",
		1536:     "1.5 KiB",
		20 << 20: "20 MiB",
		5 << 30:  "5.0 GiB",
		-2048:    "-2.0 KiB",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatBytes(in), in)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: -5 * time.Second, want: "expired"},
		{in: 0, want: "0s"},
		{in: 1500 * time.Millisecond, want: "2s"},
		{in: 5*time.Minute + 10*time.Second, want: "5m10s"},
		{in: time.Hour - time.Second, want: "59m59s"},
		{in: 90*time.Minute + 59*time.Second, want: "1h30m"},
		{in: 2 * time.Hour, want: "2h0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), tt.in.String())
	}
}
