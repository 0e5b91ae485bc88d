package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"studyhub/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GeneratePNG("https://studyhub.example.edu/notes?dept=1&shared=abc")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "L")

		pngBytes, err := svc.GeneratePNG("https://studyhub.example.edu")
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
	}
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GeneratePNG("")

	assert.Error(t, err)
}

func TestQRCodeService_ContentTooLong(t *testing.T) {
	_, err := NewQRCodeService(256, "H").GeneratePNG(strings.Repeat("x", 5000))

	assert.Error(t, err)
}

func TestNew_DefaultsWithoutShareConfig(t *testing.T) {
	svc := New(&config.Config{})

	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, impl.size)
	assert.Equal(t, qrcode.Medium, impl.errorCorrectionLevel)
}
