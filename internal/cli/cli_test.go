package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/config"
	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/espmemmap/internal/render"
	"github.com/retroenv/retrogolib/assert"
)

func clearEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvChip, "")
	t.Setenv(config.EnvFlash, "")
	t.Setenv(config.EnvWidth, "")
}

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

//nolint:funlen // test functions can be long
func TestParseFlags_LayoutOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Layout
	}{
		{
			name: "chip only",
			args: []string{"prog", "-c", "esp32c3", "app.elf"},
			want: options.Layout{Chip: chip.ESP32C3, Width: render.DefaultWidth},
		},
		{
			name: "chip with dash and flash size",
			args: []string{"prog", "-c", "ESP32-S3", "-f", "16MB", "app.elf"},
			want: options.Layout{Chip: chip.ESP32S3, Flash: chip.Flash16MB, Width: render.DefaultWidth},
		},
		{
			name: "width",
			args: []string{"prog", "-c", "esp32", "-w", "80", "app.elf"},
			want: options.Layout{Chip: chip.ESP32, Width: 80},
		},
		{
			name: "output flags",
			args: []string{"prog", "-c", "esp8266", "-f", "1M", "-summary", "-unmapped", "app.elf"},
			want: options.Layout{Chip: chip.ESP8266, Flash: chip.Flash1MB, Width: render.DefaultWidth,
				Summary: true, Unmapped: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvironment(t)
			setArgs(t, tt.args...)

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "app.elf", opts.Input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Environment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(config.EnvChip, "esp32h2")
	t.Setenv(config.EnvFlash, "2MB")
	t.Setenv(config.EnvWidth, "60")

	t.Run("defaults from environment", func(t *testing.T) {
		setArgs(t, "prog", "app.elf")

		_, got, err := ParseFlags()
		assert.NoError(t, err)
		assert.Equal(t, chip.ESP32H2, got.Chip)
		assert.Equal(t, chip.Flash2MB, got.Flash)
		assert.Equal(t, 60, got.Width)
	})

	t.Run("flags override environment", func(t *testing.T) {
		setArgs(t, "prog", "-c", "esp32c6", "-w", "100", "app.elf")

		_, got, err := ParseFlags()
		assert.NoError(t, err)
		assert.Equal(t, chip.ESP32C6, got.Chip)
		assert.Equal(t, 100, got.Width)
	})
}

func TestParseFlags_Errors(t *testing.T) {
	t.Run("no input file", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "-c", "esp32")

		_, _, err := ParseFlags()
		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})

	t.Run("no chip", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "app.elf")

		_, _, err := ParseFlags()
		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
		assert.ErrorContains(t, err, "no chip selected")
	})

	t.Run("unsupported chip", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "-c", "stm32f4", "app.elf")

		_, _, err := ParseFlags()
		assert.True(t, errors.Is(err, chip.ErrUnsupportedChip))
	})

	t.Run("invalid flash size", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "-c", "esp32", "-f", "3MB", "app.elf")

		_, _, err := ParseFlags()
		assert.True(t, errors.Is(err, chip.ErrInvalidFlashSize))
	})

	t.Run("invalid width", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "-c", "esp32", "-w", "0", "app.elf")

		_, _, err := ParseFlags()
		assert.ErrorContains(t, err, "invalid bar width")
	})

	t.Run("flag after input file", func(t *testing.T) {
		clearEnvironment(t)
		setArgs(t, "prog", "-c", "esp32", "app.elf", "-summary")

		_, _, err := ParseFlags()
		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})
}

func TestParseFlags_Batch(t *testing.T) {
	clearEnvironment(t)
	setArgs(t, "prog", "-c", "esp32", "-batch", "build/*.elf")

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "build/*.elf", opts.Batch)
	assert.Equal(t, "", opts.Input)
}
