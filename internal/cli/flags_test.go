package cli

import (
	"testing"

	"github.com/rileyhilliard/uikit/internal/config"
	"github.com/rileyhilliard/uikit/internal/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFormatFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "format"}
	var flags FormatFlags
	AddFormatFlags(cmd, &flags)

	require.NoError(t, cmd.ParseFlags([]string{"--raw", "--placeholder", "_", "--check", "--json"}))

	assert.True(t, flags.Raw)
	assert.Equal(t, "_", flags.Placeholder)
	assert.True(t, flags.Check)
	assert.True(t, flags.JSON)
}

func TestAddInputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "input"}
	var flags InputFlags
	AddInputFlags(cmd, &flags)

	require.NoError(t, cmd.ParseFlags([]string{"--masked", "--required", "--label", "Phone"}))

	assert.True(t, flags.Masked)
	assert.True(t, flags.Required)
	assert.Equal(t, "Phone", flags.Label)
	assert.Empty(t, flags.Placeholder)
}

func TestResolvePlaceholder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputMask.Placeholder = "#"

	tests := []struct {
		name    string
		flag    string
		want    rune
		wantErr bool
	}{
		{name: "falls back to config", flag: "", want: '#'},
		{name: "flag wins", flag: "_", want: '_'},
		{name: "multi-byte rune", flag: "•", want: '•'},
		{name: "digit rejected", flag: "0", wantErr: true},
		{name: "two characters rejected", flag: "__", wantErr: true},
		{name: "space rejected", flag: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePlaceholder(tt.flag, cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
