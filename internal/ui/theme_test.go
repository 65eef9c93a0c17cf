package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name   string
		want   Mode
		wantOK bool
	}{
		{"light", ModeLight, true},
		{"ansi", ModeANSI, true},
		{"dark", ModeDark, true},
		{" Dark ", ModeDark, true},
		{"solarized", ModeLight, false},
		{"", ModeLight, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, ok := ThemeByName(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, theme.Mode)
		})
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ModeDark, LightTheme().Toggle().Mode)
	assert.Equal(t, ModeLight, DarkTheme().Toggle().Mode)
	assert.Equal(t, LightTheme(), LightTheme().Toggle().Toggle())
	assert.Equal(t, ModeLight, ANSITheme().Toggle().Mode)
}

func TestThemesDiffer(t *testing.T) {
	light, dark := LightTheme(), DarkTheme()
	assert.NotEqual(t, light.Foreground, dark.Foreground)
	assert.NotEqual(t, light.TooltipBackground, dark.TooltipBackground)
	assert.Len(t, AllModes, 3)
}

func TestANSIThemeUsesBaseColors(t *testing.T) {
	theme := ANSITheme()
	assert.Equal(t, ColorSuccess, theme.Success)
	assert.Equal(t, ColorError, theme.Danger)
	assert.Equal(t, ColorWarning, theme.Warning)
	assert.Equal(t, ColorMuted, theme.Muted)
}

func TestStatusColor(t *testing.T) {
	theme := LightTheme()
	assert.Equal(t, theme.Success, theme.StatusColor(StatusSuccess))
	assert.Equal(t, theme.Warning, theme.StatusColor(StatusWarning))
	assert.Equal(t, theme.Danger, theme.StatusColor(StatusError))
	assert.Equal(t, theme.Border, theme.StatusColor(StatusDefault))
	assert.Equal(t, theme.Border, theme.StatusColor(""))
}

func TestFieldWidth(t *testing.T) {
	assert.Equal(t, 16, FieldWidth(SizeSmall))
	assert.Equal(t, 24, FieldWidth(SizeMedium))
	assert.Equal(t, 36, FieldWidth(SizeLarge))
	assert.Equal(t, 24, FieldWidth(""))
}

func TestFieldStyle(t *testing.T) {
	DisableColors()
	defer EnableColors()

	theme := LightTheme()
	out := theme.FieldStyle(SizeSmall, StatusDefault, false, false).Render("123-***")
	assert.Contains(t, out, "123-***")
	assert.Contains(t, out, "╭")
	assert.Equal(t, FieldWidth(SizeSmall)+2, maxLineWidth(out))
}

func TestHeader(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := RenderHeader(LightTheme(), HeaderInfo{Version: "v1.2.3", Tagline: "Component catalog", Detail: "theme: light"})
	assert.Contains(t, out, "uikit v1.2.3")
	assert.Contains(t, out, "Component catalog")
	assert.Contains(t, out, "theme: light")
	assert.Contains(t, out, "━━━━")

	bare := RenderHeader(LightTheme(), HeaderInfo{})
	assert.Contains(t, bare, "uikit\n")
}
