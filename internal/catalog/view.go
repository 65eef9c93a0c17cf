package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/uikit/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := strings.TrimRight(ui.RenderHeader(m.theme, ui.HeaderInfo{
		Version: m.version,
		Tagline: "Component catalog",
		Detail:  "theme: " + string(m.theme.Mode),
	}), "\n")

	vp := m.viewport
	vp.SetContent(m.renderStory())

	left := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", vp.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help.View(m.helpKeys()))
}

func (m Model) helpKeys() help.KeyMap {
	if m.focus == paneList {
		return listHelp{k: m.keys}
	}
	var extra []key.Binding
	switch m.Current() {
	case StoryInputMask:
		extra = append([]key.Binding{m.keys.Next}, m.inputs[m.inputFocus].KeyMap().ShortHelp()...)
	case StoryButtons:
		extra = []key.Binding{m.keys.Toggle}
	case StoryCheckboxes:
		extra = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle}
	case StoryTooltip:
		extra = []key.Binding{m.keys.Toggle}
	default:
		extra = []key.Binding{m.keys.Up, m.keys.Down}
	}
	return storyHelp{k: m.keys, extra: extra}
}

func (m Model) renderStory() string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Foreground).Bold(true)
	if m.focus == paneStory {
		titleStyle = titleStyle.Foreground(m.theme.Primary).Underline(true)
	}
	title := titleStyle.Render(m.Current().String())

	var content string
	switch m.Current() {
	case StoryInputMask:
		content = m.renderInputs()
	case StoryButtons:
		content = m.renderButtons()
	case StoryAvatars:
		content = m.renderAvatars()
	case StoryCheckboxes:
		content = m.renderCheckboxes()
	case StoryTooltip:
		content = m.renderTooltip()
	}
	return title + "\n\n" + content
}

func (m Model) renderInputs() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	blocks := make([]string, 0, len(m.inputs)+2)
	for i, in := range m.inputs {
		block := in.View()
		if i == m.inputFocus && m.focus == paneStory {
			block += "\n" + ui.RenderFill(m.theme, len([]rune(in.RawValue())), in.Capacity(), 10)
		}
		blocks = append(blocks, block)
	}

	events := muted.Render("no changes yet")
	if len(m.events.lines) > 0 {
		events = muted.Render(strings.Join(m.events.lines, "\n"))
	}
	blocks = append(blocks, lipgloss.NewStyle().Foreground(m.theme.Foreground).Bold(true).Render("Events"), events)
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderButtons() string {
	row := func(buttons []ui.Button) string {
		parts := make([]string, 0, len(buttons)*2)
		for i, b := range buttons {
			if i > 0 {
				parts = append(parts, " ")
			}
			parts = append(parts, b.Render(m.theme))
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	var variants []ui.Button
	for _, v := range ui.AllButtonVariants {
		variants = append(variants, ui.Button{Label: string(v), Variant: v})
	}
	var rows []string
	for len(variants) > 0 {
		n := 4
		if len(variants) < n {
			n = len(variants)
		}
		rows = append(rows, row(variants[:n]))
		variants = variants[n:]
	}

	rows = append(rows,
		row([]ui.Button{
			{Label: "Small", Size: ui.ButtonSmall},
			{Label: "Medium", Size: ui.ButtonMedium},
			{Label: "Large", Size: ui.ButtonLarge},
		}),
		row([]ui.Button{
			{Label: "Round", Shape: ui.ShapeRound, Variant: ui.ButtonOutlined},
			{PrefixIcon: "+", Shape: ui.ShapeCircle},
			{Label: "Disabled", Disabled: true},
			{Label: "Busy", Loading: true},
		}),
	)

	presses := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("presses: %d", m.presses))
	rows = append(rows, m.button.View(m.theme)+"  "+presses)
	return strings.Join(rows, "\n\n")
}

func (m Model) renderAvatars() string {
	singles := []ui.Avatar{
		{Name: "Ada Lovelace", Status: ui.PresenceOnline},
		{Name: "Grace Hopper", Size: ui.AvatarLG, Status: ui.PresenceBusy},
		{Fallback: "?", Shape: ui.AvatarSquare, Status: ui.PresenceAway},
		{Size: ui.AvatarSM, Bordered: true, Status: ui.PresenceOffline},
	}
	parts := make([]string, 0, len(singles)*2)
	for i, a := range singles {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, a.Render(m.theme, ""))
	}

	group := ui.AvatarGroup{
		Avatars: []ui.Avatar{
			{Name: "Ada Lovelace"},
			{Name: "Alan Turing"},
			{Name: "Grace Hopper"},
			{Name: "Edsger Dijkstra"},
			{Name: "Barbara Liskov"},
			{Name: "Ken Thompson"},
		},
		Max:     3,
		Size:    ui.AvatarMD,
		Spacing: 1,
	}
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(group.OverflowLabel())

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...) + "\n\n" + group.Render(m.theme) + "\n" + label
}

func (m Model) renderCheckboxes() string {
	checked := len(m.checks.Value())
	enabled := 0
	for _, o := range m.checks.Options {
		if !o.Disabled {
			enabled++
		}
	}
	all := ui.NewControlledCheckbox("All toppings", checked >= enabled)
	all.Indeterminate = checked > 0 && checked < enabled

	cursor := -1
	if m.focus == paneStory {
		cursor = m.checkCursor
	}
	return all.Render(m.theme, false) + "\n\n" + m.checks.Render(m.theme, cursor)
}

func (m Model) renderTooltip() string {
	tip := ui.Tooltip{Content: "Copies the masked value", MaxWidth: 30}
	child := ui.Button{Label: "Copy", Variant: ui.ButtonOutlined}.Render(m.theme)
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("space shows the tooltip")
	return tip.Wrap(m.theme, child, m.tipVisible) + "\n\n" + hint
}
