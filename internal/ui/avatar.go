package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// AvatarSize is the avatar scale. An empty size defers to the group, then md.
type AvatarSize string

const (
	AvatarXS AvatarSize = "xs"
	AvatarSM AvatarSize = "sm"
	AvatarMD AvatarSize = "md"
	AvatarLG AvatarSize = "lg"
	AvatarXL AvatarSize = "xl"
)

// AvatarShape is the outline of the avatar.
type AvatarShape string

const (
	AvatarRounded AvatarShape = "rounded"
	AvatarSquare  AvatarShape = "square"
)

// Presence is the status dot shown next to an avatar.
type Presence string

const (
	PresenceNone    Presence = ""
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
	PresenceBusy    Presence = "busy"
	PresenceAway    Presence = "away"
)

// Avatar shows a user's fallback text, initials, or icon, in that order.
type Avatar struct {
	Name     string
	Fallback string
	Icon     string
	Size     AvatarSize
	Shape    AvatarShape
	Status   Presence
	Bordered bool
}

// Initials returns the uppercased first letters of up to two words.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}

// Content returns the text shown inside the avatar.
func (a Avatar) Content() string {
	if a.Fallback != "" {
		return a.Fallback
	}
	if initials := Initials(a.Name); initials != "" {
		return initials
	}
	if a.Icon != "" {
		return a.Icon
	}
	return SymbolUser
}

// Label is the accessible name of the avatar: the person's name if known.
func (a Avatar) Label() string {
	return strings.TrimSpace(a.Name)
}

// Render draws the avatar. groupSize applies when the avatar has no size
// of its own; pass "" outside of a group.
func (a Avatar) Render(t Theme, groupSize AvatarSize) string {
	size := a.Size
	if size == "" {
		size = groupSize
	}
	if size == "" {
		size = AvatarMD
	}

	border := lipgloss.RoundedBorder()
	if a.Shape == AvatarSquare {
		border = lipgloss.NormalBorder()
	}
	borderColor := t.Border
	if a.Bordered {
		border = lipgloss.ThickBorder()
		borderColor = t.Foreground
	}

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Background(t.Surface).
		Foreground(t.Muted).
		Bold(true).
		Width(avatarWidth(size)).
		Align(lipgloss.Center)

	content := a.Content()
	if a.Status != PresenceNone {
		dot := lipgloss.NewStyle().
			Foreground(t.PresenceColor(a.Status)).
			Background(t.Surface).
			Render(SymbolStatusDot)
		content = content + dot
	}
	return style.Render(content)
}

func avatarWidth(s AvatarSize) int {
	switch s {
	case AvatarXS:
		return 3
	case AvatarSM:
		return 4
	case AvatarLG:
		return 7
	case AvatarXL:
		return 9
	default:
		return 5
	}
}

// PresenceColor maps a presence status to its dot color.
func (t Theme) PresenceColor(p Presence) lipgloss.Color {
	switch p {
	case PresenceOnline:
		return t.Success
	case PresenceBusy:
		return t.Danger
	case PresenceAway:
		return t.Warning
	default:
		return t.Muted
	}
}

// AvatarGroup lays avatars out in a row, collapsing extras into "+N".
type AvatarGroup struct {
	Avatars []Avatar
	Max     int        // Zero shows every avatar
	Size    AvatarSize // Applied to avatars without a size
	Spacing int        // Blank cells between avatars
}

// Visible returns the avatars that are drawn and how many are hidden.
func (g AvatarGroup) Visible() ([]Avatar, int) {
	if g.Max > 0 && g.Max < len(g.Avatars) {
		return g.Avatars[:g.Max], len(g.Avatars) - g.Max
	}
	return g.Avatars, 0
}

// Overflow returns the "+N" avatar for hidden members, or false if none.
func (g AvatarGroup) Overflow() (Avatar, bool) {
	_, hidden := g.Visible()
	if hidden == 0 {
		return Avatar{}, false
	}
	return Avatar{Fallback: fmt.Sprintf("+%d", hidden), Size: g.Size}, true
}

// OverflowLabel is the accessible text for the overflow avatar.
func (g AvatarGroup) OverflowLabel() string {
	_, hidden := g.Visible()
	if hidden == 0 {
		return ""
	}
	return fmt.Sprintf("%d more users", hidden)
}

// Render draws the group.
func (g AvatarGroup) Render(t Theme) string {
	visible, _ := g.Visible()

	cells := make([]string, 0, len(visible)*2+1)
	gap := strings.Repeat(" ", g.Spacing)
	add := func(s string) {
		if len(cells) > 0 && g.Spacing > 0 {
			cells = append(cells, gap)
		}
		cells = append(cells, s)
	}

	for _, a := range visible {
		add(a.Render(t, g.Size))
	}
	if more, ok := g.Overflow(); ok {
		add(more.Render(t, g.Size))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}
