package catalog

import "github.com/charmbracelet/bubbles/list"

// StoryID identifies a catalog page.
type StoryID int

const (
	StoryInputMask StoryID = iota
	StoryButtons
	StoryAvatars
	StoryCheckboxes
	StoryTooltip
)

// String returns the story title.
func (s StoryID) String() string {
	switch s {
	case StoryInputMask:
		return "Input mask"
	case StoryButtons:
		return "Buttons"
	case StoryAvatars:
		return "Avatars"
	case StoryCheckboxes:
		return "Checkboxes"
	case StoryTooltip:
		return "Tooltip"
	default:
		return "Unknown"
	}
}

// story implements list.DefaultItem for the story list.
type story struct {
	id   StoryID
	desc string
}

func (s story) Title() string       { return s.id.String() }
func (s story) Description() string { return s.desc }
func (s story) FilterValue() string { return s.id.String() }

// Stories returns the catalog pages in display order.
func Stories() []list.Item {
	return []list.Item{
		story{StoryInputMask, "Digits through a fixed mask"},
		story{StoryButtons, "Variants, sizes, loading"},
		story{StoryAvatars, "Initials, presence, groups"},
		story{StoryCheckboxes, "Single and grouped"},
		story{StoryTooltip, "Hints above elements"},
	}
}
