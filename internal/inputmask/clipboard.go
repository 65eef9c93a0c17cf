package inputmask

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// pasteMsg carries clipboard text to the input that asked for it.
type pasteMsg struct {
	id   int
	text string
}

type pasteErrMsg struct {
	id  int
	err error
}

// readClipboard reads the system clipboard off the event loop.
func readClipboard(id int) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return pasteErrMsg{id: id, err: err}
		}
		return pasteMsg{id: id, text: text}
	}
}
