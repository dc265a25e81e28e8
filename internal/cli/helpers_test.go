package cli

import tea "github.com/charmbracelet/bubbletea"

// dragMsgs is a mouse drag from one row to another of an unscrolled list.
func dragMsgs(from, to int) []tea.Msg {
	const top = 3
	return []tea.Msg{
		tea.MouseMsg{X: 4, Y: top + from, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 4, Y: top + to, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 4, Y: top + to, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}
}
