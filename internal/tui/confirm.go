package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Remove \"" + m.message + "\" from your shelf?\n\n" + helpStyle.Render("y yes │ n/esc no"))
}
