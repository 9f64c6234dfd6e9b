package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	SwitchTab  key.Binding
	Help       key.Binding
	PrevParam  key.Binding
	NextParam  key.Binding
	StepUp     key.Binding
	StepDown   key.Binding
	Add        key.Binding
	Run        key.Binding
	ClearAll   key.Binding
	FocusList  key.Binding
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Mark       key.Binding
	DeleteMark key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "switch tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		PrevParam: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev parameter"),
		),
		NextParam: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next parameter"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "+0.1"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "-0.1"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to list"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "run analysis"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all list"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit row"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete row"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		DeleteMark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete marked"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "ctrl+l"),
			key.WithHelp("esc", "back to input"),
		),
	}
}

// inputKeys implements help.KeyMap for the input pane.
type inputKeys keyMap

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextParam, k.StepUp, k.Add, k.Run, k.FocusList, k.SwitchTab, k.Quit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevParam, k.NextParam, k.StepUp, k.StepDown},
		{k.Add, k.Run, k.ClearAll, k.FocusList},
		{k.SwitchTab, k.Help, k.Quit},
	}
}

// listKeys implements help.KeyMap for the row list.
type listKeys keyMap

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Mark, k.DeleteMark, k.Back}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Edit, k.Delete, k.Mark, k.DeleteMark},
		{k.Back, k.Run, k.ClearAll, k.Quit},
	}
}

// proposalKeys implements help.KeyMap for the proposal tab.
type proposalKeys keyMap

func (k proposalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Quit}
}

func (k proposalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.SwitchTab, k.Help, k.Quit}}
}
