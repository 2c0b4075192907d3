package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView   key.Binding
	PrevView   key.Binding
	Playground key.Binding
	Dashboard  key.Binding
	Compare    key.Binding
	Left       key.Binding
	Right      key.Binding
	Run        key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Playground: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "playground")),
		Dashboard:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "dashboard")),
		Compare:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "compare")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev model")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next model")),
		Run:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run simulation")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll log")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll log")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Run, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.Playground, k.Dashboard, k.Compare},
		{k.Left, k.Right, k.Run},
		{k.ScrollUp, k.ScrollDown},
		{k.Theme, k.Help, k.Quit},
	}
}
