package navigation

// Navigator provides view switching functionality
type Navigator interface {
	// CurrentView returns the active view
	CurrentView() View
	// SwitchTo changes to the specified view and reports whether it changed
	SwitchTo(view View) bool
	// Toggle switches between the monitoring and logs views
	Toggle() View
}

type navigator struct {
	current View
}

// NewNavigator creates a new navigator starting with the monitoring view
func NewNavigator() Navigator {
	return &navigator{
		current: ViewMonitoring,
	}
}

func (n *navigator) CurrentView() View {
	return n.current
}

func (n *navigator) SwitchTo(view View) bool {
	if n.current == view {
		return false
	}

	n.current = view

	return true
}

func (n *navigator) Toggle() View {
	if n.current == ViewMonitoring {
		n.current = ViewLogs
	} else {
		n.current = ViewMonitoring
	}

	return n.current
}
