package navigation

// View represents the current view in the UI
type View int

const (
	ViewMonitoring View = iota
	ViewLogs
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewMonitoring:
		return "monitoring"
	case ViewLogs:
		return "logs"
	default:
		return "unknown"
	}
}
