package todo

// ProjectStats summarizes a project for the analytics view.
type ProjectStats struct {
	TotalTasks     int   `json:"total_tasks"`
	CompletedTasks int   `json:"completed_tasks"`
	InProgress     int   `json:"in_progress"`
	Todo           int   `json:"todo"`
	TimeTracked    int64 `json:"time_tracked"`
	CompletionRate int   `json:"completion_rate"`
}

// Stats computes the status breakdown, total tracked seconds, and completion
// rate (percent, rounded down) for a project.
func Stats(p Project) ProjectStats {
	stats := ProjectStats{TotalTasks: len(p.Tasks)}
	for _, t := range p.Tasks {
		switch t.Status {
		case StatusDone:
			stats.CompletedTasks++
		case StatusInProgress:
			stats.InProgress++
		default:
			stats.Todo++
		}
		stats.TimeTracked += t.TimeTracked
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = stats.CompletedTasks * 100 / stats.TotalTasks
	}
	return stats
}
