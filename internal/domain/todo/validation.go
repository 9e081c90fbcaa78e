package todo

import "strings"

// ValidateTask checks the structural invariants of a task: a status from the
// closed set and no self-dependency. Dependency cycles across tasks are not
// detected.
func ValidateTask(t Task) error {
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			return ErrSelfDependency
		}
	}
	return nil
}

// ResolveDependencies maps a comma-separated list of task titles or ids to the
// ids of matching tasks in the project. Entries matching nothing are dropped.
func ResolveDependencies(p Project, list string) []string {
	var ids []string
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		for _, t := range p.Tasks {
			if t.ID == entry || strings.EqualFold(t.Title, entry) {
				ids = append(ids, t.ID)
				break
			}
		}
	}
	return ids
}
