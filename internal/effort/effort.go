// Package effort holds the effort scale and the open-work aggregation used by
// the project board.
package effort

import (
	"errors"

	"github.com/yukikurage/taskboard-api/internal/models"
)

// Scale lists the allowed effort values in ascending order.
var Scale = []int{1, 2, 3, 5, 8, 13}

var ErrSubtaskInput = errors.New("effort sums accept top-level tasks only")

// Item is anything carrying a status and an optional effort.
type Item interface {
	EffortStatus() models.TaskStatus
	EffortValue() *int
}

// Valid reports whether v is on the scale.
func Valid(v int) bool {
	for _, s := range Scale {
		if s == v {
			return true
		}
	}
	return false
}

// Sum adds the effort of every OPEN item that has an effort. Unscored and
// completed items contribute nothing. Callers pass top-level tasks only.
func Sum[T Item](items []T) int {
	total := 0
	for _, it := range items {
		if it.EffortStatus() != models.TaskStatusOpen {
			continue
		}
		if v := it.EffortValue(); v != nil {
			total += *v
		}
	}
	return total
}

// SumTasks is Sum over persisted tasks, rejecting input that contains subtasks.
func SumTasks(tasks []models.Task) (int, error) {
	for i := range tasks {
		if !tasks[i].IsTopLevel() {
			return 0, ErrSubtaskInput
		}
	}
	return Sum(tasks), nil
}
