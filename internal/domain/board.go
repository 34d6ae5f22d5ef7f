package domain

import "time"

// Board table names accepted by the generic save path. This allowlist is the
// only thing standing between a caller-supplied string and a SQL identifier,
// so membership is checked before any query is built.
const (
	TableVisionBoard   = "vision_board"
	TableWeeklyPlanner = "weekly_planner"
)

// AllowedBoardTable reports whether name may be used as a board table
// identifier.
func AllowedBoardTable(name string) bool {
	return name == TableVisionBoard || name == TableWeeklyPlanner
}

// TaskItem is a single entry in a card's task list.
type TaskItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// BoardCard holds the entire task list for one card of a themed board.
// The natural key is (user name, user email, theme, card id); the task list
// is stored as one JSONB blob and rewritten whole on every mutation.
type BoardCard struct {
	ID        int64
	UserName  string
	UserEmail string
	Theme     string
	CardID    string
	Tasks     []TaskItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
