package model

// TodoItem is the persisted todo record. Ids are assigned monotonically and
// never reused, even after deletion. Text is fixed at creation time.
type TodoItem struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func NewTodoItem(id uint64, text string) TodoItem {
	return TodoItem{ID: id, Text: text}
}

func (t *TodoItem) ToggleCompletion() {
	t.Completed = !t.Completed
}
