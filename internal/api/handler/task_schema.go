package handler

type createTaskRequest struct {
	Title   string `json:"title"   validate:"required"`
	UserID  int64  `json:"userId"  validate:"required"`
	DueDate string `json:"dueDate"`
}

// updateTaskRequest carries a partial update. Pointer fields distinguish
// "not sent" from zero values, so completed:false round-trips correctly.
type updateTaskRequest struct {
	UserID    int64   `json:"userId" validate:"required"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	DueDate   *string `json:"dueDate"`
}
