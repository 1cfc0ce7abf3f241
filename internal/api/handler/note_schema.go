package handler

type createNoteRequest struct {
	Title  string `json:"title"  validate:"required"`
	Body   string `json:"body"`
	UserID int64  `json:"userId" validate:"required"`
}

type updateNoteRequest struct {
	UserID int64   `json:"userId" validate:"required"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}
