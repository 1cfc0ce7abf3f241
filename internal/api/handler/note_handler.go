package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workboard/workspace/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. The routes mirror
// the task endpoints with {title, body, userId} payloads.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/notes?userId=<id>.
//
// @Summary      List the user's notes
// @Tags         notes
// @Produce      json
// @Param        userId  query     int  true  "Owner user ID"
// @Success      200     {object}  apiResponse
// @Failure      400     {object}  apiResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listEnvelope(notes, len(notes)))
}

// Create handles POST /api/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body      createNoteRequest  true  "Note details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.service.CreateNote(c.Request().Context(), ports.CreateNoteInput{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope(note, "Note created successfully"))
}

// Update handles PUT /api/notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Note ID"
// @Param        body  body      updateNoteRequest  true  "Partial note fields"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	noteID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.service.UpdateNote(c.Request().Context(), ports.UpdateNoteInput{
		UserID: req.UserID,
		NoteID: noteID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(note, "Note updated successfully"))
}

// Delete handles DELETE /api/notes/:id?userId=<id>.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Param        id      path      int  true  "Note ID"
// @Param        userId  query     int  true  "Owner user ID"
// @Success      200     {object}  apiResponse
// @Failure      404     {object}  apiResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	noteID, err := pathID(c)
	if err != nil {
		return err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	note, err := h.service.DeleteNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(note, "Note deleted successfully"))
}
