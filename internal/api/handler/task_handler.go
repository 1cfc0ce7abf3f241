package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/workboard/workspace/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. User identity
// travels as a userId query parameter or body field; there is no token layer
// in this contract.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /api/tasks?userId=<id>.
//
// @Summary      List the user's tasks
// @Tags         tasks
// @Produce      json
// @Param        userId  query     int  true  "Owner user ID"
// @Success      200     {object}  apiResponse
// @Failure      400     {object}  apiResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listEnvelope(tasks, len(tasks)))
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		UserID:  req.UserID,
		Title:   req.Title,
		DueDate: req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope(task, "Task created successfully"))
}

// Update handles PUT /api/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Partial task fields"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.UpdateTask(c.Request().Context(), ports.UpdateTaskInput{
		UserID:    req.UserID,
		TaskID:    taskID,
		Title:     req.Title,
		Completed: req.Completed,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(task, "Task updated successfully"))
}

// Delete handles DELETE /api/tasks/:id?userId=<id>. The deleted record is
// returned in the response body.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id      path      int  true  "Task ID"
// @Param        userId  query     int  true  "Owner user ID"
// @Success      200     {object}  apiResponse
// @Failure      404     {object}  apiResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.DeleteTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(task, "Task deleted successfully"))
}

// queryUserID extracts the required userId query parameter.
func queryUserID(c echo.Context) (int64, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "userId must be a positive integer")
	}
	return id, nil
}

// pathID extracts the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
