package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

type handlers struct {
	service services.TaskService
	logger  *log.Logger
}

type successResponse struct {
	Success bool `json:"success"`
}

type reorderRequest struct {
	OrderedIDs *[]int64 `json:"orderedIds"`
}

func (h *handlers) listTasks(c echo.Context) error {
	tasks, err := h.service.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *handlers) createTask(c echo.Context) error {
	var draft domain.TaskDraft
	if err := decodeBody(c, &draft); err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), draft)
	if err != nil {
		return err
	}

	h.logger.WithFields(log.Fields{
		"task_id":    task.ID,
		"request_id": requestID(c),
	}).Debug("task created")
	return c.JSON(http.StatusCreated, task)
}

func (h *handlers) updateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.TaskPatch
	if err := decodeBody(c, &patch); err != nil {
		return err
	}

	task, err := h.service.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *handlers) deleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *handlers) reorderTasks(c echo.Context) error {
	var req reorderRequest
	if err := decodeBody(c, &req); err != nil || req.OrderedIDs == nil {
		return errors.NewValidationError("orderedIds array is required", err)
	}

	if err := h.service.ReorderTasks(c.Request().Context(), *req.OrderedIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func healthz(store HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// decodeBody decodes a JSON request body into v. An empty body decodes as
// an empty object. Body size is bounded by the BodyLimit middleware.
func decodeBody(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if stderrors.As(err, &httpErr) {
			return httpErr
		}
		return errors.NewInvalidInputError("body", nil, "unreadable request body")
	}
	if len(body) == 0 {
		return nil
	}
	if err := sonic.ConfigStd.Unmarshal(body, v); err != nil {
		if dateErr := dueDateError(body); dateErr != nil {
			return dateErr
		}
		appErr := errors.NewInvalidInputError("body", nil, "malformed JSON")
		appErr.Cause = err
		return appErr
	}
	return nil
}

// dueDateError reports a dueDate string that is not a calendar date. It
// returns nil when the body is unusable for any other reason.
func dueDateError(body []byte) error {
	var fields struct {
		DueDate *string `json:"dueDate"`
	}
	if err := sonic.ConfigStd.Unmarshal(body, &fields); err != nil || fields.DueDate == nil {
		return nil
	}
	err := validation.NewTaskValidator().ValidateDueDate(*fields.DueDate)
	if ve, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return nil
}

func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", raw, "must be a positive integer")
	}
	return id, nil
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
