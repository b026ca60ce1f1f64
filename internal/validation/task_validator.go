package validation

import (
	"fmt"

	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// TaskValidator provides validation for task operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator with configured limits
func NewTaskValidatorWithConfig(cfg *config.ValidationConfig) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// StrictReorder reports whether ValidateOrderedIDs should be applied
func (tv *TaskValidator) StrictReorder() bool {
	return tv.validator.StrictReorder()
}

// ValidateText checks that text is non-blank and within the length limit
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(text)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("text")
		return validationError
	}

	maxLen := tv.validator.TextMaxLength()
	if !tv.validator.IsValidStringLength(trimmed, 1, maxLen) {
		validationError.AddInvalidLengthError("text", trimmed, 1, maxLen)
	}

	return validationError.OrNil()
}

// ValidatePriority checks an explicit priority value. Empty is rejected;
// callers that allow defaulting check for it first.
func (tv *TaskValidator) ValidatePriority(p domain.Priority) error {
	if p.IsValid() {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", string(p), "must be one of high, medium, low")
	return validationError
}

// ValidateCategory checks the category length
func (tv *TaskValidator) ValidateCategory(category string) error {
	maxLen := tv.validator.CategoryMaxLength()
	if tv.validator.IsValidStringLength(category, 0, maxLen) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidLengthError("category", category, 0, maxLen)
	return validationError
}

// ValidateDueDate checks a due date as written in a request. Empty means no
// due date.
func (tv *TaskValidator) ValidateDueDate(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := domain.ParseDate(raw); err == nil {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidFormatError("dueDate", raw, "YYYY-MM-DD")
	return validationError
}

// ValidateID checks that an id is positive
func (tv *TaskValidator) ValidateID(id int64) error {
	if tv.validator.IsValidID(id) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("id", id, "must be a positive integer")
	return validationError
}

// ValidateDraft validates a task for creation. An empty priority is allowed
// and later defaults to medium.
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateText(draft.Text))
	if draft.Priority != "" {
		validationError.Merge(tv.ValidatePriority(draft.Priority))
	}
	validationError.Merge(tv.ValidateCategory(draft.Category))

	return validationError.OrNil()
}

// ValidatePatch validates the set fields of an update
func (tv *TaskValidator) ValidatePatch(id int64, patch domain.TaskPatch) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateID(id))
	if text, ok := patch.Text.Get(); ok {
		validationError.Merge(tv.ValidateText(text))
	}
	if priority, ok := patch.Priority.Get(); ok {
		validationError.Merge(tv.ValidatePriority(priority))
	}
	if category, ok := patch.Category.Get(); ok {
		validationError.Merge(tv.ValidateCategory(category))
	}

	return validationError.OrNil()
}

// ValidateOrderedIDs checks that ids is a permutation of stored: every
// stored id appears exactly once and nothing else does.
func (tv *TaskValidator) ValidateOrderedIDs(ids, stored []int64) error {
	validationError := NewValidationError()

	known := make(map[int64]bool, len(stored))
	for _, id := range stored {
		known[id] = false
	}

	for _, id := range ids {
		seen, ok := known[id]
		switch {
		case !ok:
			validationError.AddInvalidValueError("orderedIds", id, fmt.Sprintf("unknown task id %d", id))
		case seen:
			validationError.AddInvalidValueError("orderedIds", id, fmt.Sprintf("duplicate task id %d", id))
		default:
			known[id] = true
		}
	}

	var missing int
	for _, seen := range known {
		if !seen {
			missing++
		}
	}
	if missing > 0 {
		validationError.AddInvalidValueError("orderedIds", missing, fmt.Sprintf("%d task id(s) missing", missing))
	}

	return validationError.OrNil()
}
