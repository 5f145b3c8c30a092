package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/model"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
	MinPasswordLength    = 6
	MaxEmailLength       = 255
)

// Client-facing validation messages.
const (
	MsgInvalidRegistration = "Invalid email or password (min 6 chars)"
	MsgPasswordTooLong     = "Password cannot exceed 72 bytes"
	MsgLoginFieldsRequired = "Email and password required"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgTitleStatusRequired = "Title and status are required"
	MsgTitleBlank          = "Title is required and cannot be empty"
	MsgTitleEmpty          = "Title cannot be empty"
	MsgTitleTooLong        = "Title cannot exceed 255 characters"
	MsgDescriptionTooLong  = "Description cannot exceed 1000 characters"
	MsgInvalidTodoID       = "Invalid todo ID"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MsgInvalidStatus names every accepted status.
var MsgInvalidStatus = func() string {
	names := make([]string, len(model.TodoStatuses))
	for i, s := range model.TodoStatuses {
		names[i] = string(s)
	}
	return "Invalid status. Must be one of: " + strings.Join(names, ", ")
}()

func validationError(message string) error {
	return common.NewError(common.ErrValidation, message)
}

func validEmail(email string) bool {
	return utf8.RuneCountInString(email) <= MaxEmailLength && emailPattern.MatchString(email)
}

// validPassword checks the minimum in characters; the bcrypt cap is in bytes.
func validPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

func checkTitle(title, blankMessage string) error {
	if strings.TrimSpace(title) == "" {
		return validationError(blankMessage)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return validationError(MsgTitleTooLong)
	}
	return nil
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return validationError(MsgDescriptionTooLong)
	}
	return nil
}

func checkStatus(status model.TodoStatus) error {
	if !status.IsValid() {
		return validationError(MsgInvalidStatus)
	}
	return nil
}

// ParseTodoID accepts only positive base-10 integers.
func ParseTodoID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validationError(MsgInvalidTodoID)
	}
	return id, nil
}
