package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
)

// SuccessBody is the uniform success envelope. Data is always serialized,
// even when nil.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Success writes the success envelope.
func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, SuccessBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error maps a service error to the failure envelope. Typed errors pass
// through with their own status and message; anything else is logged and
// masked as a 500.
func Error(c *gin.Context, err error) {
	status := apierrors.Status(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
		message = "Server error"
	}
	c.JSON(status, ErrorBody{Success: false, Error: message})
}

// BindError writes a 400 for a request-binding failure, concatenating
// per-field messages as "field: message, field: message".
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorBody{Success: false, Error: bindMessage(err)})
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fieldMessage(fe)))
		}
		return strings.Join(parts, ", ")
	}

	var ute *json.UnmarshalTypeError
	if stderrors.As(err, &ute) && ute.Field != "" {
		typ := ute.Type.String()
		if typ == "bool" {
			typ = "boolean"
		}
		return fmt.Sprintf("%s: %s must be a %s", ute.Field, title(ute.Field), typ)
	}

	return "Invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if field == "Email" {
			return "Please include a valid email"
		}
		return field + " is required"
	case "email":
		return "Please include a valid email"
	default:
		return field + " is invalid"
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
