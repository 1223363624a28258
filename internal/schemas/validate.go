package schemas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrNameRequired = errors.New("Name is required")

// Field names that read badly in messages.
var fieldLabels = map[string]string{
	"DeadlineAt":   "Deadline",
	"TagIDs":       "Tags",
	"ProjectID":    "Project",
	"SectionID":    "Section",
	"ParentTaskID": "Parent task",
	"WorkspaceID":  "Workspace",
	"IDToken":      "ID token",
}

type checker interface {
	check() error
}

// Validate runs the binding rules and payload-level checks on v.
func Validate(v any) error {
	if err := binding.Validator.ValidateStruct(v); err != nil {
		return err
	}
	if c, ok := v.(checker); ok {
		return c.check()
	}
	return nil
}

// Bind decodes the JSON body into v and validates it.
func Bind(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return err
	}
	if ch, ok := v.(checker); ok {
		return ch.check()
	}
	return nil
}

// Message renders the first violation in err for a client.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		if errors.Is(err, ErrNameRequired) {
			return ErrNameRequired.Error()
		}
		return "Invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	if label, ok := fieldLabels[field]; ok {
		field = label
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Param() == "1" {
			return field + " is required"
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "hexcolor":
		return field + " must be a hex color"
	default:
		return field + " is invalid"
	}
}

// IsValidation reports whether err came from payload validation rather
// than from decoding or storage.
func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs) || errors.Is(err, ErrNameRequired)
}
