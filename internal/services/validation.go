package services

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return models.Level(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("pos", func(fl validator.FieldLevel) bool {
		return models.PartOfSpeech(fl.Field().String()).Valid()
	})
	return v
}

// validateInput checks the struct tags of in and converts failures into a
// single VALIDATION_ERROR.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewInternalError(err)
	}
	reasons := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		reasons[fe.Field()] = reason(fe)
	}
	return errors.NewValidationErrors(reasons)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "level":
		return "must be a level from A1 to C2"
	case "pos":
		return "unknown part of speech"
	case "datetime":
		return "must be a date formatted YYYY-MM-DD"
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
