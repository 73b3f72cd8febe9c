package usecase

import (
	"errors"
	"fmt"
	"sync"

	"insight-agent/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest checks the field constraints declared on the request.
// String lengths are measured in code points.
func ValidateRequest(req entity.AnalysisRequest) error {
	err := requestValidator().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", entity.ErrInvalidRequest, err)
	}

	fields := make([]entity.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, entity.FieldError{
			Field: jsonFieldName(fe.Field()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return &entity.ValidationError{Fields: fields}
}

func jsonFieldName(field string) string {
	switch field {
	case "Text":
		return "text"
	default:
		return field
	}
}
