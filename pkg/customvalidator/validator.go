package customvalidator

import (
	"net/http"
	"reflect"
	"regexp"

	"handover-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface and translates failures into user-facing HttpErrors.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Invalid request payload: "+err.Error(), err, nil)
	}
	return nil
}

func New() *CustomValidator {
	v := validator.New()

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("failed to register custom validation rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("serial", isSerialNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("return_condition", isReturnCondition); err != nil {
		return err
	}
	return nil
}

// Serial labels are uppercase alphanumeric runs with optional dashes,
// at least 4 characters, the same shape the OCR scanner extracts.
func isSerialNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[A-Z0-9][-A-Z0-9]{3,}$`)
	return re.MatchString(fl.Field().String())
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "available", "assigned", "maintenance", "rebut":
		return true
	}
	return false
}

func isReturnCondition(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ok", "maintenance", "rebut":
		return true
	}
	return false
}

// registerNullTypes teaches the validator to look inside null.String and
// friends so that omitempty works on nullable DTO fields.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok {
			if val.Valid {
				return val.String
			}
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok {
			if val.Valid {
				return val.Int
			}
		}
		return nil
	}, null.Int{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Time); ok {
			if val.Valid {
				return val.Time
			}
		}
		return nil
	}, null.Time{})
}
