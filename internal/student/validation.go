package student

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MinAge              = 16
	MaxAge              = 60
	EnrollmentCodeLen   = 10
	RequiredClassPrefix = "Engenharia"
)

const (
	FieldAge            = "age"
	FieldEnrollmentCode = "enrollmentCode"
	FieldClassName      = "className"
)

var (
	ageRule            = fmt.Sprintf("gte=%d,lte=%d", MinAge, MaxAge)
	enrollmentCodeRule = fmt.Sprintf("len=%d,digits", EnrollmentCodeLen)
	classNameRule      = "startswith=" + RequiredClassPrefix
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "numeric" accepts signs and decimals, codes need plain ASCII digits
	if err := v.RegisterValidation("digits", asciiDigits); err != nil {
		panic(fmt.Sprintf("register digits validation: %v", err))
	}
	return v
}

func asciiDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func validateAge(age int) error {
	if err := validate.Var(age, ageRule); err != nil {
		return &ValidationError{
			Kind:    ErrInvalidAge,
			Field:   FieldAge,
			Value:   age,
			Message: fmt.Sprintf("age must be between %d and %d, got %d", MinAge, MaxAge, age),
			Err:     err,
		}
	}
	return nil
}

func validateEnrollmentCode(code string) error {
	if err := validate.Var(code, enrollmentCodeRule); err != nil {
		return &ValidationError{
			Kind:    ErrInvalidEnrollmentCode,
			Field:   FieldEnrollmentCode,
			Value:   code,
			Message: fmt.Sprintf("enrollment code must be exactly %d digits, got %q", EnrollmentCodeLen, code),
			Err:     err,
		}
	}
	return nil
}

func validateClassName(className string) error {
	if err := validate.Var(className, classNameRule); err != nil {
		return &ValidationError{
			Kind:    ErrInvalidClassName,
			Field:   FieldClassName,
			Value:   className,
			Message: fmt.Sprintf("class name must start with %q, got %q", RequiredClassPrefix, className),
			Err:     err,
		}
	}
	return nil
}
