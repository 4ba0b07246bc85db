// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-playground/validator/v10"
)

// ContactKeeperValidator implements [Validator] for every request model of
// the API. Rules are declared as `validate` struct tags on the models and
// evaluated with go-playground/validator.
type ContactKeeperValidator struct {
	validate *validator.Validate
}

// NewContactKeeperValidator constructs a validator whose error keys are the
// JSON field names of the validated models.
func NewContactKeeperValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &ContactKeeperValidator{validate: v}
}

// Validate checks obj against its struct tags.
//
// Supported types (value or pointer):
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.UpdateUserRequest
//   - models.Contact
//   - models.ContactSearch
//
// Optional pointer fields carry `omitnil`, so an absent field is skipped.
// On failure a *[ValidationError] listing every violated field is returned.
func (v *ContactKeeperValidator) Validate(ctx context.Context, obj any) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.Contact, *models.Contact,
		models.ContactSearch, *models.ContactSearch:
	default:
		return ErrUnsupportedType
	}

	return toValidationError(v.validate.StructCtx(ctx, obj))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating struct: %w", err)
	}

	vErr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := vErr.Fields[fe.Field()]; seen {
			continue
		}
		vErr.Fields[fe.Field()] = message(fe)
	}

	return vErr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("length must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("length must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// jsonFieldName reports a struct field by its JSON name so that errors line
// up with the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
