// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	return ValidateStruct(cfg)
}

// ValidateStruct validates any tagged struct (configs and function events).
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// RequireTmpLogsBucket returns an error when the temporary logs bucket is unset.
func (c *Config) RequireTmpLogsBucket() error {
	if c.TmpLogsBucket == "" {
		return errors.New("tmp_logs_bucket_name: required (set TMP_LOGS_BUCKET_NAME)")
	}
	return nil
}

// RequireOrgID returns an error when the organization id is unset.
func (c *Config) RequireOrgID() error {
	if c.OrgID == "" {
		return errors.New("org_id: required (set ORG_ID)")
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return fmt.Errorf("validation error: %w", err)
}
