package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultPlatformVersion is filled in when the version field is absent
const DefaultPlatformVersion = "1.0.0"

var validate = validator.New()

// PlatformRequest is the typed body of POST /platform. By the time a handler
// sees one, absent optional fields have been filled with their defaults.
type PlatformRequest struct {
	Name        string `json:"name" validate:"required"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// platformPayload mirrors the wire shape. Pointer fields distinguish an
// absent field from an explicit empty string, so defaults apply only to
// omitted fields.
type platformPayload struct {
	Name        string  `json:"name"`
	Version     *string `json:"version"`
	Description *string `json:"description"`
}

// DecodePlatformRequest parses and validates a raw JSON body into a
// PlatformRequest with defaults applied. Any error it returns is a
// validation failure: missing body, malformed JSON, or a constraint
// violation.
func DecodePlatformRequest(raw []byte) (*PlatformRequest, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("request body is required")
	}

	var payload platformPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	req := &PlatformRequest{
		Name:        payload.Name,
		Version:     DefaultPlatformVersion,
		Description: "",
	}
	if payload.Version != nil {
		req.Version = *payload.Version
	}
	if payload.Description != nil {
		req.Description = *payload.Description
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ValidationDetails flattens a decode error into field-level messages
// suitable for a 422 response body.
func ValidationDetails(err error) []string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		return details
	}
	return []string{err.Error()}
}
