package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/weatherrecap/weatherrecap/internal/constants"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Decode reads a JSON body into v. An empty body leaves v zeroed so the
// service layer reports the missing fields.
func Decode(w http.ResponseWriter, r *http.Request, v any) []ValidationError {
	body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return []ValidationError{{Field: typeErr.Field, Message: "must be " + typeErr.Type.String()}}
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return []ValidationError{{Field: "body", Message: "too large"}}
		}
		return []ValidationError{{Field: "body", Message: "invalid JSON: " + err.Error()}}
	}
	return nil
}

func validateDuration(duration *float64) []ValidationError {
	var errs []ValidationError
	if duration != nil && *duration < 0 {
		errs = append(errs, ValidationError{Field: "duration", Message: "must not be negative"})
	}
	return errs
}

func validateFilePath(path *string) []ValidationError {
	var errs []ValidationError
	if path != nil && *path != "" {
		if strings.HasPrefix(*path, "/") || strings.Contains(*path, "..") {
			errs = append(errs, ValidationError{Field: "file_path", Message: "must be relative to the render output"})
		}
	}
	return errs
}

func validateFormat(format *string) []ValidationError {
	var errs []ValidationError
	if format != nil && *format != "" {
		validFormats := map[string]bool{"mp4": true, "webm": true, "mov": true, "gif": true}
		if !validFormats[strings.ToLower(*format)] {
			errs = append(errs, ValidationError{Field: "format", Message: "must be one of mp4, webm, mov, gif"})
		}
	}
	return errs
}
