package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "duration", Message: "must not be negative"}
	if err.Error() != "duration: must not be negative" {
		t.Errorf("Error() = %q, want %q", err.Error(), "duration: must not be negative")
	}
}

func TestToResponse(t *testing.T) {
	errs := []ValidationError{
		{Field: "duration", Message: "must not be negative"},
		{Field: "format", Message: "invalid"},
	}
	expected := "duration: must not be negative; format: invalid"
	if resp := ToResponse(errs); resp != expected {
		t.Errorf("ToResponse() = %q, want %q", resp, expected)
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{"number", `7`, 7, false},
		{"numeric string", `"42"`, 42, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"word", `"abc"`, 0, true},
		{"float", `1.5`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("got %d, want %d", id, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErrs int
		field    string
	}{
		{"valid", `{"wizard_id": 3, "type": "video"}`, 0, ""},
		{"empty body", ``, 0, ""},
		{"malformed", `{"wizard_id": `, 1, "body"},
		{"wrong type", `{"type": 5}`, 1, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v EnqueueRenderRequest
			errs := Decode(httptest.NewRecorder(), req, &v)
			if len(errs) != tt.wantErrs {
				t.Fatalf("expected %d errors, got %v", tt.wantErrs, errs)
			}
			if tt.field != "" && errs[0].Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, errs[0].Field)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateVideoRecordRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateVideoRecordRequest
		wantErrs int
	}{
		{"minimal", CreateVideoRecordRequest{Title: "t", Status: "s", WizardID: 1}, 0},
		{"full", CreateVideoRecordRequest{FilePath: ptr("out/video.mp4"), Duration: ptr(12.5), Format: ptr("mp4")}, 0},
		{"negative duration", CreateVideoRecordRequest{Duration: ptr(-1.0)}, 1},
		{"absolute path", CreateVideoRecordRequest{FilePath: ptr("/etc/passwd")}, 1},
		{"parent path", CreateVideoRecordRequest{FilePath: ptr("../secret.mp4")}, 1},
		{"unknown format", CreateVideoRecordRequest{Format: ptr("avi")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := tt.req.Validate(); len(errs) != tt.wantErrs {
				t.Errorf("Validate() = %v, want %d errors", errs, tt.wantErrs)
			}
		})
	}
}

func TestCreateVideoRecordRequest_ToVideoNullsEmptyValues(t *testing.T) {
	req := CreateVideoRecordRequest{WizardID: 2, Title: "t", Status: "s", FilePath: ptr(""), Duration: ptr(0.0), Format: ptr("")}
	v := req.ToVideo()
	if v.FilePath != nil || v.Duration != nil || v.Format != nil {
		t.Errorf("expected empty optionals to be nil, got %+v", v)
	}
	if v.WizardID == nil || *v.WizardID != 2 {
		t.Errorf("expected wizard id 2, got %v", v.WizardID)
	}
}
