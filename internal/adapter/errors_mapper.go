package adapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-scim-owner/models"
)

// maxErrorBody bounds how much of an error response is carried in a
// [StatusError].
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{
		Code:   resp.StatusCode(),
		Status: resp.Status(),
		Body:   errorBody(resp.Body()),
	}
	if statusErr.Status == "" {
		statusErr.Status = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.kind = ErrForbidden
	case http.StatusNotFound:
		statusErr.kind = ErrNotFound
	case http.StatusConflict:
		statusErr.kind = ErrConflict
	case http.StatusTooManyRequests:
		statusErr.kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		statusErr.kind = ErrInternalServerError
	case http.StatusBadGateway:
		statusErr.kind = ErrBadGateway
	default:
		statusErr.kind = ErrUnexpectedStatus
	}

	return statusErr
}

// errorBody prefers the "detail" of a SCIM error document and falls back to
// the trimmed raw body.
func errorBody(raw []byte) string {
	var scimErr models.ScimError
	if err := json.Unmarshal(raw, &scimErr); err == nil && scimErr.Detail != "" {
		return truncate(scimErr.Detail)
	}
	return truncate(strings.TrimSpace(string(raw)))
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	// cut on a rune boundary so the result stays valid UTF-8
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
