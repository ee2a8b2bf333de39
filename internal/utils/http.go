package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeSCIM is the media type of SCIM 2.0 request and response bodies.
const ContentTypeSCIM = "application/scim+json"

// WriteSCIM serializes data and writes it as a SCIM response with the given
// status code. If data cannot be marshaled the client gets a plain 500 and
// the marshal error is returned.
func WriteSCIM(w http.ResponseWriter, statusCode int, data any) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding scim response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding scim response: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeSCIM)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
