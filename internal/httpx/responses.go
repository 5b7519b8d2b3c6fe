package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope statuses. Fail is a client error, error a server error.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ErrMalformedBody is returned by DecodeJSON when the body is not a JSON object.
var ErrMalformedBody = errors.New("malformed request body")

// Envelope wraps every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(env)
}

// JSONSuccess writes a success envelope. message and data are omitted when empty.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	writeEnvelope(w, statusCode, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail writes a client error envelope.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{Status: StatusFail, Message: message})
}

// JSONError writes a server error envelope.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{Status: StatusError, Message: message})
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedBody)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
