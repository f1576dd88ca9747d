package transport

import (
	"encoding/json"
	"net/http"

	cerr "github.com/wpangestu/contacts-api/utils/errors"
	"github.com/wpangestu/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Errors string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

// writeSuccess wraps the result in the {data: ...} envelope
func writeSuccess(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusOK, dataEnvelope{Data: result})
}

// writeError is the single point mapping errors to HTTP. CustomError values
// carry their own status; anything else becomes a 500 with its message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if customErr, ok := err.(cerr.CustomError); ok {
		status = customErr.ErrorHTTPCode()
	}
	writeJSON(w, status, errorEnvelope{Errors: err.Error()})
}
