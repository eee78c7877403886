package handlers

import (
	"encoding/json"
	"net/http"

	"dauraBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage sends the human-readable single-message body every error and
// status response in the API uses.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.MessageResponse{Message: msg})
}
