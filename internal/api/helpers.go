package api

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "vincanto/internal/errors"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	httpErr := apperrors.FromError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	respondJSON(w, httpErr.Code, ErrorResponse{Success: false, Error: httpErr.Message})
}
