// Package response writes JSON bodies for the HTTP API.
package response

import (
	"encoding/json"
	"net/http"
)

// Message is the body of every non-resource response.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes a {"message": msg} body with the given status code.
func Text(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Message: msg})
}
