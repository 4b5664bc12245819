// Package respond writes the response envelope every endpoint shares:
// {"status": "success", "data": {...}} or {"status": "error", "error": "..."}.
package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

type envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func Success(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, envelope{Status: "success", Data: data})
}

func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: "error", Error: message})
}

func write(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Printf("ERROR [respond.write] encoding response: %v", err)
	}
}
