package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondReply 以 {"response": ...} 的形式发送回复
func RespondReply(w http.ResponseWriter, status int, text string) {
	RespondJSON(w, status, map[string]string{"response": text})
}
