package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the root path with a small service banner.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"message": "Kadima POS API",
		"path":    r.URL.Path,
		"docs":    "/swagger/index.html",
	})
}
