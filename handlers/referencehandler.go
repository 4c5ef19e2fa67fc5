package handlers

import (
	"log"
	"net/http"
)

func HandleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, referenceData)
}
