package handlers

import (
	"airport-air-quality/db"
	"log"
	"net/http"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	err := db.ResetTestDatabase()
	if err != nil {
		log.Println("Error resetting test database: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
