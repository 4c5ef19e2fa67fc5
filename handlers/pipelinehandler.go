package handlers

import (
	"airport-air-quality/db"
	"airport-air-quality/model"
	"context"
	"log"
	"net/http"
	"strconv"
)

const defaultRunsLimit = 50

func HandlePipelineRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	if pipeline == nil {
		log.Println("Pipeline not initialized")
		http.Error(w, "Pipeline not available", http.StatusServiceUnavailable)
		return
	}

	if !pipelineMutex.TryLock() {
		log.Println("Pipeline already running")
		http.Error(w, "Pipeline already running", http.StatusConflict)
		return
	}
	defer pipelineMutex.Unlock()

	// a client going away must not stop a run halfway, the staging tables would be left inconsistent
	summary, err := pipeline.Run(context.WithoutCancel(r.Context()))
	if err != nil {
		log.Println("Error running pipeline: ", err)
		http.Error(w, "Pipeline failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, summary)
}

func HandlePipelineRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultRunsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			log.Println("Wrong limit value: ", err)
			http.Error(w, "The provided limit is not valid", http.StatusBadRequest)
			return
		}
	}

	pipelineRunDAO := db.NewPipelineRunDAO(db.GetDB())
	runs := []model.PipelineRun{}
	stored, err := pipelineRunDAO.GetRuns(limit)
	if err != nil {
		log.Println("Error getting pipeline runs: ", err)
		http.Error(w, "Error getting pipeline runs", http.StatusInternalServerError)
		return
	}
	runs = append(runs, stored...)

	writeJSON(w, runs)
}
