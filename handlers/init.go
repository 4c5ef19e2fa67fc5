package handlers

import (
	"airport-air-quality/etl"
	"airport-air-quality/internals"
	"sync"
)

var referenceData internals.ReferenceData
var pipeline *etl.Pipeline

// only one pipeline run at a time, runs truncate the staging tables
var pipelineMutex sync.Mutex

func Init(ref internals.ReferenceData, p *etl.Pipeline) {
	referenceData = ref
	pipeline = p
}
