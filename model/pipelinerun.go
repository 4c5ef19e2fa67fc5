package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

const (
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)

type PipelineRun struct {
	RunID            uuid.UUID `gorm:"column:run_id;type:uuid;primaryKey" json:"run_id"`
	RunDate          time.Time `gorm:"column:run_date;type:timestamp;not null" json:"run_date"`
	Step             string    `gorm:"column:pipeline_step;type:varchar(50);not null" json:"pipeline_step"`
	Status           string    `gorm:"column:status;type:varchar(20);not null" json:"status"`
	RecordsProcessed int       `gorm:"column:records_processed;type:integer;default:0" json:"records_processed"`
	ExecutionSeconds float64   `gorm:"column:execution_time_seconds;type:numeric(8,3)" json:"execution_time_seconds"`
	ErrorMessage     string    `gorm:"column:error_message;type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PipelineRun) TableName() string {
	return "pipeline_runs"
}

func (run *PipelineRun) BeforeCreate(tx *gorm.DB) error {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	return nil
}
