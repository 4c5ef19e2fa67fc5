package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

type PipelineRunDAO struct {
	db *gorm.DB
}

func NewPipelineRunDAO(db *gorm.DB) *PipelineRunDAO {
	return &PipelineRunDAO{db: db}
}

func (pipelineRunDAO *PipelineRunDAO) CreateRun(run *model.PipelineRun) error {
	// takes a pointer, in order to get the generated id back
	result := pipelineRunDAO.db.Create(run)
	return result.Error
}

func (pipelineRunDAO *PipelineRunDAO) GetRuns(limit int) ([]model.PipelineRun, error) {
	var runs []model.PipelineRun
	result := pipelineRunDAO.db.Order("run_date DESC").Limit(limit).Find(&runs)
	return runs, result.Error
}
