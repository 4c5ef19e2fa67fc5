package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

const emissionBatchSize = 500

type EmissionDAO struct {
	db *gorm.DB
}

func NewEmissionDAO(db *gorm.DB) *EmissionDAO {
	return &EmissionDAO{db: db}
}

// CreateEmissions inserts all records in one transaction, either every batch is stored or none
func (emissionDAO *EmissionDAO) CreateEmissions(records []model.EmissionRecord) error {
	if len(records) == 0 {
		return nil
	}

	// create transaction
	transaction := emissionDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	result := transaction.CreateInBatches(records, emissionBatchSize)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (emissionDAO *EmissionDAO) GetEmissionsByFlightID(flightID string) ([]model.EmissionRecord, error) {
	var records []model.EmissionRecord
	result := emissionDAO.db.Where("flight_id = ?", flightID).Find(&records)
	return records, result.Error
}

func (emissionDAO *EmissionDAO) CountEmissions() (int64, error) {
	var count int64
	result := emissionDAO.db.Model(&model.EmissionRecord{}).Count(&count)
	return count, result.Error
}

func (emissionDAO *EmissionDAO) TotalEmissionKg(pollutant string) (float64, error) {
	var total float64
	result := emissionDAO.db.Model(&model.EmissionRecord{}).
		Select("COALESCE(SUM(emission_quantity_kg), 0)").
		Where("pollutant_type = ?", pollutant).
		Scan(&total)
	return total, result.Error
}
