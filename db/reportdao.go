package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{db: db}
}

func (reportDAO *ReportDAO) GetPollutantTotals() ([]model.PollutantTotal, error) {
	totals := []model.PollutantTotal{}
	result := reportDAO.db.Model(&model.EmissionRecord{}).
		Select("pollutant_type, SUM(emission_quantity_kg) AS total_emission_kg, COUNT(*) AS calculations, AVG(emission_quantity_kg) AS avg_emission_kg").
		Group("pollutant_type").
		Order("total_emission_kg DESC").
		Scan(&totals)
	return totals, result.Error
}

func (reportDAO *ReportDAO) GetAircraftTotals() ([]model.AircraftTotal, error) {
	totals := []model.AircraftTotal{}
	result := reportDAO.db.Table("flights_staging AS f").
		Select("f.aircraft_type, COUNT(DISTINCT f.flight_id) AS flights, "+
			"SUM(CASE WHEN e.pollutant_type = ? THEN e.emission_quantity_kg ELSE 0 END) AS total_co2_kg, "+
			"AVG(CASE WHEN e.pollutant_type = ? THEN e.emission_quantity_kg ELSE NULL END) AS avg_co2_kg",
			model.PollutantCO2, model.PollutantCO2).
		Joins("JOIN emissions_staging AS e ON e.flight_id = f.flight_id").
		Group("f.aircraft_type").
		Order("total_co2_kg DESC").
		Scan(&totals)
	return totals, result.Error
}

func (reportDAO *ReportDAO) GetDailyTotals() ([]model.DailyTotal, error) {
	totals := []model.DailyTotal{}
	result := reportDAO.db.Table("flights_staging AS f").
		Select("DATE(f.departure_time) AS flight_date, COUNT(DISTINCT f.flight_id) AS flights, "+
			"SUM(CASE WHEN e.pollutant_type = ? THEN e.emission_quantity_kg ELSE 0 END) AS total_co2_kg",
			model.PollutantCO2).
		Joins("JOIN emissions_staging AS e ON e.flight_id = f.flight_id").
		Group("DATE(f.departure_time)").
		Order("flight_date").
		Scan(&totals)
	return totals, result.Error
}
