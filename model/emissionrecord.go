package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

const MethodReferenceModel = "reference-model"

type EmissionRecord struct {
	EmissionID uuid.UUID `gorm:"column:emission_id;type:uuid;primaryKey" json:"emission_id"`
	FlightID   string    `gorm:"column:flight_id;type:varchar(50);not null;index" json:"flight_id"`
	Phase      string    `gorm:"column:flight_phase;type:varchar(20);not null" json:"phase"`
	Pollutant  string    `gorm:"column:pollutant_type;type:varchar(10);not null" json:"pollutant"`
	FuelKg     float64   `gorm:"column:fuel_consumed_kg;type:numeric(10,4)" json:"fuel_kg"`
	EmissionKg float64   `gorm:"column:emission_quantity_kg;type:numeric(12,6)" json:"emission_kg"`
	Method     string    `gorm:"column:calculation_method;type:varchar(20);default:'reference-model'" json:"method"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EmissionRecord) TableName() string {
	return "emissions_staging"
}

func (record *EmissionRecord) BeforeCreate(tx *gorm.DB) error {
	if record.EmissionID == uuid.Nil {
		record.EmissionID = uuid.New()
	}
	return nil
}
