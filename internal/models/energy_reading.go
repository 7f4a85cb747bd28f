package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType classifies where consumed energy came from.
type SourceType string

const (
	SourceElectricity SourceType = "ELECTRICITY"
	SourceTransport   SourceType = "TRANSPORT"
	SourceWaste       SourceType = "WASTE"
	SourceHeating     SourceType = "HEATING"
	SourceCooling     SourceType = "COOLING"
)

// ParseSourceType maps a string onto a SourceType, case-insensitively.
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(strings.ToUpper(strings.TrimSpace(s))) {
	case SourceElectricity:
		return SourceElectricity, nil
	case SourceTransport:
		return SourceTransport, nil
	case SourceWaste:
		return SourceWaste, nil
	case SourceHeating:
		return SourceHeating, nil
	case SourceCooling:
		return SourceCooling, nil
	default:
		return "", fmt.Errorf("unknown source type %q", s)
	}
}

var (
	// carbonPerKwh is the average carbon intensity, kg CO2 per kWh.
	carbonPerKwh = decimal.RequireFromString("0.45")
	// costPerKwh is the average unit cost, USD per kWh.
	costPerKwh = decimal.RequireFromString("0.12")
)

// EstimateCarbonKg imputes the carbon footprint of a reading from its consumption.
func EstimateCarbonKg(kwh decimal.Decimal) decimal.Decimal {
	return kwh.Mul(carbonPerKwh)
}

// EstimateCostUsd imputes the cost of a reading from its consumption.
func EstimateCostUsd(kwh decimal.Decimal) decimal.Decimal {
	return kwh.Mul(costPerKwh)
}

// EnergyReading is a single timestamped consumption observation.
// Readings are immutable once stored.
type EnergyReading struct {
	ID           int64           `db:"id" json:"id"`
	DepartmentID int64           `db:"department_id" json:"departmentId"`
	KwhUsed      decimal.Decimal `db:"kwh_used" json:"kwhUsed"`
	SourceType   SourceType      `db:"source_type" json:"sourceType"`
	Timestamp    time.Time       `db:"timestamp" json:"timestamp"`
	CostUsd      decimal.Decimal `db:"cost_usd" json:"costUsd"`
	CarbonKg     decimal.Decimal `db:"carbon_kg" json:"carbonKg"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
