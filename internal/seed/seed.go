// Package seed parses the static demo dataset and maps it onto store records.
package seed

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ecometer/internal/models"
)

const timestampLayout = "2006-01-02T15:04:05"

// fallbackSavingsUsd is used when potentialSavings cannot be parsed.
var fallbackSavingsUsd = decimal.RequireFromString("100.00")

// savingsPercentScale converts a savings percentage into a rough USD figure.
var savingsPercentScale = decimal.RequireFromString("10")

// Document is the raw seed file shape.
type Document struct {
	Departments    []DepartmentRecord `json:"departments"`
	EnergyReadings []ReadingRecord    `json:"energyReadings"`
	AiSuggestions  []SuggestionRecord `json:"aiSuggestions"`
}

// DepartmentRecord is one seed department.
type DepartmentRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ReadingRecord is one seed energy reading, referencing its department by name.
type ReadingRecord struct {
	Department  string          `json:"department"`
	Timestamp   string          `json:"timestamp"`
	Consumption decimal.Decimal `json:"consumption"`
	Cost        decimal.Decimal `json:"cost"`
}

// SuggestionRecord is one seed suggestion.
type SuggestionRecord struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	PotentialSavings string `json:"potentialSavings"`
}

// Reading pairs a store-ready reading with the department name it references.
type Reading struct {
	DepartmentName string
	Reading        models.EnergyReading
}

// Data is the seed document mapped onto store records, ready to load.
type Data struct {
	Departments []models.Department
	Readings    []Reading
	Suggestions []models.Suggestion
}

// Parse decodes a raw seed document.
func Parse(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("seed: decode document: %w", err)
	}
	return doc, nil
}

// Build maps a seed document onto store records.
//
// Seeded readings always carry source type ELECTRICITY and seeded suggestions
// always carry category ENERGY_SAVING: the document format has no field for
// either, so the loader pins them.
func Build(doc Document) (Data, error) {
	data := Data{
		Departments: make([]models.Department, 0, len(doc.Departments)),
		Readings:    make([]Reading, 0, len(doc.EnergyReadings)),
		Suggestions: make([]models.Suggestion, 0, len(doc.AiSuggestions)),
	}

	for _, d := range doc.Departments {
		data.Departments = append(data.Departments, models.Department{
			Name:        d.Name,
			Description: d.Description,
		})
	}

	for _, r := range doc.EnergyReadings {
		ts, err := time.Parse(timestampLayout, r.Timestamp)
		if err != nil {
			return Data{}, fmt.Errorf("seed: parse reading timestamp %q: %w", r.Timestamp, err)
		}
		data.Readings = append(data.Readings, Reading{
			DepartmentName: r.Department,
			Reading: models.EnergyReading{
				KwhUsed:    r.Consumption,
				SourceType: models.SourceElectricity,
				Timestamp:  ts,
				CostUsd:    r.Cost,
				CarbonKg:   models.EstimateCarbonKg(r.Consumption),
			},
		})
	}

	for _, s := range doc.AiSuggestions {
		data.Suggestions = append(data.Suggestions, models.Suggestion{
			Text:                fmt.Sprintf("%s: %s", s.Title, s.Description),
			Category:            models.CategoryEnergySaving,
			Priority:            models.ParsePriority(s.Priority),
			EstimatedSavingsUsd: parseSavings(s.PotentialSavings),
			IsActive:            true,
		})
	}

	return data, nil
}

// parseSavings turns a "15%" style figure into a rough dollar estimate.
func parseSavings(raw string) decimal.Decimal {
	percent, err := decimal.NewFromString(strings.TrimSuffix(raw, "%"))
	if err != nil {
		return fallbackSavingsUsd
	}
	return percent.Mul(savingsPercentScale)
}
