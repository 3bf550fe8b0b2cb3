package foodcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

var descriptionColumns = []string{"food", "Food", "FOOD"}

const (
	colEnergy  = "Caloric Value"
	colFat     = "Fat"
	colCarbs   = "Carbohydrates"
	colProtein = "Protein"
)

// parse reads one nutrient CSV. Rows without a description, or whose four
// nutrient cells are all unusable, are skipped.
func parse(r io.Reader) ([]domain.Food, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	descCols := make([]int, 0, len(descriptionColumns))
	for _, name := range descriptionColumns {
		if i, ok := index[name]; ok {
			descCols = append(descCols, i)
		}
	}

	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var foods []domain.Food
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		desc := ""
		for _, i := range descCols {
			if i < len(record) && record[i] != "" {
				desc = record[i]
				break
			}
		}
		if desc == "" {
			continue
		}

		f := domain.Food{
			Description:   desc,
			EnergyPer100:  parseNumber(cell(record, colEnergy)),
			FatPer100:     parseNumber(cell(record, colFat)),
			CarbPer100:    parseNumber(cell(record, colCarbs)),
			ProteinPer100: parseNumber(cell(record, colProtein)),
		}
		if f.EnergyPer100 == nil && f.FatPer100 == nil && f.CarbPer100 == nil && f.ProteinPer100 == nil {
			continue
		}

		foods = append(foods, f)
	}

	return foods, nil
}

// parseNumber accepts a comma as the decimal separator.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
