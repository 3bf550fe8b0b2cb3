// Package nutrition converts per-100 g nutrient profiles into absolute
// amounts and folds meal entries into daily summaries.
package nutrition

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

// Scale returns the absolute nutrient amounts for grams of food described by
// profile. Absent per-100 values stay absent.
func Scale(profile domain.NutrientProfile, grams decimal.Decimal) domain.Totals {
	g := grams.InexactFloat64()
	return domain.Totals{
		Calories: scaleOne(profile.EnergyPer100, g),
		Protein:  scaleOne(profile.ProteinPer100, g),
		Fat:      scaleOne(profile.FatPer100, g),
		Carbs:    scaleOne(profile.CarbPer100, g),
	}
}

func scaleOne(per100 *float64, grams float64) *float64 {
	if per100 == nil {
		return nil
	}
	v := *per100 * grams / 100
	return &v
}

// EntryTotals is a shorthand for Scale on a stored entry.
func EntryTotals(e domain.MealEntry) domain.Totals {
	return Scale(e.Profile, e.Grams)
}

// Aggregate groups entries into meal-type buckets, preserving input order
// within each bucket, and sums their totals. Absent values count as zero in
// the sums only.
func Aggregate(date time.Time, entries []domain.MealEntry) domain.DailySummary {
	s := domain.DailySummary{Date: date}

	for _, e := range entries {
		switch e.MealType {
		case domain.MealTypeBreakfast:
			s.Meals.Breakfast = append(s.Meals.Breakfast, e)
		case domain.MealTypeLunch:
			s.Meals.Lunch = append(s.Meals.Lunch, e)
		case domain.MealTypeDinner:
			s.Meals.Dinner = append(s.Meals.Dinner, e)
		case domain.MealTypeSnack:
			s.Meals.Snack = append(s.Meals.Snack, e)
		case domain.MealTypeOther:
			s.Meals.Other = append(s.Meals.Other, e)
		default:
			// The store constrains meal_type; anything else is not counted.
			continue
		}

		t := EntryTotals(e)
		s.Totals.Calories += valueOrZero(t.Calories)
		s.Totals.Protein += valueOrZero(t.Protein)
		s.Totals.Fat += valueOrZero(t.Fat)
		s.Totals.Carbs += valueOrZero(t.Carbs)
	}

	return s
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
