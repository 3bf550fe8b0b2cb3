package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage layout of a meal date.
const DateLayout = "2006-01-02"

// MealType is the closed set of meal categories. Declaration order is the
// display and sort order.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeOther     MealType = "other"
)

// MealTypes lists every meal type in enumeration order.
var MealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
	MealTypeOther,
}

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther:
		return true
	}
	return false
}

// Rank returns the position of m in enumeration order, or -1 for unknown values.
func (m MealType) Rank() int {
	switch m {
	case MealTypeBreakfast:
		return 0
	case MealTypeLunch:
		return 1
	case MealTypeDinner:
		return 2
	case MealTypeSnack:
		return 3
	case MealTypeOther:
		return 4
	}
	return -1
}

// NutrientProfile holds nutrient amounts per 100 g. A nil field means the
// value is unknown, which is different from zero.
type NutrientProfile struct {
	EnergyPer100  *float64
	ProteinPer100 *float64
	FatPer100     *float64
	CarbPer100    *float64
}

// NewMealEntry is a validated creation command. It never carries an ID or
// timestamp; the store assigns both.
type NewMealEntry struct {
	UserID      uuid.UUID
	Date        time.Time
	MealType    MealType
	Description string
	Grams       decimal.Decimal
	Profile     NutrientProfile
}

// MealEntry is a single logged food item.
type MealEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	MealType    MealType
	Description string
	Grams       decimal.Decimal
	Profile     NutrientProfile
	CreatedAt   time.Time
}

// Totals are absolute nutrient amounts for an entry or a day.
// Nil fields mean the underlying per-100 value was absent.
type Totals struct {
	Calories *float64
	Protein  *float64
	Fat      *float64
	Carbs    *float64
}

// DayTotals are the running sums of a DailySummary. Absent per-entry values
// contribute zero.
type DayTotals struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// MealGroups buckets entries by meal type.
type MealGroups struct {
	Breakfast []MealEntry
	Lunch     []MealEntry
	Dinner    []MealEntry
	Snack     []MealEntry
	Other     []MealEntry
}

// Get returns the bucket for the given meal type.
func (g *MealGroups) Get(m MealType) []MealEntry {
	switch m {
	case MealTypeBreakfast:
		return g.Breakfast
	case MealTypeLunch:
		return g.Lunch
	case MealTypeDinner:
		return g.Dinner
	case MealTypeSnack:
		return g.Snack
	case MealTypeOther:
		return g.Other
	}
	return nil
}

// DailySummary is derived on every read and never stored.
type DailySummary struct {
	Date   time.Time
	Meals  MealGroups
	Totals DayTotals
}
