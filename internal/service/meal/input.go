package meal

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

const (
	msgInvalidDate      = "Invalid or missing date (YYYY-MM-DD)."
	msgInvalidMealType  = "mealType must be one of: breakfast, lunch, dinner, snack, other"
	msgEmptyDescription = "Description is required."
	msgInvalidGrams     = "grams must be a positive number."
	msgInvalidDateParam = "Missing or invalid date parameter (YYYY-MM-DD)."
	msgInvalidMealID    = "Invalid meal id."
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate accepts a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, bool) {
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// CreateEntryInput is the raw creation payload. Numeric fields hold the
// textual form of whatever the client sent; an empty string means absent.
type CreateEntryInput struct {
	Date          string
	MealType      string
	Description   string
	Grams         string
	EnergyPer100  string
	ProteinPer100 string
	FatPer100     string
	CarbPer100    string
}

// Normalize validates the payload, collecting every field error, and returns
// a creation command owned by userID.
func (i CreateEntryInput) Normalize(userID uuid.UUID) (domain.NewMealEntry, error) {
	var errs []domain.FieldError

	date, ok := ParseDate(i.Date)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "date", Reason: domain.ReasonInvalidDate, Message: msgInvalidDate})
	}

	mealType := domain.MealType(i.MealType)
	if !mealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mealType", Reason: domain.ReasonInvalidMealType, Message: msgInvalidMealType})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Reason: domain.ReasonEmptyDescription, Message: msgEmptyDescription})
	}

	grams, ok := parseGrams(i.Grams)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "grams", Reason: domain.ReasonInvalidGrams, Message: msgInvalidGrams})
	}

	if len(errs) > 0 {
		return domain.NewMealEntry{}, domain.NewValidationErrors(errs)
	}

	return domain.NewMealEntry{
		UserID:      userID,
		Date:        date,
		MealType:    mealType,
		Description: description,
		Grams:       grams,
		Profile: domain.NutrientProfile{
			EnergyPer100:  parseOptional(i.EnergyPer100),
			ProteinPer100: parseOptional(i.ProteinPer100),
			FatPer100:     parseOptional(i.FatPer100),
			CarbPer100:    parseOptional(i.CarbPer100),
		},
	}, nil
}

func parseGrams(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Decimal{}, false
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}
	return decimal.NewFromFloat(f), true
}

// parseOptional returns nil for anything that is not a finite number.
func parseOptional(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ListEntriesInput selects one day of a user's log.
type ListEntriesInput struct {
	Date string
}

// Validate parses the date.
func (i ListEntriesInput) Validate() (time.Time, error) {
	d, ok := ParseDate(i.Date)
	if !ok {
		return time.Time{}, domain.NewValidationError("date", domain.ReasonInvalidDate, msgInvalidDateParam)
	}
	return d, nil
}

// DeleteEntryInput identifies the entry to delete.
type DeleteEntryInput struct {
	EntryID string
}

// Validate parses the entry ID.
func (i DeleteEntryInput) Validate() (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(i.EntryID))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.NewValidationError("id", domain.ReasonInvalidID, msgInvalidMealID)
	}
	return id, nil
}
