package meal

import (
	"github.com/heartmarshall/nutrilog-backend/internal/domain"
	"github.com/heartmarshall/nutrilog-backend/internal/service/nutrition"
)

// EntryResult pairs a stored entry with its computed totals.
type EntryResult struct {
	Entry  domain.MealEntry
	Totals domain.Totals
}

func newEntryResult(e domain.MealEntry) EntryResult {
	return EntryResult{Entry: e, Totals: nutrition.EntryTotals(e)}
}
