package meal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	CreateFunc     func(ctx context.Context, entry domain.NewMealEntry) (*domain.MealEntry, error)
	ListByDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntry, error)
	DeleteFunc     func(ctx context.Context, userID, entryID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry domain.NewMealEntry
		}
		ListByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByDate sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *mealRepoMock) Create(ctx context.Context, entry domain.NewMealEntry) (*domain.MealEntry, error) {
	if mock.CreateFunc == nil {
		panic("mealRepoMock.CreateFunc: method is nil but mealRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.NewMealEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *mealRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry domain.NewMealEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mealRepoMock) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntry, error) {
	if mock.ListByDateFunc == nil {
		panic("mealRepoMock.ListByDateFunc: method is nil but mealRepo.ListByDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockListByDate.Lock()
	mock.calls.ListByDate = append(mock.calls.ListByDate, callInfo)
	mock.lockListByDate.Unlock()
	return mock.ListByDateFunc(ctx, userID, date)
}

func (mock *mealRepoMock) ListByDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockListByDate.RLock()
	calls := mock.calls.ListByDate
	mock.lockListByDate.RUnlock()
	return calls
}

func (mock *mealRepoMock) Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("mealRepoMock.DeleteFunc: method is nil but mealRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *mealRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
