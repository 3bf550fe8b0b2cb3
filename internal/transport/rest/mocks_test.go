package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
	"github.com/heartmarshall/nutrilog-backend/internal/service/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/service/meal"
)

var (
	_ authService = &authServiceMock{}
	_ mealService = &mealServiceMock{}
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Register []auth.RegisterInput
		Login    []auth.LoginInput
	}
	lock sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	mock.lock.Lock()
	mock.calls.Register = append(mock.calls.Register, input)
	mock.lock.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	mock.lock.Lock()
	mock.calls.Login = append(mock.calls.Login, input)
	mock.lock.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []auth.RegisterInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Register
}

type mealServiceMock struct {
	CreateEntryFunc  func(ctx context.Context, userID uuid.UUID, input meal.CreateEntryInput) (*meal.EntryResult, error)
	ListEntriesFunc  func(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) ([]meal.EntryResult, error)
	DailySummaryFunc func(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) (*domain.DailySummary, error)
	DeleteEntryFunc  func(ctx context.Context, userID uuid.UUID, input meal.DeleteEntryInput) (bool, error)

	calls struct {
		CreateEntry []struct {
			UserID uuid.UUID
			Input  meal.CreateEntryInput
		}
		DeleteEntry []struct {
			UserID uuid.UUID
			Input  meal.DeleteEntryInput
		}
	}
	lock sync.RWMutex
}

func (mock *mealServiceMock) CreateEntry(ctx context.Context, userID uuid.UUID, input meal.CreateEntryInput) (*meal.EntryResult, error) {
	if mock.CreateEntryFunc == nil {
		panic("mealServiceMock.CreateEntryFunc: method is nil but mealService.CreateEntry was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, struct {
		UserID uuid.UUID
		Input  meal.CreateEntryInput
	}{userID, input})
	mock.lock.Unlock()
	return mock.CreateEntryFunc(ctx, userID, input)
}

func (mock *mealServiceMock) ListEntries(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) ([]meal.EntryResult, error) {
	if mock.ListEntriesFunc == nil {
		panic("mealServiceMock.ListEntriesFunc: method is nil but mealService.ListEntries was just called")
	}
	return mock.ListEntriesFunc(ctx, userID, input)
}

func (mock *mealServiceMock) DailySummary(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) (*domain.DailySummary, error) {
	if mock.DailySummaryFunc == nil {
		panic("mealServiceMock.DailySummaryFunc: method is nil but mealService.DailySummary was just called")
	}
	return mock.DailySummaryFunc(ctx, userID, input)
}

func (mock *mealServiceMock) DeleteEntry(ctx context.Context, userID uuid.UUID, input meal.DeleteEntryInput) (bool, error) {
	if mock.DeleteEntryFunc == nil {
		panic("mealServiceMock.DeleteEntryFunc: method is nil but mealService.DeleteEntry was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, struct {
		UserID uuid.UUID
		Input  meal.DeleteEntryInput
	}{userID, input})
	mock.lock.Unlock()
	return mock.DeleteEntryFunc(ctx, userID, input)
}

func (mock *mealServiceMock) CreateEntryCalls() []struct {
	UserID uuid.UUID
	Input  meal.CreateEntryInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateEntry
}

func (mock *mealServiceMock) DeleteEntryCalls() []struct {
	UserID uuid.UUID
	Input  meal.DeleteEntryInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteEntry
}
