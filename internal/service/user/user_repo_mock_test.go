package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mythosengine/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	ListFunc            func(ctx context.Context, page domain.Page) ([]domain.User, error)
	CreateFunc          func(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateFunc          func(ctx context.Context, u domain.User) (*domain.User, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IsUsernameTakenFunc func(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
	IsEmailTakenFunc    func(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	StatsFunc           func(ctx context.Context, id uuid.UUID) (*domain.UserStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		Update []struct {
			Ctx context.Context
			U   domain.User
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IsUsernameTaken []struct {
			Ctx       context.Context
			Username  string
			ExcludeID *uuid.UUID
		}
		IsEmailTaken []struct {
			Ctx       context.Context
			Email     string
			ExcludeID *uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByUsername   sync.RWMutex
	lockList            sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockIsUsernameTaken sync.RWMutex
	lockIsEmailTaken    sync.RWMutex
	lockStats           sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, u)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) IsUsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	if mock.IsUsernameTakenFunc == nil {
		panic("userRepoMock.IsUsernameTakenFunc: method is nil but userRepo.IsUsernameTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Username  string
		ExcludeID *uuid.UUID
	}{
		Ctx:       ctx,
		Username:  username,
		ExcludeID: excludeID,
	}
	mock.lockIsUsernameTaken.Lock()
	mock.calls.IsUsernameTaken = append(mock.calls.IsUsernameTaken, callInfo)
	mock.lockIsUsernameTaken.Unlock()
	return mock.IsUsernameTakenFunc(ctx, username, excludeID)
}

func (mock *userRepoMock) IsUsernameTakenCalls() []struct {
	Ctx       context.Context
	Username  string
	ExcludeID *uuid.UUID
} {
	mock.lockIsUsernameTaken.RLock()
	calls := mock.calls.IsUsernameTaken
	mock.lockIsUsernameTaken.RUnlock()
	return calls
}

func (mock *userRepoMock) IsEmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	if mock.IsEmailTakenFunc == nil {
		panic("userRepoMock.IsEmailTakenFunc: method is nil but userRepo.IsEmailTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Email     string
		ExcludeID *uuid.UUID
	}{
		Ctx:       ctx,
		Email:     email,
		ExcludeID: excludeID,
	}
	mock.lockIsEmailTaken.Lock()
	mock.calls.IsEmailTaken = append(mock.calls.IsEmailTaken, callInfo)
	mock.lockIsEmailTaken.Unlock()
	return mock.IsEmailTakenFunc(ctx, email, excludeID)
}

func (mock *userRepoMock) IsEmailTakenCalls() []struct {
	Ctx       context.Context
	Email     string
	ExcludeID *uuid.UUID
} {
	mock.lockIsEmailTaken.RLock()
	calls := mock.calls.IsEmailTaken
	mock.lockIsEmailTaken.RUnlock()
	return calls
}

func (mock *userRepoMock) Stats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error) {
	if mock.StatsFunc == nil {
		panic("userRepoMock.StatsFunc: method is nil but userRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, id)
}

func (mock *userRepoMock) StatsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
