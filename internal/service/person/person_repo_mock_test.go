package person

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mythosengine/backend/internal/domain"
)

var _ personRepo = &personRepoMock{}

type personRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	ListFunc    func(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error)
	CreateFunc  func(ctx context.Context, p domain.Person) (*domain.Person, error)
	UpdateFunc  func(ctx context.Context, p domain.Person) (*domain.Person, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) (*domain.Person, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			F    domain.PersonFilter
			Page domain.Page
		}
		Create []struct {
			Ctx context.Context
			P   domain.Person
		}
		Update []struct {
			Ctx context.Context
			P   domain.Person
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *personRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	if mock.GetByIDFunc == nil {
		panic("personRepoMock.GetByIDFunc: method is nil but personRepo.GetByID was just called")
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

func (mock *personRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *personRepoMock) List(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error) {
	if mock.ListFunc == nil {
		panic("personRepoMock.ListFunc: method is nil but personRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.PersonFilter
		Page domain.Page
	}{
		Ctx:  ctx,
		F:    f,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, page)
}

func (mock *personRepoMock) ListCalls() []struct {
	Ctx  context.Context
	F    domain.PersonFilter
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *personRepoMock) Create(ctx context.Context, p domain.Person) (*domain.Person, error) {
	if mock.CreateFunc == nil {
		panic("personRepoMock.CreateFunc: method is nil but personRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Person
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *personRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Person
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *personRepoMock) Update(ctx context.Context, p domain.Person) (*domain.Person, error) {
	if mock.UpdateFunc == nil {
		panic("personRepoMock.UpdateFunc: method is nil but personRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Person
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *personRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Person
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *personRepoMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	if mock.DeleteFunc == nil {
		panic("personRepoMock.DeleteFunc: method is nil but personRepo.Delete was just called")
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

func (mock *personRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
