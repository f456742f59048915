package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/article"
)

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	CreateFunc       func(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListFunc         func(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error)
	ListByAuthorFunc func(ctx context.Context, authorID uuid.UUID, page domain.Page) ([]domain.Article, error)
	ListPublicFunc   func(ctx context.Context, page domain.Page) ([]domain.Article, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, input article.UpdateArticleInput) (*domain.Article, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input article.CreateArticleInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			F    domain.ArticleFilter
			Page domain.Page
		}
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
			Page     domain.Page
		}
		ListPublic []struct {
			Ctx  context.Context
			Page domain.Page
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input article.UpdateArticleInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockList         sync.RWMutex
	lockListByAuthor sync.RWMutex
	lockListPublic   sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *articleServiceMock) Create(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleServiceMock.CreateFunc: method is nil but articleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateArticleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *articleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input article.CreateArticleInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetFunc == nil {
		panic("articleServiceMock.GetFunc: method is nil but articleService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *articleServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *articleServiceMock) List(ctx context.Context, f domain.ArticleFilter, page domain.Page) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleServiceMock.ListFunc: method is nil but articleService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.ArticleFilter
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

func (mock *articleServiceMock) ListCalls() []struct {
	Ctx  context.Context
	F    domain.ArticleFilter
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListByAuthor(ctx context.Context, authorID uuid.UUID, page domain.Page) ([]domain.Article, error) {
	if mock.ListByAuthorFunc == nil {
		panic("articleServiceMock.ListByAuthorFunc: method is nil but articleService.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Page     domain.Page
	}{
		Ctx:      ctx,
		AuthorID: authorID,
		Page:     page,
	}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID, page)
}

func (mock *articleServiceMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
	Page     domain.Page
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListPublic(ctx context.Context, page domain.Page) ([]domain.Article, error) {
	if mock.ListPublicFunc == nil {
		panic("articleServiceMock.ListPublicFunc: method is nil but articleService.ListPublic was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx, page)
}

func (mock *articleServiceMock) ListPublicCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}

func (mock *articleServiceMock) Update(ctx context.Context, id uuid.UUID, input article.UpdateArticleInput) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleServiceMock.UpdateFunc: method is nil but articleService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input article.UpdateArticleInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *articleServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input article.UpdateArticleInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("articleServiceMock.DeleteFunc: method is nil but articleService.Delete was just called")
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

func (mock *articleServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
