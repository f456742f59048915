package project

import (
	"context"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteFunc func(ctx context.Context, name string) error

	calls struct {
		Delete []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Delete(ctx context.Context, name string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, name)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
