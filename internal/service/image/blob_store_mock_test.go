package image

import (
	"context"
	"io"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc    func(ctx context.Context, name string, data []byte) (string, error)
	OpenFunc   func(ctx context.Context, name string) (io.ReadSeekCloser, error)
	DeleteFunc func(ctx context.Context, name string) error
	RemoteFunc func() bool
	BucketFunc func() string

	calls struct {
		Put []struct {
			Ctx  context.Context
			Name string
			Data []byte
		}
		Open []struct {
			Ctx  context.Context
			Name string
		}
		Delete []struct {
			Ctx  context.Context
			Name string
		}
		Remote []struct{}
		Bucket []struct{}
	}
	lockPut    sync.RWMutex
	lockOpen   sync.RWMutex
	lockDelete sync.RWMutex
	lockRemote sync.RWMutex
	lockBucket sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, name string, data []byte) (string, error) {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Data []byte
	}{
		Ctx:  ctx,
		Name: name,
		Data: data,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, name, data)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx  context.Context
	Name string
	Data []byte
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *blobStoreMock) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	if mock.OpenFunc == nil {
		panic("blobStoreMock.OpenFunc: method is nil but blobStore.Open was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, name)
}

func (mock *blobStoreMock) OpenCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
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

func (mock *blobStoreMock) Remote() bool {
	if mock.RemoteFunc == nil {
		panic("blobStoreMock.RemoteFunc: method is nil but blobStore.Remote was just called")
	}
	mock.lockRemote.Lock()
	mock.calls.Remote = append(mock.calls.Remote, struct{}{})
	mock.lockRemote.Unlock()
	return mock.RemoteFunc()
}

func (mock *blobStoreMock) RemoteCalls() []struct{} {
	mock.lockRemote.RLock()
	calls := mock.calls.Remote
	mock.lockRemote.RUnlock()
	return calls
}

func (mock *blobStoreMock) Bucket() string {
	if mock.BucketFunc == nil {
		panic("blobStoreMock.BucketFunc: method is nil but blobStore.Bucket was just called")
	}
	mock.lockBucket.Lock()
	mock.calls.Bucket = append(mock.calls.Bucket, struct{}{})
	mock.lockBucket.Unlock()
	return mock.BucketFunc()
}

func (mock *blobStoreMock) BucketCalls() []struct{} {
	mock.lockBucket.RLock()
	calls := mock.calls.Bucket
	mock.lockBucket.RUnlock()
	return calls
}
