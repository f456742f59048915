package image

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ImageUploadedFunc func(mimeType string, size int64)
	ImageRejectedFunc func(reason string)
	ImageDeletedFunc  func()

	calls struct {
		ImageUploaded []struct {
			MimeType string
			Size     int64
		}
		ImageRejected []struct {
			Reason string
		}
		ImageDeleted []struct{}
	}
	lockImageUploaded sync.RWMutex
	lockImageRejected sync.RWMutex
	lockImageDeleted  sync.RWMutex
}

func (mock *recorderMock) ImageUploaded(mimeType string, size int64) {
	if mock.ImageUploadedFunc == nil {
		panic("recorderMock.ImageUploadedFunc: method is nil but recorder.ImageUploaded was just called")
	}
	callInfo := struct {
		MimeType string
		Size     int64
	}{
		MimeType: mimeType,
		Size:     size,
	}
	mock.lockImageUploaded.Lock()
	mock.calls.ImageUploaded = append(mock.calls.ImageUploaded, callInfo)
	mock.lockImageUploaded.Unlock()
	mock.ImageUploadedFunc(mimeType, size)
}

func (mock *recorderMock) ImageUploadedCalls() []struct {
	MimeType string
	Size     int64
} {
	mock.lockImageUploaded.RLock()
	calls := mock.calls.ImageUploaded
	mock.lockImageUploaded.RUnlock()
	return calls
}

func (mock *recorderMock) ImageRejected(reason string) {
	if mock.ImageRejectedFunc == nil {
		panic("recorderMock.ImageRejectedFunc: method is nil but recorder.ImageRejected was just called")
	}
	callInfo := struct {
		Reason string
	}{
		Reason: reason,
	}
	mock.lockImageRejected.Lock()
	mock.calls.ImageRejected = append(mock.calls.ImageRejected, callInfo)
	mock.lockImageRejected.Unlock()
	mock.ImageRejectedFunc(reason)
}

func (mock *recorderMock) ImageRejectedCalls() []struct {
	Reason string
} {
	mock.lockImageRejected.RLock()
	calls := mock.calls.ImageRejected
	mock.lockImageRejected.RUnlock()
	return calls
}

func (mock *recorderMock) ImageDeleted() {
	if mock.ImageDeletedFunc == nil {
		panic("recorderMock.ImageDeletedFunc: method is nil but recorder.ImageDeleted was just called")
	}
	mock.lockImageDeleted.Lock()
	mock.calls.ImageDeleted = append(mock.calls.ImageDeleted, struct{}{})
	mock.lockImageDeleted.Unlock()
	mock.ImageDeletedFunc()
}

func (mock *recorderMock) ImageDeletedCalls() []struct{} {
	mock.lockImageDeleted.RLock()
	calls := mock.calls.ImageDeleted
	mock.lockImageDeleted.RUnlock()
	return calls
}
