package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/image"
)

var _ imageService = &imageServiceMock{}

type imageServiceMock struct {
	UploadFunc        func(ctx context.Context, input image.UploadImageInput) (*domain.Image, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	UpdateAltTextFunc func(ctx context.Context, id uuid.UUID, input image.UpdateImageInput) (*domain.Image, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID, page domain.Page) (domain.ImagePage, error)
	UsageFunc         func(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error)
	URLFunc           func(img domain.Image) string
	OpenFileFunc      func(ctx context.Context, filename string) (*domain.Image, io.ReadSeekCloser, error)

	calls struct {
		Upload []struct {
			Ctx   context.Context
			Input image.UploadImageInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateAltText []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input image.UpdateImageInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Page      domain.Page
		}
		Usage []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		URL []struct {
			Img domain.Image
		}
		OpenFile []struct {
			Ctx      context.Context
			Filename string
		}
	}
	lockUpload        sync.RWMutex
	lockGet           sync.RWMutex
	lockUpdateAltText sync.RWMutex
	lockDelete        sync.RWMutex
	lockListByProject sync.RWMutex
	lockUsage         sync.RWMutex
	lockURL           sync.RWMutex
	lockOpenFile      sync.RWMutex
}

func (mock *imageServiceMock) Upload(ctx context.Context, input image.UploadImageInput) (*domain.Image, error) {
	if mock.UploadFunc == nil {
		panic("imageServiceMock.UploadFunc: method is nil but imageService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input image.UploadImageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *imageServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input image.UploadImageInput
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *imageServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	if mock.GetFunc == nil {
		panic("imageServiceMock.GetFunc: method is nil but imageService.Get was just called")
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

func (mock *imageServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *imageServiceMock) UpdateAltText(ctx context.Context, id uuid.UUID, input image.UpdateImageInput) (*domain.Image, error) {
	if mock.UpdateAltTextFunc == nil {
		panic("imageServiceMock.UpdateAltTextFunc: method is nil but imageService.UpdateAltText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input image.UpdateImageInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateAltText.Lock()
	mock.calls.UpdateAltText = append(mock.calls.UpdateAltText, callInfo)
	mock.lockUpdateAltText.Unlock()
	return mock.UpdateAltTextFunc(ctx, id, input)
}

func (mock *imageServiceMock) UpdateAltTextCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input image.UpdateImageInput
} {
	mock.lockUpdateAltText.RLock()
	calls := mock.calls.UpdateAltText
	mock.lockUpdateAltText.RUnlock()
	return calls
}

func (mock *imageServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("imageServiceMock.DeleteFunc: method is nil but imageService.Delete was just called")
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

func (mock *imageServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *imageServiceMock) ListByProject(ctx context.Context, projectID uuid.UUID, page domain.Page) (domain.ImagePage, error) {
	if mock.ListByProjectFunc == nil {
		panic("imageServiceMock.ListByProjectFunc: method is nil but imageService.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Page      domain.Page
	}{
		Ctx:       ctx,
		ProjectID: projectID,
		Page:      page,
	}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, projectID, page)
}

func (mock *imageServiceMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Page      domain.Page
} {
	mock.lockListByProject.RLock()
	calls := mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}

func (mock *imageServiceMock) Usage(ctx context.Context, projectID uuid.UUID) (domain.StorageUsage, error) {
	if mock.UsageFunc == nil {
		panic("imageServiceMock.UsageFunc: method is nil but imageService.Usage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockUsage.Lock()
	mock.calls.Usage = append(mock.calls.Usage, callInfo)
	mock.lockUsage.Unlock()
	return mock.UsageFunc(ctx, projectID)
}

func (mock *imageServiceMock) UsageCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockUsage.RLock()
	calls := mock.calls.Usage
	mock.lockUsage.RUnlock()
	return calls
}

func (mock *imageServiceMock) URL(img domain.Image) string {
	if mock.URLFunc == nil {
		panic("imageServiceMock.URLFunc: method is nil but imageService.URL was just called")
	}
	callInfo := struct {
		Img domain.Image
	}{
		Img: img,
	}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(img)
}

func (mock *imageServiceMock) URLCalls() []struct {
	Img domain.Image
} {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}

func (mock *imageServiceMock) OpenFile(ctx context.Context, filename string) (*domain.Image, io.ReadSeekCloser, error) {
	if mock.OpenFileFunc == nil {
		panic("imageServiceMock.OpenFileFunc: method is nil but imageService.OpenFile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
	}{
		Ctx:      ctx,
		Filename: filename,
	}
	mock.lockOpenFile.Lock()
	mock.calls.OpenFile = append(mock.calls.OpenFile, callInfo)
	mock.lockOpenFile.Unlock()
	return mock.OpenFileFunc(ctx, filename)
}

func (mock *imageServiceMock) OpenFileCalls() []struct {
	Ctx      context.Context
	Filename string
} {
	mock.lockOpenFile.RLock()
	calls := mock.calls.OpenFile
	mock.lockOpenFile.RUnlock()
	return calls
}
