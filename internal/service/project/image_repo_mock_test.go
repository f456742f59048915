package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mythosengine/backend/internal/domain"
)

var _ imageRepo = &imageRepoMock{}

type imageRepoMock struct {
	DeleteByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]domain.Image, error)

	calls struct {
		DeleteByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockDeleteByProject sync.RWMutex
}

func (mock *imageRepoMock) DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Image, error) {
	if mock.DeleteByProjectFunc == nil {
		panic("imageRepoMock.DeleteByProjectFunc: method is nil but imageRepo.DeleteByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockDeleteByProject.Lock()
	mock.calls.DeleteByProject = append(mock.calls.DeleteByProject, callInfo)
	mock.lockDeleteByProject.Unlock()
	return mock.DeleteByProjectFunc(ctx, projectID)
}

func (mock *imageRepoMock) DeleteByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockDeleteByProject.RLock()
	calls := mock.calls.DeleteByProject
	mock.lockDeleteByProject.RUnlock()
	return calls
}
