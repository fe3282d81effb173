package staging

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ containerCreator = &containerCreatorMock{}

type containerCreatorMock struct {
	CreateContainerFunc func(ctx context.Context, input domain.ContainerInput) (*domain.Container, error)

	calls struct {
		CreateContainer []struct {
			Ctx   context.Context
			Input domain.ContainerInput
		}
	}
	lockCreateContainer sync.RWMutex
}

func (mock *containerCreatorMock) CreateContainer(ctx context.Context, input domain.ContainerInput) (*domain.Container, error) {
	if mock.CreateContainerFunc == nil {
		panic("containerCreatorMock.CreateContainerFunc: method is nil but containerCreator.CreateContainer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input domain.ContainerInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateContainer.Lock()
	mock.calls.CreateContainer = append(mock.calls.CreateContainer, callInfo)
	mock.lockCreateContainer.Unlock()
	return mock.CreateContainerFunc(ctx, input)
}

func (mock *containerCreatorMock) CreateContainerCalls() []struct {
	Ctx   context.Context
	Input domain.ContainerInput
} {
	mock.lockCreateContainer.RLock()
	calls := mock.calls.CreateContainer
	mock.lockCreateContainer.RUnlock()
	return calls
}
