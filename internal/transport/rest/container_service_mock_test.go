package rest

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ containerService = &containerServiceMock{}

type containerServiceMock struct {
	CreateContainerFunc func(ctx context.Context, input domain.ContainerInput) (*domain.Container, error)
	DeleteContainerFunc func(ctx context.Context, key string) error
	GetHistoryFunc      func(ctx context.Context, key string) ([]domain.AuditEntry, error)
	ListContainersFunc  func(ctx context.Context) ([]domain.Container, error)
	UpdateContainerFunc func(ctx context.Context, originalKey string, input domain.ContainerInput) (*domain.Container, error)
	ViewContainerFunc   func(ctx context.Context, key string) (*domain.Container, error)

	calls struct {
		CreateContainer []struct {
			Ctx   context.Context
			Input domain.ContainerInput
		}
		DeleteContainer []struct {
			Ctx context.Context
			Key string
		}
		GetHistory []struct {
			Ctx context.Context
			Key string
		}
		ListContainers []struct {
			Ctx context.Context
		}
		UpdateContainer []struct {
			Ctx         context.Context
			OriginalKey string
			Input       domain.ContainerInput
		}
		ViewContainer []struct {
			Ctx context.Context
			Key string
		}
	}
	lockCreateContainer sync.RWMutex
	lockDeleteContainer sync.RWMutex
	lockGetHistory      sync.RWMutex
	lockListContainers  sync.RWMutex
	lockUpdateContainer sync.RWMutex
	lockViewContainer   sync.RWMutex
}

func (mock *containerServiceMock) CreateContainer(ctx context.Context, input domain.ContainerInput) (*domain.Container, error) {
	if mock.CreateContainerFunc == nil {
		panic("containerServiceMock.CreateContainerFunc: method is nil but containerService.CreateContainer was just called")
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

func (mock *containerServiceMock) CreateContainerCalls() []struct {
	Ctx   context.Context
	Input domain.ContainerInput
} {
	mock.lockCreateContainer.RLock()
	calls := mock.calls.CreateContainer
	mock.lockCreateContainer.RUnlock()
	return calls
}

func (mock *containerServiceMock) DeleteContainer(ctx context.Context, key string) error {
	if mock.DeleteContainerFunc == nil {
		panic("containerServiceMock.DeleteContainerFunc: method is nil but containerService.DeleteContainer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDeleteContainer.Lock()
	mock.calls.DeleteContainer = append(mock.calls.DeleteContainer, callInfo)
	mock.lockDeleteContainer.Unlock()
	return mock.DeleteContainerFunc(ctx, key)
}

func (mock *containerServiceMock) DeleteContainerCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDeleteContainer.RLock()
	calls := mock.calls.DeleteContainer
	mock.lockDeleteContainer.RUnlock()
	return calls
}

func (mock *containerServiceMock) GetHistory(ctx context.Context, key string) ([]domain.AuditEntry, error) {
	if mock.GetHistoryFunc == nil {
		panic("containerServiceMock.GetHistoryFunc: method is nil but containerService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, key)
}

func (mock *containerServiceMock) GetHistoryCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGetHistory.RLock()
	calls := mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}

func (mock *containerServiceMock) ListContainers(ctx context.Context) ([]domain.Container, error) {
	if mock.ListContainersFunc == nil {
		panic("containerServiceMock.ListContainersFunc: method is nil but containerService.ListContainers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListContainers.Lock()
	mock.calls.ListContainers = append(mock.calls.ListContainers, callInfo)
	mock.lockListContainers.Unlock()
	return mock.ListContainersFunc(ctx)
}

func (mock *containerServiceMock) ListContainersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListContainers.RLock()
	calls := mock.calls.ListContainers
	mock.lockListContainers.RUnlock()
	return calls
}

func (mock *containerServiceMock) UpdateContainer(ctx context.Context, originalKey string, input domain.ContainerInput) (*domain.Container, error) {
	if mock.UpdateContainerFunc == nil {
		panic("containerServiceMock.UpdateContainerFunc: method is nil but containerService.UpdateContainer was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OriginalKey string
		Input       domain.ContainerInput
	}{Ctx: ctx, OriginalKey: originalKey, Input: input}
	mock.lockUpdateContainer.Lock()
	mock.calls.UpdateContainer = append(mock.calls.UpdateContainer, callInfo)
	mock.lockUpdateContainer.Unlock()
	return mock.UpdateContainerFunc(ctx, originalKey, input)
}

func (mock *containerServiceMock) UpdateContainerCalls() []struct {
	Ctx         context.Context
	OriginalKey string
	Input       domain.ContainerInput
} {
	mock.lockUpdateContainer.RLock()
	calls := mock.calls.UpdateContainer
	mock.lockUpdateContainer.RUnlock()
	return calls
}

func (mock *containerServiceMock) ViewContainer(ctx context.Context, key string) (*domain.Container, error) {
	if mock.ViewContainerFunc == nil {
		panic("containerServiceMock.ViewContainerFunc: method is nil but containerService.ViewContainer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockViewContainer.Lock()
	mock.calls.ViewContainer = append(mock.calls.ViewContainer, callInfo)
	mock.lockViewContainer.Unlock()
	return mock.ViewContainerFunc(ctx, key)
}

func (mock *containerServiceMock) ViewContainerCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockViewContainer.RLock()
	calls := mock.calls.ViewContainer
	mock.lockViewContainer.RUnlock()
	return calls
}
