package staging

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ stageReader = &stageReaderMock{}

type stageReaderMock struct {
	ListFunc func(ctx context.Context) ([]domain.StagedContainer, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *stageReaderMock) List(ctx context.Context) ([]domain.StagedContainer, error) {
	if mock.ListFunc == nil {
		panic("stageReaderMock.ListFunc: method is nil but stageReader.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *stageReaderMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
