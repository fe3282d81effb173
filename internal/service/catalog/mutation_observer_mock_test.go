package catalog

import (
	"sync"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ mutationObserver = &mutationObserverMock{}

type mutationObserverMock struct {
	ObserveMutationFunc func(action domain.AuditAction, err error, elapsed time.Duration)

	calls struct {
		ObserveMutation []struct {
			Action  domain.AuditAction
			Err     error
			Elapsed time.Duration
		}
	}
	lockObserveMutation sync.RWMutex
}

func (mock *mutationObserverMock) ObserveMutation(action domain.AuditAction, err error, elapsed time.Duration) {
	if mock.ObserveMutationFunc == nil {
		panic("mutationObserverMock.ObserveMutationFunc: method is nil but mutationObserver.ObserveMutation was just called")
	}
	callInfo := struct {
		Action  domain.AuditAction
		Err     error
		Elapsed time.Duration
	}{Action: action, Err: err, Elapsed: elapsed}
	mock.lockObserveMutation.Lock()
	mock.calls.ObserveMutation = append(mock.calls.ObserveMutation, callInfo)
	mock.lockObserveMutation.Unlock()
	mock.ObserveMutationFunc(action, err, elapsed)
}

func (mock *mutationObserverMock) ObserveMutationCalls() []struct {
	Action  domain.AuditAction
	Err     error
	Elapsed time.Duration
} {
	mock.lockObserveMutation.RLock()
	calls := mock.calls.ObserveMutation
	mock.lockObserveMutation.RUnlock()
	return calls
}
