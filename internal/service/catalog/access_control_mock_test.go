package catalog

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ accessControl = &accessControlMock{}

type accessControlMock struct {
	AuthorizeFunc func(ctx context.Context, username string, c domain.Capability) (domain.Role, error)

	calls struct {
		Authorize []struct {
			Ctx      context.Context
			Username string
			C        domain.Capability
		}
	}
	lockAuthorize sync.RWMutex
}

func (mock *accessControlMock) Authorize(ctx context.Context, username string, c domain.Capability) (domain.Role, error) {
	if mock.AuthorizeFunc == nil {
		panic("accessControlMock.AuthorizeFunc: method is nil but accessControl.Authorize was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		C        domain.Capability
	}{Ctx: ctx, Username: username, C: c}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, username, c)
}

func (mock *accessControlMock) AuthorizeCalls() []struct {
	Ctx      context.Context
	Username string
	C        domain.Capability
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}
