package access

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ roleStore = &roleStoreMock{}

type roleStoreMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.UserRoleAssignment, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *roleStoreMock) GetByUsername(ctx context.Context, username string) (*domain.UserRoleAssignment, error) {
	if mock.GetByUsernameFunc == nil {
		panic("roleStoreMock.GetByUsernameFunc: method is nil but roleStore.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *roleStoreMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}
