package rest

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ userInfoService = &userInfoServiceMock{}

type userInfoServiceMock struct {
	UserInfoFunc func(ctx context.Context, username string) domain.UserDisplayInfo

	calls struct {
		UserInfo []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockUserInfo sync.RWMutex
}

func (mock *userInfoServiceMock) UserInfo(ctx context.Context, username string) domain.UserDisplayInfo {
	if mock.UserInfoFunc == nil {
		panic("userInfoServiceMock.UserInfoFunc: method is nil but userInfoService.UserInfo was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUserInfo.Lock()
	mock.calls.UserInfo = append(mock.calls.UserInfo, callInfo)
	mock.lockUserInfo.Unlock()
	return mock.UserInfoFunc(ctx, username)
}

func (mock *userInfoServiceMock) UserInfoCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUserInfo.RLock()
	calls := mock.calls.UserInfo
	mock.lockUserInfo.RUnlock()
	return calls
}
