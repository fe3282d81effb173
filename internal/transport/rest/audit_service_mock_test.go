package rest

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	QueryAuditLogsFunc   func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	RecentActivityFunc   func(ctx context.Context, count int) ([]domain.AuditEntry, error)
	VerifyAuditChainFunc func(ctx context.Context) (domain.ChainReport, error)

	calls struct {
		QueryAuditLogs []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
		RecentActivity []struct {
			Ctx   context.Context
			Count int
		}
		VerifyAuditChain []struct {
			Ctx context.Context
		}
	}
	lockQueryAuditLogs   sync.RWMutex
	lockRecentActivity   sync.RWMutex
	lockVerifyAuditChain sync.RWMutex
}

func (mock *auditServiceMock) QueryAuditLogs(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if mock.QueryAuditLogsFunc == nil {
		panic("auditServiceMock.QueryAuditLogsFunc: method is nil but auditService.QueryAuditLogs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockQueryAuditLogs.Lock()
	mock.calls.QueryAuditLogs = append(mock.calls.QueryAuditLogs, callInfo)
	mock.lockQueryAuditLogs.Unlock()
	return mock.QueryAuditLogsFunc(ctx, f)
}

func (mock *auditServiceMock) QueryAuditLogsCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockQueryAuditLogs.RLock()
	calls := mock.calls.QueryAuditLogs
	mock.lockQueryAuditLogs.RUnlock()
	return calls
}

func (mock *auditServiceMock) RecentActivity(ctx context.Context, count int) ([]domain.AuditEntry, error) {
	if mock.RecentActivityFunc == nil {
		panic("auditServiceMock.RecentActivityFunc: method is nil but auditService.RecentActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockRecentActivity.Lock()
	mock.calls.RecentActivity = append(mock.calls.RecentActivity, callInfo)
	mock.lockRecentActivity.Unlock()
	return mock.RecentActivityFunc(ctx, count)
}

func (mock *auditServiceMock) RecentActivityCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockRecentActivity.RLock()
	calls := mock.calls.RecentActivity
	mock.lockRecentActivity.RUnlock()
	return calls
}

func (mock *auditServiceMock) VerifyAuditChain(ctx context.Context) (domain.ChainReport, error) {
	if mock.VerifyAuditChainFunc == nil {
		panic("auditServiceMock.VerifyAuditChainFunc: method is nil but auditService.VerifyAuditChain was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockVerifyAuditChain.Lock()
	mock.calls.VerifyAuditChain = append(mock.calls.VerifyAuditChain, callInfo)
	mock.lockVerifyAuditChain.Unlock()
	return mock.VerifyAuditChainFunc(ctx)
}

func (mock *auditServiceMock) VerifyAuditChainCalls() []struct {
	Ctx context.Context
} {
	mock.lockVerifyAuditChain.RLock()
	calls := mock.calls.VerifyAuditChain
	mock.lockVerifyAuditChain.RUnlock()
	return calls
}
