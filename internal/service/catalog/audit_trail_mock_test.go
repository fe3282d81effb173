package catalog

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ auditTrail = &auditTrailMock{}

type auditTrailMock struct {
	HistoryOfFunc    func(ctx context.Context, itemCode string) ([]domain.AuditEntry, error)
	QueryFunc        func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	RecentFunc       func(ctx context.Context, count int) ([]domain.AuditEntry, error)
	RecordCreateFunc func(ctx context.Context, after *domain.Container, actor domain.Actor) (*domain.AuditEntry, error)
	RecordDeleteFunc func(ctx context.Context, before *domain.Container, actor domain.Actor) (*domain.AuditEntry, error)
	RecordUpdateFunc func(ctx context.Context, before *domain.Container, after *domain.Container, actor domain.Actor, notes string) (*domain.AuditEntry, error)
	RecordViewFunc   func(ctx context.Context, itemCode string, actor domain.Actor) (*domain.AuditEntry, error)
	VerifyChainFunc  func(ctx context.Context) (domain.ChainReport, error)

	calls struct {
		HistoryOf []struct {
			Ctx      context.Context
			ItemCode string
		}
		Query []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
		Recent []struct {
			Ctx   context.Context
			Count int
		}
		RecordCreate []struct {
			Ctx   context.Context
			After *domain.Container
			Actor domain.Actor
		}
		RecordDelete []struct {
			Ctx    context.Context
			Before *domain.Container
			Actor  domain.Actor
		}
		RecordUpdate []struct {
			Ctx    context.Context
			Before *domain.Container
			After  *domain.Container
			Actor  domain.Actor
			Notes  string
		}
		RecordView []struct {
			Ctx      context.Context
			ItemCode string
			Actor    domain.Actor
		}
		VerifyChain []struct {
			Ctx context.Context
		}
	}
	lockHistoryOf    sync.RWMutex
	lockQuery        sync.RWMutex
	lockRecent       sync.RWMutex
	lockRecordCreate sync.RWMutex
	lockRecordDelete sync.RWMutex
	lockRecordUpdate sync.RWMutex
	lockRecordView   sync.RWMutex
	lockVerifyChain  sync.RWMutex
}

func (mock *auditTrailMock) HistoryOf(ctx context.Context, itemCode string) ([]domain.AuditEntry, error) {
	if mock.HistoryOfFunc == nil {
		panic("auditTrailMock.HistoryOfFunc: method is nil but auditTrail.HistoryOf was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
	}{Ctx: ctx, ItemCode: itemCode}
	mock.lockHistoryOf.Lock()
	mock.calls.HistoryOf = append(mock.calls.HistoryOf, callInfo)
	mock.lockHistoryOf.Unlock()
	return mock.HistoryOfFunc(ctx, itemCode)
}

func (mock *auditTrailMock) HistoryOfCalls() []struct {
	Ctx      context.Context
	ItemCode string
} {
	mock.lockHistoryOf.RLock()
	calls := mock.calls.HistoryOf
	mock.lockHistoryOf.RUnlock()
	return calls
}

func (mock *auditTrailMock) Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if mock.QueryFunc == nil {
		panic("auditTrailMock.QueryFunc: method is nil but auditTrail.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *auditTrailMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *auditTrailMock) Recent(ctx context.Context, count int) ([]domain.AuditEntry, error) {
	if mock.RecentFunc == nil {
		panic("auditTrailMock.RecentFunc: method is nil but auditTrail.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, count)
}

func (mock *auditTrailMock) RecentCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

func (mock *auditTrailMock) RecordCreate(ctx context.Context, after *domain.Container, actor domain.Actor) (*domain.AuditEntry, error) {
	if mock.RecordCreateFunc == nil {
		panic("auditTrailMock.RecordCreateFunc: method is nil but auditTrail.RecordCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		After *domain.Container
		Actor domain.Actor
	}{Ctx: ctx, After: after, Actor: actor}
	mock.lockRecordCreate.Lock()
	mock.calls.RecordCreate = append(mock.calls.RecordCreate, callInfo)
	mock.lockRecordCreate.Unlock()
	return mock.RecordCreateFunc(ctx, after, actor)
}

func (mock *auditTrailMock) RecordCreateCalls() []struct {
	Ctx   context.Context
	After *domain.Container
	Actor domain.Actor
} {
	mock.lockRecordCreate.RLock()
	calls := mock.calls.RecordCreate
	mock.lockRecordCreate.RUnlock()
	return calls
}

func (mock *auditTrailMock) RecordDelete(ctx context.Context, before *domain.Container, actor domain.Actor) (*domain.AuditEntry, error) {
	if mock.RecordDeleteFunc == nil {
		panic("auditTrailMock.RecordDeleteFunc: method is nil but auditTrail.RecordDelete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before *domain.Container
		Actor  domain.Actor
	}{Ctx: ctx, Before: before, Actor: actor}
	mock.lockRecordDelete.Lock()
	mock.calls.RecordDelete = append(mock.calls.RecordDelete, callInfo)
	mock.lockRecordDelete.Unlock()
	return mock.RecordDeleteFunc(ctx, before, actor)
}

func (mock *auditTrailMock) RecordDeleteCalls() []struct {
	Ctx    context.Context
	Before *domain.Container
	Actor  domain.Actor
} {
	mock.lockRecordDelete.RLock()
	calls := mock.calls.RecordDelete
	mock.lockRecordDelete.RUnlock()
	return calls
}

func (mock *auditTrailMock) RecordUpdate(ctx context.Context, before *domain.Container, after *domain.Container, actor domain.Actor, notes string) (*domain.AuditEntry, error) {
	if mock.RecordUpdateFunc == nil {
		panic("auditTrailMock.RecordUpdateFunc: method is nil but auditTrail.RecordUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before *domain.Container
		After  *domain.Container
		Actor  domain.Actor
		Notes  string
	}{Ctx: ctx, Before: before, After: after, Actor: actor, Notes: notes}
	mock.lockRecordUpdate.Lock()
	mock.calls.RecordUpdate = append(mock.calls.RecordUpdate, callInfo)
	mock.lockRecordUpdate.Unlock()
	return mock.RecordUpdateFunc(ctx, before, after, actor, notes)
}

func (mock *auditTrailMock) RecordUpdateCalls() []struct {
	Ctx    context.Context
	Before *domain.Container
	After  *domain.Container
	Actor  domain.Actor
	Notes  string
} {
	mock.lockRecordUpdate.RLock()
	calls := mock.calls.RecordUpdate
	mock.lockRecordUpdate.RUnlock()
	return calls
}

func (mock *auditTrailMock) RecordView(ctx context.Context, itemCode string, actor domain.Actor) (*domain.AuditEntry, error) {
	if mock.RecordViewFunc == nil {
		panic("auditTrailMock.RecordViewFunc: method is nil but auditTrail.RecordView was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
		Actor    domain.Actor
	}{Ctx: ctx, ItemCode: itemCode, Actor: actor}
	mock.lockRecordView.Lock()
	mock.calls.RecordView = append(mock.calls.RecordView, callInfo)
	mock.lockRecordView.Unlock()
	return mock.RecordViewFunc(ctx, itemCode, actor)
}

func (mock *auditTrailMock) RecordViewCalls() []struct {
	Ctx      context.Context
	ItemCode string
	Actor    domain.Actor
} {
	mock.lockRecordView.RLock()
	calls := mock.calls.RecordView
	mock.lockRecordView.RUnlock()
	return calls
}

func (mock *auditTrailMock) VerifyChain(ctx context.Context) (domain.ChainReport, error) {
	if mock.VerifyChainFunc == nil {
		panic("auditTrailMock.VerifyChainFunc: method is nil but auditTrail.VerifyChain was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockVerifyChain.Lock()
	mock.calls.VerifyChain = append(mock.calls.VerifyChain, callInfo)
	mock.lockVerifyChain.Unlock()
	return mock.VerifyChainFunc(ctx)
}

func (mock *auditTrailMock) VerifyChainCalls() []struct {
	Ctx context.Context
} {
	mock.lockVerifyChain.RLock()
	calls := mock.calls.VerifyChain
	mock.lockVerifyChain.RUnlock()
	return calls
}
