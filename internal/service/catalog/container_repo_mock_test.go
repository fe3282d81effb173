package catalog

import (
	"context"
	"sync"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

var _ containerRepo = &containerRepoMock{}

type containerRepoMock struct {
	CreateFunc       func(ctx context.Context, c domain.Container) (*domain.Container, error)
	DeleteFunc       func(ctx context.Context, itemCode string) error
	ExistsFunc       func(ctx context.Context, itemCode string) (bool, error)
	GetByKeyFunc     func(ctx context.Context, itemCode string) (*domain.Container, error)
	GetForUpdateFunc func(ctx context.Context, itemCode string) (*domain.Container, error)
	ListFunc         func(ctx context.Context) ([]domain.Container, error)
	RekeyFunc        func(ctx context.Context, oldItemCode string, c domain.Container) (*domain.Container, error)
	UpdateFunc       func(ctx context.Context, itemCode string, c domain.Container, expectedVersion int) (*domain.Container, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Container
		}
		Delete []struct {
			Ctx      context.Context
			ItemCode string
		}
		Exists []struct {
			Ctx      context.Context
			ItemCode string
		}
		GetByKey []struct {
			Ctx      context.Context
			ItemCode string
		}
		GetForUpdate []struct {
			Ctx      context.Context
			ItemCode string
		}
		List []struct {
			Ctx context.Context
		}
		Rekey []struct {
			Ctx         context.Context
			OldItemCode string
			C           domain.Container
		}
		Update []struct {
			Ctx             context.Context
			ItemCode        string
			C               domain.Container
			ExpectedVersion int
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockExists       sync.RWMutex
	lockGetByKey     sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockList         sync.RWMutex
	lockRekey        sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *containerRepoMock) Create(ctx context.Context, c domain.Container) (*domain.Container, error) {
	if mock.CreateFunc == nil {
		panic("containerRepoMock.CreateFunc: method is nil but containerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Container
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *containerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Container
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *containerRepoMock) Delete(ctx context.Context, itemCode string) error {
	if mock.DeleteFunc == nil {
		panic("containerRepoMock.DeleteFunc: method is nil but containerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
	}{Ctx: ctx, ItemCode: itemCode}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, itemCode)
}

func (mock *containerRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	ItemCode string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *containerRepoMock) Exists(ctx context.Context, itemCode string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("containerRepoMock.ExistsFunc: method is nil but containerRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
	}{Ctx: ctx, ItemCode: itemCode}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, itemCode)
}

func (mock *containerRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	ItemCode string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *containerRepoMock) GetByKey(ctx context.Context, itemCode string) (*domain.Container, error) {
	if mock.GetByKeyFunc == nil {
		panic("containerRepoMock.GetByKeyFunc: method is nil but containerRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
	}{Ctx: ctx, ItemCode: itemCode}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, itemCode)
}

func (mock *containerRepoMock) GetByKeyCalls() []struct {
	Ctx      context.Context
	ItemCode string
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *containerRepoMock) GetForUpdate(ctx context.Context, itemCode string) (*domain.Container, error) {
	if mock.GetForUpdateFunc == nil {
		panic("containerRepoMock.GetForUpdateFunc: method is nil but containerRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemCode string
	}{Ctx: ctx, ItemCode: itemCode}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, itemCode)
}

func (mock *containerRepoMock) GetForUpdateCalls() []struct {
	Ctx      context.Context
	ItemCode string
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *containerRepoMock) List(ctx context.Context) ([]domain.Container, error) {
	if mock.ListFunc == nil {
		panic("containerRepoMock.ListFunc: method is nil but containerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *containerRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *containerRepoMock) Rekey(ctx context.Context, oldItemCode string, c domain.Container) (*domain.Container, error) {
	if mock.RekeyFunc == nil {
		panic("containerRepoMock.RekeyFunc: method is nil but containerRepo.Rekey was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OldItemCode string
		C           domain.Container
	}{Ctx: ctx, OldItemCode: oldItemCode, C: c}
	mock.lockRekey.Lock()
	mock.calls.Rekey = append(mock.calls.Rekey, callInfo)
	mock.lockRekey.Unlock()
	return mock.RekeyFunc(ctx, oldItemCode, c)
}

func (mock *containerRepoMock) RekeyCalls() []struct {
	Ctx         context.Context
	OldItemCode string
	C           domain.Container
} {
	mock.lockRekey.RLock()
	calls := mock.calls.Rekey
	mock.lockRekey.RUnlock()
	return calls
}

func (mock *containerRepoMock) Update(ctx context.Context, itemCode string, c domain.Container, expectedVersion int) (*domain.Container, error) {
	if mock.UpdateFunc == nil {
		panic("containerRepoMock.UpdateFunc: method is nil but containerRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ItemCode        string
		C               domain.Container
		ExpectedVersion int
	}{Ctx: ctx, ItemCode: itemCode, C: c, ExpectedVersion: expectedVersion}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, itemCode, c, expectedVersion)
}

func (mock *containerRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	ItemCode        string
	C               domain.Container
	ExpectedVersion int
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
