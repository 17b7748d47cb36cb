package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlowRepository struct{ mock.Mock }

func (m *MockFlowRepository) Add(ctx context.Context, flow *wizard.Flow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

func (m *MockFlowRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Flow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Flow), args.Error(1)
}

func (m *MockFlowRepository) Update(ctx context.Context, flow *wizard.Flow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

func (m *MockFlowRepository) RemoveIdle(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

type MockDirectoryService struct{ mock.Mock }

func (m *MockDirectoryService) ListStores(ctx context.Context) ([]*directory.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*directory.Store), args.Error(1)
}

type MockAddressNormalizer struct{ mock.Mock }

func (m *MockAddressNormalizer) NormalizePair(
	ctx context.Context,
	origin, destination string,
) (address.Converted, address.Converted) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(address.Converted), args.Get(1).(address.Converted)
}

type MockCourierGateway struct{ mock.Mock }

func (m *MockCourierGateway) Submit(ctx context.Context, request carrier.SubmissionRequest) (carrier.Result, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(carrier.Result), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, request ports.SubmittedRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (ports.SubmittedRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.SubmittedRequest), args.Error(1)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

var kst = time.FixedZone("KST", 9*60*60)

// fixedClock always returns 2025-09-01 10:15:30 KST.
func fixedClock() commands.Clock {
	now := time.Date(2025, 9, 1, 10, 15, 30, 0, kst)
	return func() time.Time { return now }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type directoryFixture struct {
	stores   []*directory.Store
	index    *directory.Index
	storeA   *directory.Store
	storeB   *directory.Store
	manager1 directory.Manager
	manager2 directory.Manager
}

func newDirectoryFixture(t *testing.T) directoryFixture {
	t.Helper()

	mk := func(name, phone string) directory.Manager {
		p, err := kernel.NewPhone(phone)
		require.NoError(t, err)
		m, err := directory.NewManager(kernel.NewUUID(), name, p)
		require.NoError(t, err)
		return m
	}
	dept := func(label string, ms ...directory.Manager) directory.Department {
		d, err := directory.NewDepartment(label, ms)
		require.NoError(t, err)
		return d
	}

	m1 := mk("manager1", "01011112222")
	m2 := mk("manager2", "01033334444")

	a, err := directory.NewStore(kernel.NewUUID(), "A001", "StoreA", "서울 강남구 테헤란로 152", []directory.Department{dept("여성", m1)})
	require.NoError(t, err)
	b, err := directory.NewStore(kernel.NewUUID(), "B001", "StoreB", "서울 중구 을지로 30", []directory.Department{dept("남성", m2)})
	require.NoError(t, err)

	stores := []*directory.Store{a, b}
	idx, err := directory.NewIndex(stores)
	require.NoError(t, err)

	return directoryFixture{stores: stores, index: idx, storeA: a, storeB: b, manager1: m1, manager2: m2}
}

func (f directoryFixture) newFlow(t *testing.T) *wizard.Flow {
	t.Helper()
	flow, err := wizard.NewFlow(kernel.NewUUID(), f.index, fixedClock()())
	require.NoError(t, err)
	return flow
}

// flowAtDetails walks a flow to DetailsEntry with StoreA/여성/manager1 -> StoreB/남성/manager2.
func (f directoryFixture) flowAtDetails(t *testing.T, details wizard.Details) *wizard.Flow {
	t.Helper()
	now := fixedClock()()
	flow := f.newFlow(t)

	origin, err := wizard.NewSelection(f.storeA, "여성", f.manager1)
	require.NoError(t, err)
	destination, err := wizard.NewSelection(f.storeB, "남성", f.manager2)
	require.NoError(t, err)

	require.NoError(t, flow.SetDeliveryType(wizard.StoreToStore, now))
	require.NoError(t, flow.SetOriginStore(origin, now))
	require.NoError(t, flow.SetDestinationStore(destination, now))
	require.NoError(t, flow.SetDetails(details, now))
	return flow
}

func completeDetails() wizard.Details {
	return wizard.Details{
		ItemType:       wizard.ShoppingBag,
		DeliveryMethod: wizard.Motorcycle,
		Route:          wizard.OneWay,
		SpecialOption:  wizard.NoSpecialOption,
	}
}
