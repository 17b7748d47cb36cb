package queries_test

import (
	"context"
	"testing"
	"time"

	"storecourier/internal/core/application/usecases/queries"
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlowRepository struct{ mock.Mock }

func (m *MockFlowRepository) Add(ctx context.Context, flow *wizard.Flow) error {
	return m.Called(ctx, flow).Error(0)
}

func (m *MockFlowRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Flow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Flow), args.Error(1)
}

func (m *MockFlowRepository) Update(ctx context.Context, flow *wizard.Flow) error {
	return m.Called(ctx, flow).Error(0)
}

func (m *MockFlowRepository) RemoveIdle(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

type flowFixture struct {
	flow     *wizard.Flow
	storeA   *directory.Store
	storeB   *directory.Store
	manager1 directory.Manager
	manager2 directory.Manager
}

// newFlowFixture returns a flow at DestinationSelect with StoreA/여성/manager1 as origin.
func newFlowFixture(t *testing.T) flowFixture {
	t.Helper()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

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
	m2 := mk("manager2", "0212345678")
	a, err := directory.NewStore(kernel.NewUUID(), "A001", "StoreA", "서울 강남구", []directory.Department{dept("여성", m1)})
	require.NoError(t, err)
	b, err := directory.NewStore(kernel.NewUUID(), "B001", "StoreB", "서울 중구", []directory.Department{
		dept("남성", m2), dept("아동", mk("manager3", "01055556666")),
	})
	require.NoError(t, err)
	idx, err := directory.NewIndex([]*directory.Store{a, b})
	require.NoError(t, err)

	flow, err := wizard.NewFlow(kernel.NewUUID(), idx, now)
	require.NoError(t, err)
	origin, err := wizard.NewSelection(a, "여성", m1)
	require.NoError(t, err)
	require.NoError(t, flow.SetDeliveryType(wizard.StoreToStore, now))
	require.NoError(t, flow.SetOriginStore(origin, now))

	return flowFixture{flow: flow, storeA: a, storeB: b, manager1: m1, manager2: m2}
}

func TestGetFlowQueryHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, err := queries.NewGetFlowQuery(fx.flow.ID())
	require.NoError(t, err)

	// Act
	resp, err := queries.NewGetFlowQueryHandler(flows).Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fx.flow.ID(), resp.ID)
	assert.Equal(t, 3, resp.Step)
	assert.Equal(t, "DestinationSelect", resp.StepName)
	assert.Equal(t, "매장 ↔ 매장", resp.DeliveryType)
	require.NotNil(t, resp.Origin)
	assert.Equal(t, "StoreA 여성 - manager1", resp.Origin.DisplayName)
	assert.Equal(t, "010-1111-2222", resp.Origin.ManagerPhone)
	assert.Nil(t, resp.Destination)
	assert.Empty(t, resp.Details.ItemType)
	assert.False(t, resp.Submitted)
}

func TestGetFlowQueryHandler_Handle_NotConstructed(t *testing.T) {
	flows := new(MockFlowRepository)

	_, err := queries.NewGetFlowQueryHandler(flows).Handle(t.Context(), queries.GetFlowQuery{})

	require.ErrorIs(t, err, queries.ErrGetFlowQueryIsNotConstructed)
	flows.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSearchStoresQueryHandler_Handle_DestinationMarksOrigin(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, err := queries.NewSearchStoresQuery(fx.flow.ID(), services.DestinationSide, "")
	require.NoError(t, err)

	// Act
	stores, err := queries.NewSearchStoresQueryHandler(flows).Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, fx.storeA.ID(), stores[0].ID)
	assert.False(t, stores[0].Selectable)
	assert.True(t, stores[1].Selectable)
	assert.Equal(t, []string{"남성", "아동"}, stores[1].Departments)
}

func TestSearchStoresQueryHandler_Handle_MatchesManagerName(t *testing.T) {
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, _ := queries.NewSearchStoresQuery(fx.flow.ID(), services.OriginSide, "MANAGER3")

	stores, err := queries.NewSearchStoresQueryHandler(flows).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "StoreB", stores[0].Name)
	assert.True(t, stores[0].Selectable)
}

func TestNewSearchStoresQuery_InvalidSide(t *testing.T) {
	_, err := queries.NewSearchStoresQuery(kernel.NewUUID(), services.UnknownSide, "x")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListManagersQueryHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, err := queries.NewListManagersQuery(fx.flow.ID(), services.DestinationSide, fx.storeB.ID(), "남성")
	require.NoError(t, err)

	// Act
	managers, err := queries.NewListManagersQueryHandler(flows).Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, fx.manager2.ID(), managers[0].ID)
	assert.Equal(t, "0212345678", managers[0].Phone)
	assert.Equal(t, "02-1234-5678", managers[0].PhoneDisplay)
}

func TestListManagersQueryHandler_Handle_OriginStoreOnDestinationSide(t *testing.T) {
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, _ := queries.NewListManagersQuery(fx.flow.ID(), services.DestinationSide, fx.storeA.ID(), "여성")

	_, err := queries.NewListManagersQueryHandler(flows).Handle(ctx, query)

	require.ErrorIs(t, err, wizard.ErrSameStoreConflict)
}

func TestListManagersQueryHandler_Handle_UnknownDepartment(t *testing.T) {
	ctx := t.Context()
	fx := newFlowFixture(t)
	flows := new(MockFlowRepository)
	flows.On("Get", ctx, fx.flow.ID()).Return(fx.flow, nil).Once()
	query, _ := queries.NewListManagersQuery(fx.flow.ID(), services.OriginSide, fx.storeB.ID(), "잡화")

	_, err := queries.NewListManagersQueryHandler(flows).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewListSubmittedRequestsQuery_Limits(t *testing.T) {
	q, err := queries.NewListSubmittedRequestsQuery(0, nil)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultSubmittedRequestsLimit, q.Limit())

	_, err = queries.NewListSubmittedRequestsQuery(queries.MaxSubmittedRequestsLimit+1, nil)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListSubmittedRequestsQuery(10, &kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
