package wizard_test

import (
	"testing"
	"time"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlow(t *testing.T, f fixture, now time.Time) *wizard.Flow {
	t.Helper()
	idx, err := directory.NewIndex([]*directory.Store{f.storeA, f.storeB})
	require.NoError(t, err)
	flow, err := wizard.NewFlow(kernel.NewUUID(), idx, now)
	require.NoError(t, err)
	return flow
}

func TestFlow_Lifecycle(t *testing.T) {
	f := newFixture(t)
	t0 := time.Date(2025, 9, 1, 9, 0, 0, 0, kst)
	flow := newFlow(t, f, t0)

	require.NoError(t, flow.Validate())
	assert.Equal(t, wizard.TypeSelect, flow.State().Step())
	assert.Equal(t, 2, flow.Directory().Len())

	t1 := t0.Add(time.Minute)
	require.NoError(t, flow.SetDeliveryType(wizard.StoreToStore, t1))
	require.NoError(t, flow.SetOriginStore(f.originSelection(t), t1))
	require.NoError(t, flow.SetDestinationStore(f.destinationSelection(t), t1))
	require.NoError(t, flow.SetDetails(wizard.Details{ItemType: wizard.ShoppingBag}, t1))
	assert.Equal(t, t1, flow.UpdatedAt())

	flow.MarkSubmitted(t1)
	assert.True(t, flow.Submitted())
	assert.Equal(t, wizard.TypeSelect, flow.State().Step())

	require.NoError(t, flow.SetDeliveryType(wizard.StoreToWarehouse, t1))
	assert.False(t, flow.Submitted())
}

func TestFlow_CloneIsIndependent(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 9, 1, 9, 0, 0, 0, kst)
	flow := newFlow(t, f, now)
	require.NoError(t, flow.SetDeliveryType(wizard.StoreToStore, now))

	clone := flow.Clone()
	require.NoError(t, clone.SetOriginStore(f.originSelection(t), now))

	assert.Equal(t, wizard.OriginSelect, flow.State().Step())
	assert.Equal(t, wizard.DestinationSelect, clone.State().Step())
	assert.Same(t, flow.Directory(), clone.Directory())
}

func TestFlow_RestartAndIdle(t *testing.T) {
	f := newFixture(t)
	t0 := time.Date(2025, 9, 1, 9, 0, 0, 0, kst)
	flow := newFlow(t, f, t0)
	require.NoError(t, flow.SetDeliveryType(wizard.StoreToStore, t0))

	flow.Restart(t0.Add(time.Hour))

	assert.Equal(t, wizard.NewState(), flow.State())
	assert.True(t, flow.IdleSince(t0.Add(2*time.Hour)))
	assert.False(t, flow.IdleSince(t0.Add(time.Hour)))
}

func TestNewFlow_Validation(t *testing.T) {
	_, err := wizard.NewFlow(kernel.UUID{}, nil, time.Now())
	require.Error(t, err)

	var flow *wizard.Flow
	require.ErrorIs(t, flow.Validate(), wizard.ErrFlowIsNotConstructed)
}
