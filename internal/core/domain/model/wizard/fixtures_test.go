package wizard_test

import (
	"testing"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	storeA   *directory.Store
	storeB   *directory.Store
	manager1 directory.Manager
	manager2 directory.Manager
}

func newFixture(t *testing.T) fixture {
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

	a, err := directory.NewStore(kernel.NewUUID(), "A001", "StoreA", "서울 강남구 테헤란로 152",
		[]directory.Department{dept("여성", m1)})
	require.NoError(t, err)
	b, err := directory.NewStore(kernel.NewUUID(), "B001", "StoreB", "서울 중구 을지로 30",
		[]directory.Department{dept("남성", m2)})
	require.NoError(t, err)

	return fixture{storeA: a, storeB: b, manager1: m1, manager2: m2}
}

func (f fixture) originSelection(t *testing.T) wizard.Selection {
	t.Helper()
	sel, err := wizard.NewSelection(f.storeA, "여성", f.manager1)
	require.NoError(t, err)
	return sel
}

func (f fixture) destinationSelection(t *testing.T) wizard.Selection {
	t.Helper()
	sel, err := wizard.NewSelection(f.storeB, "남성", f.manager2)
	require.NoError(t, err)
	return sel
}

// atDetails drives a fresh state through the three forward actions.
func (f fixture) atDetails(t *testing.T) wizard.State {
	t.Helper()
	s := wizard.NewState()
	require.NoError(t, s.SetDeliveryType(wizard.StoreToStore))
	require.NoError(t, s.SetOriginStore(f.originSelection(t)))
	require.NoError(t, s.SetDestinationStore(f.destinationSelection(t)))
	return s
}
