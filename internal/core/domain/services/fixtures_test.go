package services_test

import (
	"testing"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

type directoryFixture struct {
	index    *directory.Index
	storeA   *directory.Store
	storeB   *directory.Store
	storeC   *directory.Store
	manager1 directory.Manager
	manager2 directory.Manager
	manager3 directory.Manager
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
	store := func(code, name, addr string, ds ...directory.Department) *directory.Store {
		s, err := directory.NewStore(kernel.NewUUID(), code, name, addr, ds)
		require.NoError(t, err)
		return s
	}

	m1 := mk("manager1", "01011112222")
	m2 := mk("manager2", "01033334444")
	m3 := mk("Park Jisoo", "0212345678")

	a := store("A001", "StoreA", "서울 강남구 테헤란로 152", dept("여성", m1))
	b := store("B001", "StoreB", "서울 중구 을지로 30", dept("남성", m2))
	c := store("GN02", "강남 플래그십", "서울 서초구 강남대로 373", dept("여성", m3), dept("아동", mk("manager4", "01055556666")))

	idx, err := directory.NewIndex([]*directory.Store{a, b, c})
	require.NoError(t, err)

	return directoryFixture{index: idx, storeA: a, storeB: b, storeC: c, manager1: m1, manager2: m2, manager3: m3}
}
