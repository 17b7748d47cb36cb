package postgres_test

import (
	"context"

	"storecourier/internal/adapters/out/postgres/directoryrepo"
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
)

func (suite *PostgresIntegrationTestSuite) TestDirectoryRepository_SaveAndList() {
	ctx := context.Background()
	repo := directoryrepo.NewGormDirectoryRepository(suite.db)

	storeB := suite.newStore("B001", "StoreB", "서울 중구 을지로 30",
		dept{"남성", []string{"manager2"}},
		dept{"아동", []string{"manager3", "manager4"}},
	)
	storeA := suite.newStore("A001", "StoreA", "서울 강남구 테헤란로 152",
		dept{"여성", []string{"manager1"}},
	)
	suite.Require().NoError(repo.Save(ctx, storeB))
	suite.Require().NoError(repo.Save(ctx, storeA))

	stores, err := repo.ListStores(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stores, 2)

	suite.Equal("StoreA", stores[0].Name())
	suite.Equal("StoreB", stores[1].Name())
	suite.Equal([]string{"남성", "아동"}, stores[1].DepartmentLabels())

	kids, ok := stores[1].Department("아동")
	suite.Require().True(ok)
	suite.Require().Len(kids.Managers(), 2)
	suite.Equal("manager3", kids.Managers()[0].Name())
	suite.Equal("manager4", kids.Managers()[1].Name())
	suite.Equal("0212345678", kids.Managers()[0].Phone().Digits())
}

func (suite *PostgresIntegrationTestSuite) TestDirectoryRepository_SaveReplacesManagers() {
	ctx := context.Background()
	repo := directoryrepo.NewGormDirectoryRepository(suite.db)

	id := kernel.NewUUID()
	first := suite.newStoreWithID(id, "A001", "StoreA", "서울 강남구 테헤란로 152",
		dept{"여성", []string{"manager1", "manager5"}},
	)
	suite.Require().NoError(repo.Save(ctx, first))

	second := suite.newStoreWithID(id, "A001", "StoreA", "서울 강남구 테헤란로 152",
		dept{"남성", []string{"manager6"}},
	)
	suite.Require().NoError(repo.Save(ctx, second))

	stores, err := repo.ListStores(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stores, 1)
	suite.Equal([]string{"남성"}, stores[0].DepartmentLabels())
	suite.Len(stores[0].Managers(), 1)
}

func (suite *PostgresIntegrationTestSuite) TestDirectoryRepository_StoreWithoutManagers() {
	ctx := context.Background()
	repo := directoryrepo.NewGormDirectoryRepository(suite.db)

	suite.Require().NoError(repo.Save(ctx, suite.newStore("W001", "물류센터", "경기 이천시 마장면")))

	stores, err := repo.ListStores(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stores, 1)
	suite.Empty(stores[0].DepartmentLabels())
}

type dept struct {
	label    string
	managers []string
}

func (suite *PostgresIntegrationTestSuite) newStore(code, name, addr string, depts ...dept) *directory.Store {
	return suite.newStoreWithID(kernel.NewUUID(), code, name, addr, depts...)
}

func (suite *PostgresIntegrationTestSuite) newStoreWithID(
	id kernel.UUID,
	code, name, addr string,
	depts ...dept,
) *directory.Store {
	phone, err := kernel.NewPhone("0212345678")
	suite.Require().NoError(err)

	departments := make([]directory.Department, 0, len(depts))
	for _, d := range depts {
		managers := make([]directory.Manager, 0, len(d.managers))
		for _, n := range d.managers {
			m, mErr := directory.NewManager(kernel.NewUUID(), n, phone)
			suite.Require().NoError(mErr)
			managers = append(managers, m)
		}
		department, dErr := directory.NewDepartment(d.label, managers)
		suite.Require().NoError(dErr)
		departments = append(departments, department)
	}

	store, err := directory.NewStore(id, code, name, addr, departments)
	suite.Require().NoError(err)
	return store
}
