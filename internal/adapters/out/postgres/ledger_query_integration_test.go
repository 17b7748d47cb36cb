package postgres_test

import (
	"context"
	"time"

	"storecourier/internal/core/application/usecases/queries"
)

func (suite *PostgresIntegrationTestSuite) TestListSubmittedRequests_NewestFirstWithLimit() {
	ctx := context.Background()
	repo := suite.factory.Create().RequestRepository()

	base := time.Date(2025, 9, 1, 1, 0, 0, 0, time.UTC)
	older := newLedgerEntry(base)
	middle := newLedgerEntry(base.Add(time.Hour))
	newest := newLedgerEntry(base.Add(2 * time.Hour))
	suite.Require().NoError(repo.Add(ctx, older))
	suite.Require().NoError(repo.Add(ctx, middle))
	suite.Require().NoError(repo.Add(ctx, newest))

	query, err := queries.NewListSubmittedRequestsQuery(2, nil)
	suite.Require().NoError(err)

	rows, err := queries.NewListSubmittedRequestsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.True(rows[0].ID.IsEqual(newest.ID))
	suite.True(rows[1].ID.IsEqual(middle.ID))
	suite.Equal("20250901111500", rows[0].PickupDate)
	suite.Equal(newest.Payload.Memo, rows[0].Memo)
	suite.Equal("매장 ↔ 매장", rows[0].DeliveryType)
	suite.True(rows[0].FlowID.IsEqual(newest.FlowID))
}

func (suite *PostgresIntegrationTestSuite) TestListSubmittedRequests_FilterByStore() {
	ctx := context.Background()
	repo := suite.factory.Create().RequestRepository()

	now := time.Now().UTC()
	asOrigin := newLedgerEntry(now)
	asDestination := newLedgerEntry(now.Add(time.Minute))
	asDestination.DestinationStoreID = asOrigin.OriginStoreID
	unrelated := newLedgerEntry(now.Add(2 * time.Minute))

	suite.Require().NoError(repo.Add(ctx, asOrigin))
	suite.Require().NoError(repo.Add(ctx, asDestination))
	suite.Require().NoError(repo.Add(ctx, unrelated))

	storeID := asOrigin.OriginStoreID
	query, err := queries.NewListSubmittedRequestsQuery(0, &storeID)
	suite.Require().NoError(err)

	rows, err := queries.NewListSubmittedRequestsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].ID.IsEqual(asDestination.ID))
	suite.True(rows[1].ID.IsEqual(asOrigin.ID))
}

func (suite *PostgresIntegrationTestSuite) TestListSubmittedRequests_EmptyLedger() {
	query, err := queries.NewListSubmittedRequestsQuery(0, nil)
	suite.Require().NoError(err)

	rows, err := queries.NewListSubmittedRequestsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}
