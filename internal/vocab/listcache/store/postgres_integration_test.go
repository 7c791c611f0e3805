//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"vocprez/internal/vocab/listcache/store"
	"vocprez/pkg/platform/sentinel"
	"vocprez/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	st, err := store.NewPostgres(s.postgres.DB)
	s.Require().NoError(err)
	s.store = st
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "list_cache"))
}

func (s *PostgresStoreSuite) TestMissingTableReadsAsEmpty() {
	ctx := context.Background()
	_, err := s.postgres.DB.ExecContext(ctx, "DROP TABLE IF EXISTS list_cache")
	s.Require().NoError(err)

	_, err = s.store.Get(ctx, "collections")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpsertReplacesSlot() {
	ctx := context.Background()
	s.Require().NoError(s.store.EnsureSchema(ctx))

	s.Require().NoError(s.store.Put(ctx, "collections", []byte(`[{"id":"P01"}]`)))
	s.Require().NoError(s.store.Put(ctx, "collections", []byte(`[{"id":"P02"}]`)))

	body, err := s.store.Get(ctx, "collections")
	s.Require().NoError(err)
	s.JSONEq(`[{"id":"P02"}]`, string(body))

	var rows int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx, "SELECT count(*) FROM list_cache").Scan(&rows))
	s.Equal(1, rows)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.store.EnsureSchema(ctx))
	s.Require().NoError(s.store.Put(ctx, "conceptschemes", []byte("[]")))

	s.Require().NoError(s.store.Delete(ctx, "conceptschemes"))
	_, err := s.store.Get(ctx, "conceptschemes")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRunInTxRollsBackTogether() {
	ctx := context.Background()
	s.Require().NoError(s.store.EnsureSchema(ctx))
	s.Require().NoError(s.store.Put(ctx, "collections", []byte("[]")))
	s.Require().NoError(s.store.Put(ctx, "conceptschemes", []byte("[]")))

	boom := errors.New("boom")
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		s.Require().NoError(s.store.Delete(ctx, "collections"))
		s.Require().NoError(s.store.Delete(ctx, "conceptschemes"))
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.Get(ctx, "collections")
	s.NoError(err, "rolled back delete leaves the slot in place")

	s.Require().NoError(s.store.RunInTx(ctx, func(ctx context.Context) error {
		return s.store.Delete(ctx, "collections")
	}))
	_, err = s.store.Get(ctx, "collections")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
