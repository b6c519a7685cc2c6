package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx overrides only the lifecycle methods; the embedded interface panics
// on anything else, which no test path touches.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), db, func(pgx.Tx) error {
			panic("unexpected")
		})
	})
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestWithTransactionBeginFailure(t *testing.T) {
	db := &fakeBeginner{beginErr: errors.New("pool exhausted")}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
}

func TestWithTransactionResult(t *testing.T) {
	t.Run("returns value on commit", func(t *testing.T) {
		tx := &fakeTx{}
		db := &fakeBeginner{tx: tx}

		got, err := WithTransactionResult(context.Background(), db, func(pgx.Tx) (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.True(t, tx.committed)
	})

	t.Run("returns zero value on error", func(t *testing.T) {
		tx := &fakeTx{}
		db := &fakeBeginner{tx: tx}

		got, err := WithTransactionResult(context.Background(), db, func(pgx.Tx) (int, error) {
			return 42, errors.New("boom")
		})

		assert.Error(t, err)
		assert.Zero(t, got)
		assert.True(t, tx.rolledBack)
	})

	t.Run("commit failure surfaces", func(t *testing.T) {
		tx := &fakeTx{commitErr: errors.New("deadlock")}
		db := &fakeBeginner{tx: tx}

		_, err := WithTransactionResult(context.Background(), db, func(pgx.Tx) (int, error) {
			return 1, nil
		})

		assert.ErrorContains(t, err, "failed to commit transaction")
	})
}
