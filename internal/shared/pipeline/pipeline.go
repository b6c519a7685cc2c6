// Package pipeline runs the mutation sequence shared by every catalog entity
// kind: resolve-existing, uniqueness check, referential check, apply. Each
// domain service plugs in one Ops record; the control flow lives here once.
//
// Every run executes inside a single transaction, so the check-then-write span
// cannot interleave with a concurrent mutation's writes. Steps report expected
// rejections as apperr values; any other error surfaces as an internal failure
// with detail kept server-side.
package pipeline

import (
	"context"

	"github.com/jackc/pgx/v5"

	"catalogo-backend/internal/shared/apperr"
	"catalogo-backend/pkg/database"
)

// Ops configures the pipeline for one entity kind. Steps that do not apply to
// a kind are left nil: parents have no references to check, books have no
// dependents.
type Ops[E any] struct {
	// Resolve fetches the current row inside the transaction; nil means the id
	// does not exist.
	Resolve func(ctx context.Context, tx pgx.Tx, id int64) (*E, error)

	// NotFound builds the kind's typed not-found rejection.
	NotFound func() error

	// CheckUnique rejects with a typed conflict when the candidate's natural
	// key is already taken. excludeID is 0 on create, otherwise the id of the
	// row being updated (so a row never collides with itself).
	CheckUnique func(ctx context.Context, tx pgx.Tx, candidate *E, excludeID int64) error

	// SameKey reports whether the natural key is unchanged between the stored
	// row and the merged candidate. When true the uniqueness lookup is skipped
	// entirely on update.
	SameKey func(stored, candidate *E) bool

	// CheckReferences rejects with a typed referential error when a foreign
	// key on the candidate does not resolve.
	CheckReferences func(ctx context.Context, tx pgx.Tx, candidate *E) error

	// CheckDependents rejects deletion while dependent rows reference the id.
	CheckDependents func(ctx context.Context, tx pgx.Tx, id int64) error

	Insert func(ctx context.Context, tx pgx.Tx, candidate *E) (*E, error)
	Update func(ctx context.Context, tx pgx.Tx, candidate *E) (*E, error)
	Delete func(ctx context.Context, tx pgx.Tx, id int64) error
}

type Pipeline[E any] struct {
	db  database.Beginner
	ops Ops[E]
}

func New[E any](db database.Beginner, ops Ops[E]) *Pipeline[E] {
	return &Pipeline[E]{db: db, ops: ops}
}

// Create runs uniqueness and referential checks on the already-validated
// candidate, then inserts it. A failed check aborts before any write.
func (p *Pipeline[E]) Create(ctx context.Context, candidate *E) (*E, error) {
	created, err := database.WithTransactionResult(ctx, p.db, func(tx pgx.Tx) (*E, error) {
		if p.ops.CheckUnique != nil {
			if err := p.ops.CheckUnique(ctx, tx, candidate, 0); err != nil {
				return nil, err
			}
		}
		if p.ops.CheckReferences != nil {
			if err := p.ops.CheckReferences(ctx, tx, candidate); err != nil {
				return nil, err
			}
		}
		return p.ops.Insert(ctx, tx, candidate)
	})
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return created, nil
}

// Update resolves the stored row, lets merge build the candidate from it
// (partial-update semantics live in the domain's merge), then re-checks the
// natural key only when it changed and the references always, before writing.
func (p *Pipeline[E]) Update(ctx context.Context, id int64, merge func(stored *E) (*E, error)) (*E, error) {
	updated, err := database.WithTransactionResult(ctx, p.db, func(tx pgx.Tx) (*E, error) {
		stored, err := p.ops.Resolve(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, p.ops.NotFound()
		}

		candidate, err := merge(stored)
		if err != nil {
			return nil, err
		}

		if p.ops.CheckUnique != nil && !p.ops.SameKey(stored, candidate) {
			if err := p.ops.CheckUnique(ctx, tx, candidate, id); err != nil {
				return nil, err
			}
		}
		if p.ops.CheckReferences != nil {
			if err := p.ops.CheckReferences(ctx, tx, candidate); err != nil {
				return nil, err
			}
		}
		return p.ops.Update(ctx, tx, candidate)
	})
	if err != nil {
		return nil, apperr.Normalize(err)
	}
	return updated, nil
}

// Delete resolves the stored row and refuses to remove it while dependents
// reference it. There is no cascade.
func (p *Pipeline[E]) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		stored, err := p.ops.Resolve(ctx, tx, id)
		if err != nil {
			return err
		}
		if stored == nil {
			return p.ops.NotFound()
		}

		if p.ops.CheckDependents != nil {
			if err := p.ops.CheckDependents(ctx, tx, id); err != nil {
				return err
			}
		}
		return p.ops.Delete(ctx, tx, id)
	})
	return apperr.Normalize(err)
}
