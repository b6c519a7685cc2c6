package author

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// AuthorRepository is the persistence contract for authors. Read methods run
// on the pool; Tx-suffixed methods run inside a mutation transaction and
// return (nil, nil) when the row does not exist.
type AuthorRepository interface {
	List(ctx context.Context) ([]AuthorWithBooks, error)
	ListPlain(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id int64) (*AuthorWithBooks, error)

	GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*Author, error)
	ExistsByEmail(ctx context.Context, tx pgx.Tx, email string, excludeID int64) (bool, error)
	ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	CountBooks(ctx context.Context, tx pgx.Tx, authorID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, a *Author) (*Author, error)
	Update(ctx context.Context, tx pgx.Tx, a *Author) (*Author, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}
