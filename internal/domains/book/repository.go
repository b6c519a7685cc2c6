package book

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// BookRepository is the persistence contract for books. Tx-suffixed methods
// run inside a mutation transaction; GetByID and GetByIDTx return (nil, nil)
// when the row does not exist.
type BookRepository interface {
	List(ctx context.Context) ([]BookWithRelations, error)
	GetByID(ctx context.Context, id int64) (*BookWithRelations, error)

	GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*Book, error)
	ExistsByISBN(ctx context.Context, tx pgx.Tx, isbn string, excludeID int64) (bool, error)
	Insert(ctx context.Context, tx pgx.Tx, b *Book) (*Book, error)
	Update(ctx context.Context, tx pgx.Tx, b *Book) (*Book, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}
