package book

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ParentChecker reports whether a referenced parent row exists, inside the
// mutation transaction. The category, publisher and author repositories all
// satisfy it.
type ParentChecker interface {
	ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
}

// BookService is the use-case contract consumed by the HTTP handler.
type BookService interface {
	List(ctx context.Context) ([]BookWithRelations, error)
	Get(ctx context.Context, id int64) (*BookWithRelations, error)
	Create(ctx context.Context, req *CreateBookRequest) (*BookWithRelations, error)
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*BookWithRelations, error)
	Delete(ctx context.Context, id int64) error
}
