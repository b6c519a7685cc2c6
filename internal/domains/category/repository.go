package category

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository is the persistence contract for categories. Tx-suffixed
// methods run inside a mutation transaction; GetByID and GetByIDTx return
// (nil, nil) when the row does not exist.
type CategoryRepository interface {
	List(ctx context.Context) ([]CategoryWithBooks, error)
	GetByID(ctx context.Context, id int64) (*CategoryWithBooks, error)

	GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*Category, error)
	ExistsByName(ctx context.Context, tx pgx.Tx, nome string, excludeID int64) (bool, error)
	ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	CountBooks(ctx context.Context, tx pgx.Tx, categoryID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, c *Category) (*Category, error)
	Update(ctx context.Context, tx pgx.Tx, c *Category) (*Category, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}
