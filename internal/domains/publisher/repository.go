package publisher

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// PublisherRepository is the persistence contract for publishers. Tx-suffixed
// methods run inside a mutation transaction; GetByID and GetByIDTx return
// (nil, nil) when the row does not exist.
type PublisherRepository interface {
	List(ctx context.Context) ([]PublisherWithBooks, error)
	GetByID(ctx context.Context, id int64) (*PublisherWithBooks, error)

	GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*Publisher, error)
	ExistsByName(ctx context.Context, tx pgx.Tx, nome string, excludeID int64) (bool, error)
	ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	CountBooks(ctx context.Context, tx pgx.Tx, publisherID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, p *Publisher) (*Publisher, error)
	Update(ctx context.Context, tx pgx.Tx, p *Publisher) (*Publisher, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}
