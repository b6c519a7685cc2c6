package author

import "context"

// AuthorService is the use-case contract consumed by the HTTP handler.
type AuthorService interface {
	List(ctx context.Context) ([]AuthorWithBooks, error)
	ListPlain(ctx context.Context) ([]Author, error)
	Get(ctx context.Context, id int64) (*AuthorWithBooks, error)
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorWithBooks, error)
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*AuthorWithBooks, error)
	Delete(ctx context.Context, id int64) error
}
