package category

import "context"

// CategoryService is the use-case contract consumed by the HTTP handler.
type CategoryService interface {
	List(ctx context.Context) ([]CategoryWithBooks, error)
	Get(ctx context.Context, id int64) (*CategoryWithBooks, error)
	Create(ctx context.Context, req *CreateCategoryRequest) (*CategoryWithBooks, error)
	Update(ctx context.Context, id int64, req *UpdateCategoryRequest) (*CategoryWithBooks, error)
	Delete(ctx context.Context, id int64) error
}
