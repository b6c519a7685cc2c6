package publisher

import "context"

// PublisherService is the use-case contract consumed by the HTTP handler.
type PublisherService interface {
	List(ctx context.Context) ([]PublisherWithBooks, error)
	Get(ctx context.Context, id int64) (*PublisherWithBooks, error)
	Create(ctx context.Context, req *CreatePublisherRequest) (*PublisherWithBooks, error)
	Update(ctx context.Context, id int64, req *UpdatePublisherRequest) (*PublisherWithBooks, error)
	Delete(ctx context.Context, id int64) error
}
