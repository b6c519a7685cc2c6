package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/domains/publisher"
	"catalogo-backend/internal/shared/apperr"
	"catalogo-backend/internal/shared/pipeline"
	"catalogo-backend/pkg/cache"
	"catalogo-backend/pkg/database"
)

const (
	detailKeyPrefix  = "detail:editora:"
	detailAllPattern = "detail:*"
	detailTTL        = 60 * time.Second
)

type publisherService struct {
	repo     publisher.PublisherRepository
	pipeline *pipeline.Pipeline[publisher.Publisher]
	cache    cache.Cache
}

// NewPublisherService wires the publisher mutation pipeline. cache may be nil.
func NewPublisherService(db database.Beginner, repo publisher.PublisherRepository, c cache.Cache) publisher.PublisherService {
	s := &publisherService{repo: repo, cache: c}
	s.pipeline = pipeline.New(db, pipeline.Ops[publisher.Publisher]{
		Resolve: func(ctx context.Context, tx pgx.Tx, id int64) (*publisher.Publisher, error) {
			return repo.GetByIDTx(ctx, tx, id)
		},
		NotFound: func() error { return publisher.ErrNotFound },
		CheckUnique: func(ctx context.Context, tx pgx.Tx, candidate *publisher.Publisher, excludeID int64) error {
			taken, err := repo.ExistsByName(ctx, tx, candidate.Nome, excludeID)
			if err != nil {
				return err
			}
			if !taken {
				return nil
			}
			if excludeID == 0 {
				return publisher.ErrNameTaken
			}
			return publisher.ErrNameTakenOther
		},
		SameKey: func(stored, candidate *publisher.Publisher) bool {
			return stored.Nome == candidate.Nome
		},
		CheckDependents: func(ctx context.Context, tx pgx.Tx, id int64) error {
			count, err := repo.CountBooks(ctx, tx, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return publisher.ErrHasBooks
			}
			return nil
		},
		Insert: repo.Insert,
		Update: repo.Update,
		Delete: repo.Delete,
	})
	return s
}

func (s *publisherService) List(ctx context.Context) ([]publisher.PublisherWithBooks, error) {
	publishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return publishers, nil
}

func (s *publisherService) Get(ctx context.Context, id int64) (*publisher.PublisherWithBooks, error) {
	key := fmt.Sprintf("%s%d", detailKeyPrefix, id)
	if s.cache != nil {
		var cached publisher.PublisherWithBooks
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if detail == nil {
		return nil, publisher.ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, detailTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return detail, nil
}

func (s *publisherService) Create(ctx context.Context, req *publisher.CreatePublisherRequest) (*publisher.PublisherWithBooks, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.pipeline.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, created)
}

func (s *publisherService) Update(ctx context.Context, id int64, req *publisher.UpdatePublisherRequest) (*publisher.PublisherWithBooks, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.pipeline.Update(ctx, id, func(stored *publisher.Publisher) (*publisher.Publisher, error) {
		return req.ApplyTo(stored), nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, updated)
}

func (s *publisherService) Delete(ctx context.Context, id int64) error {
	if err := s.pipeline.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *publisherService) detail(ctx context.Context, p *publisher.Publisher) (*publisher.PublisherWithBooks, error) {
	full, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if full == nil {
		return &publisher.PublisherWithBooks{Publisher: *p, Livros: []publisher.BookSummary{}}, nil
	}
	return full, nil
}

func (s *publisherService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, detailAllPattern); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
