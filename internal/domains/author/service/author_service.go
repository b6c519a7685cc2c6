package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/domains/author"
	"catalogo-backend/internal/shared/apperr"
	"catalogo-backend/internal/shared/pipeline"
	"catalogo-backend/pkg/cache"
	"catalogo-backend/pkg/database"
)

const (
	detailKeyPrefix  = "detail:autor:"
	detailAllPattern = "detail:*"
	detailTTL        = 60 * time.Second
)

type authorService struct {
	repo     author.AuthorRepository
	pipeline *pipeline.Pipeline[author.Author]
	cache    cache.Cache
}

// NewAuthorService wires the author mutation pipeline. cache may be nil.
func NewAuthorService(db database.Beginner, repo author.AuthorRepository, c cache.Cache) author.AuthorService {
	s := &authorService{repo: repo, cache: c}
	s.pipeline = pipeline.New(db, pipeline.Ops[author.Author]{
		Resolve: func(ctx context.Context, tx pgx.Tx, id int64) (*author.Author, error) {
			return repo.GetByIDTx(ctx, tx, id)
		},
		NotFound: func() error { return author.ErrNotFound },
		CheckUnique: func(ctx context.Context, tx pgx.Tx, candidate *author.Author, excludeID int64) error {
			taken, err := repo.ExistsByEmail(ctx, tx, candidate.Email, excludeID)
			if err != nil {
				return err
			}
			if !taken {
				return nil
			}
			if excludeID == 0 {
				return author.ErrEmailTaken
			}
			return author.ErrEmailTakenOther
		},
		SameKey: func(stored, candidate *author.Author) bool {
			return stored.Email == candidate.Email
		},
		CheckDependents: func(ctx context.Context, tx pgx.Tx, id int64) error {
			count, err := repo.CountBooks(ctx, tx, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return author.ErrHasBooks
			}
			return nil
		},
		Insert: repo.Insert,
		Update: repo.Update,
		Delete: repo.Delete,
	})
	return s
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorWithBooks, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return authors, nil
}

func (s *authorService) ListPlain(ctx context.Context) ([]author.Author, error) {
	authors, err := s.repo.ListPlain(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return authors, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.AuthorWithBooks, error) {
	key := fmt.Sprintf("%s%d", detailKeyPrefix, id)
	if s.cache != nil {
		var cached author.AuthorWithBooks
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if detail == nil {
		return nil, author.ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, detailTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return detail, nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorWithBooks, error) {
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

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.AuthorWithBooks, error) {
	updated, err := s.pipeline.Update(ctx, id, func(stored *author.Author) (*author.Author, error) {
		return req.ApplyTo(stored), nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, updated)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.pipeline.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// detail reloads the committed row with its books for the response body.
func (s *authorService) detail(ctx context.Context, a *author.Author) (*author.AuthorWithBooks, error) {
	full, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if full == nil {
		return &author.AuthorWithBooks{Author: *a, Livros: []author.BookSummary{}}, nil
	}
	return full, nil
}

func (s *authorService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, detailAllPattern); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
