package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/domains/category"
	"catalogo-backend/internal/shared/apperr"
	"catalogo-backend/internal/shared/pipeline"
	"catalogo-backend/pkg/cache"
	"catalogo-backend/pkg/database"
)

const (
	detailKeyPrefix  = "detail:categoria:"
	detailAllPattern = "detail:*"
	detailTTL        = 60 * time.Second
)

type categoryService struct {
	repo     category.CategoryRepository
	pipeline *pipeline.Pipeline[category.Category]
	cache    cache.Cache
}

// NewCategoryService wires the category mutation pipeline. cache may be nil.
func NewCategoryService(db database.Beginner, repo category.CategoryRepository, c cache.Cache) category.CategoryService {
	s := &categoryService{repo: repo, cache: c}
	s.pipeline = pipeline.New(db, pipeline.Ops[category.Category]{
		Resolve: func(ctx context.Context, tx pgx.Tx, id int64) (*category.Category, error) {
			return repo.GetByIDTx(ctx, tx, id)
		},
		NotFound: func() error { return category.ErrNotFound },
		CheckUnique: func(ctx context.Context, tx pgx.Tx, candidate *category.Category, excludeID int64) error {
			taken, err := repo.ExistsByName(ctx, tx, candidate.Nome, excludeID)
			if err != nil {
				return err
			}
			if !taken {
				return nil
			}
			if excludeID == 0 {
				return category.ErrNameTaken
			}
			return category.ErrNameTakenOther
		},
		SameKey: func(stored, candidate *category.Category) bool {
			return stored.Nome == candidate.Nome
		},
		CheckDependents: func(ctx context.Context, tx pgx.Tx, id int64) error {
			count, err := repo.CountBooks(ctx, tx, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return category.ErrHasBooks
			}
			return nil
		},
		Insert: repo.Insert,
		Update: repo.Update,
		Delete: repo.Delete,
	})
	return s
}

func (s *categoryService) List(ctx context.Context) ([]category.CategoryWithBooks, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*category.CategoryWithBooks, error) {
	key := fmt.Sprintf("%s%d", detailKeyPrefix, id)
	if s.cache != nil {
		var cached category.CategoryWithBooks
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if detail == nil {
		return nil, category.ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, detailTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return detail, nil
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.CategoryWithBooks, error) {
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

func (s *categoryService) Update(ctx context.Context, id int64, req *category.UpdateCategoryRequest) (*category.CategoryWithBooks, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.pipeline.Update(ctx, id, func(stored *category.Category) (*category.Category, error) {
		return req.ApplyTo(stored), nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, updated)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.pipeline.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryService) detail(ctx context.Context, c *category.Category) (*category.CategoryWithBooks, error) {
	full, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if full == nil {
		return &category.CategoryWithBooks{Category: *c, Livros: []category.BookSummary{}}, nil
	}
	return full, nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, detailAllPattern); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
