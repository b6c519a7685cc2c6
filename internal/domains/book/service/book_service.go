package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/domains/book"
	"catalogo-backend/internal/shared/apperr"
	"catalogo-backend/internal/shared/pipeline"
	"catalogo-backend/pkg/cache"
	"catalogo-backend/pkg/database"
)

const (
	detailKeyPrefix  = "detail:livro:"
	detailAllPattern = "detail:*"
	detailTTL        = 60 * time.Second
)

type bookService struct {
	repo     book.BookRepository
	pipeline *pipeline.Pipeline[book.Book]
	cache    cache.Cache
}

// NewBookService wires the book mutation pipeline. Reference checks run
// against the three parent repositories in a fixed order: category, publisher,
// author. cache may be nil.
func NewBookService(
	db database.Beginner,
	repo book.BookRepository,
	categories book.ParentChecker,
	publishers book.ParentChecker,
	authors book.ParentChecker,
	c cache.Cache,
) book.BookService {
	s := &bookService{repo: repo, cache: c}
	s.pipeline = pipeline.New(db, pipeline.Ops[book.Book]{
		Resolve: func(ctx context.Context, tx pgx.Tx, id int64) (*book.Book, error) {
			return repo.GetByIDTx(ctx, tx, id)
		},
		NotFound: func() error { return book.ErrNotFound },
		CheckUnique: func(ctx context.Context, tx pgx.Tx, candidate *book.Book, excludeID int64) error {
			taken, err := repo.ExistsByISBN(ctx, tx, candidate.ISBN, excludeID)
			if err != nil {
				return err
			}
			if !taken {
				return nil
			}
			if excludeID == 0 {
				return book.ErrISBNTaken
			}
			return book.ErrISBNTakenOther
		},
		SameKey: func(stored, candidate *book.Book) bool {
			return stored.ISBN == candidate.ISBN
		},
		CheckReferences: func(ctx context.Context, tx pgx.Tx, candidate *book.Book) error {
			checks := []struct {
				repo   book.ParentChecker
				id     int64
				reject error
			}{
				{categories, candidate.CategoriaID, book.ErrCategoriaMissing},
				{publishers, candidate.EditoraID, book.ErrEditoraMissing},
				{authors, candidate.AutorID, book.ErrAutorMissing},
			}
			for _, check := range checks {
				exists, err := check.repo.ExistsByIDTx(ctx, tx, check.id)
				if err != nil {
					return err
				}
				if !exists {
					return check.reject
				}
			}
			return nil
		},
		Insert: repo.Insert,
		Update: repo.Update,
		Delete: repo.Delete,
	})
	return s
}

func (s *bookService) List(ctx context.Context) ([]book.BookWithRelations, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return books, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookWithRelations, error) {
	key := fmt.Sprintf("%s%d", detailKeyPrefix, id)
	if s.cache != nil {
		var cached book.BookWithRelations
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if detail == nil {
		return nil, book.ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, detailTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return detail, nil
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookWithRelations, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.pipeline.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, created.ID)
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.BookWithRelations, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.pipeline.Update(ctx, id, func(stored *book.Book) (*book.Book, error) {
		return req.ApplyTo(stored), nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.detail(ctx, updated.ID)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.pipeline.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// detail reloads the committed row with its parents for the response body.
func (s *bookService) detail(ctx context.Context, id int64) (*book.BookWithRelations, error) {
	full, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if full == nil {
		return nil, book.ErrNotFound
	}
	return full, nil
}

func (s *bookService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, detailAllPattern); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
