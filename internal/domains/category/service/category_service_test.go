package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo-backend/internal/domains/category"
	"catalogo-backend/internal/shared/apperr"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeBeginner struct{ tx *fakeTx }

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) { return b.tx, nil }

// fakeCategoryRepo matches names the way the real repository does: trimmed
// and case-insensitive, skipping the excluded row.
type fakeCategoryRepo struct {
	rows map[int64]*category.Category

	bookCount   int64
	nameChecked bool
	inserted    *category.Category
	updated     *category.Category
	deletedID   int64
}

func newFakeCategoryRepo(rows ...*category.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{rows: map[int64]*category.Category{}}
	for _, c := range rows {
		r.rows[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]category.CategoryWithBooks, error) {
	out := []category.CategoryWithBooks{}
	for _, c := range r.rows {
		out = append(out, category.CategoryWithBooks{Category: *c, Livros: []category.BookSummary{}})
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*category.CategoryWithBooks, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &category.CategoryWithBooks{Category: *c, Livros: []category.BookSummary{}}, nil
}

func (r *fakeCategoryRepo) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*category.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) ExistsByName(ctx context.Context, tx pgx.Tx, nome string, excludeID int64) (bool, error) {
	r.nameChecked = true
	want := strings.ToLower(strings.TrimSpace(nome))
	for id, c := range r.rows {
		if id == excludeID {
			continue
		}
		if strings.ToLower(c.Nome) == want {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *fakeCategoryRepo) CountBooks(ctx context.Context, tx pgx.Tx, categoryID int64) (int64, error) {
	return r.bookCount, nil
}

func (r *fakeCategoryRepo) Insert(ctx context.Context, tx pgx.Tx, c *category.Category) (*category.Category, error) {
	created := *c
	created.ID = int64(len(r.rows) + 1)
	r.rows[created.ID] = &created
	r.inserted = &created
	return &created, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, tx pgx.Tx, c *category.Category) (*category.Category, error) {
	updated := *c
	r.rows[c.ID] = &updated
	r.updated = &updated
	return &updated, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	delete(r.rows, id)
	r.deletedID = id
	return nil
}

func newService(repo *fakeCategoryRepo) (category.CategoryService, *fakeTx) {
	tx := &fakeTx{}
	return NewCategoryService(&fakeBeginner{tx: tx}, repo, nil), tx
}

func createReq(t *testing.T, body string) *category.CreateCategoryRequest {
	t.Helper()
	var req category.CreateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func updateReq(t *testing.T, body string) *category.UpdateCategoryRequest {
	t.Helper()
	var req category.UpdateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestGetCategory(t *testing.T) {
	repo := newFakeCategoryRepo(&category.Category{ID: 1, Nome: "Ficção"})
	svc, _ := newService(repo)

	detail, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ficção", detail.Nome)

	_, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc, tx := newService(repo)

	created, err := svc.Create(context.Background(), createReq(t, `{"nome": "  Romance  "}`))

	require.NoError(t, err)
	assert.Equal(t, "Romance", created.Nome)
	assert.NotNil(t, repo.inserted)
	assert.True(t, tx.committed)
}

func TestCreateCategoryRejectsBlankNameBeforeAnyWork(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc, tx := newService(repo)

	_, err := svc.Create(context.Background(), createReq(t, `{"nome": "   "}`))

	assert.ErrorIs(t, err, category.ErrNameRequired)
	assert.False(t, repo.nameChecked)
	assert.False(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestCreateCategoryNameConflictIgnoresCase(t *testing.T) {
	repo := newFakeCategoryRepo(&category.Category{ID: 1, Nome: "Ficção"})
	svc, tx := newService(repo)

	_, err := svc.Create(context.Background(), createReq(t, `{"nome": " ficção "}`))

	assert.ErrorIs(t, err, category.ErrNameTaken)
	assert.Equal(t, "Já existe uma categoria com este nome", apperr.MessageOf(err))
	assert.Nil(t, repo.inserted)
	assert.True(t, tx.rolledBack)
}

func TestUpdateCategoryNameConflictUsesOutraMessage(t *testing.T) {
	repo := newFakeCategoryRepo(
		&category.Category{ID: 1, Nome: "Ficção"},
		&category.Category{ID: 2, Nome: "Romance"},
	)
	svc, tx := newService(repo)

	_, err := svc.Update(context.Background(), 2, updateReq(t, `{"nome": "ficção"}`))

	assert.ErrorIs(t, err, category.ErrNameTakenOther)
	assert.Equal(t, "Já existe outra categoria com este nome", apperr.MessageOf(err))
	assert.Nil(t, repo.updated)
	assert.True(t, tx.rolledBack)
}

func TestUpdateCategoryUnchangedNameSkipsUniquenessLookup(t *testing.T) {
	// The sibling differs only in case and would collide if the lookup ran.
	repo := newFakeCategoryRepo(
		&category.Category{ID: 1, Nome: "Ficção"},
		&category.Category{ID: 2, Nome: "ficção"},
	)
	svc, tx := newService(repo)

	updated, err := svc.Update(context.Background(), 1, updateReq(t, `{"nome": "  Ficção  "}`))

	require.NoError(t, err)
	assert.Equal(t, "Ficção", updated.Nome)
	assert.False(t, repo.nameChecked)
	assert.True(t, tx.committed)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc, _ := newService(newFakeCategoryRepo())

	_, err := svc.Update(context.Background(), 5, updateReq(t, `{"nome": "Romance"}`))
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestDeleteCategoryBlockedByBooks(t *testing.T) {
	repo := newFakeCategoryRepo(&category.Category{ID: 1, Nome: "Ficção"})
	repo.bookCount = 3
	svc, tx := newService(repo)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, category.ErrHasBooks)
	assert.Zero(t, repo.deletedID)
	assert.True(t, tx.rolledBack)
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeCategoryRepo(&category.Category{ID: 1, Nome: "Ficção"})
	svc, tx := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, int64(1), repo.deletedID)
	assert.True(t, tx.committed)
}
