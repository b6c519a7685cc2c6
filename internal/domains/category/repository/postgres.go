package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalogo-backend/internal/domains/category"
)

const categoryColumns = "id, nome, created_at, updated_at"

const bookColumns = "id, titulo, resumo, ano, paginas, isbn, categoria_id, editora_id, autor_id, created_at, updated_at"

// detailBookQuery loads a category's books together with each book's author
// and publisher, the shape the detail endpoint returns.
const detailBookQuery = `
SELECT b.id, b.titulo, b.resumo, b.ano, b.paginas, b.isbn,
       b.categoria_id, b.editora_id, b.autor_id, b.created_at, b.updated_at,
       a.id, a.nome, a.email, a.telefone, a.bio, a.created_at, a.updated_at,
       e.id, e.nome, e.endereco, e.telefone, e.created_at, e.updated_at
FROM livros b
JOIN autores a ON a.id = b.autor_id
JOIN editoras e ON e.id = b.editora_id
WHERE b.categoria_id = $1
ORDER BY b.id`

// PostgresCategoryRepository implements category.CategoryRepository on pgx.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

func (r *PostgresCategoryRepository) List(ctx context.Context) ([]category.CategoryWithBooks, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+categoryColumns+" FROM categorias ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []category.CategoryWithBooks{}
	index := map[int64]int{}
	for rows.Next() {
		var c category.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		index[c.ID] = len(result)
		result = append(result, category.CategoryWithBooks{Category: c, Livros: []category.BookSummary{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	bookRows, err := r.pool.Query(ctx, "SELECT "+bookColumns+" FROM livros ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list category books: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b category.BookSummary
		if err := scanBook(bookRows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		if i, ok := index[b.CategoriaID]; ok {
			result[i].Livros = append(result[i].Livros, b)
		}
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("list category books: %w", err)
	}

	return result, nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id int64) (*category.CategoryWithBooks, error) {
	var c category.Category
	row := r.pool.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categorias WHERE id = $1", id)
	if err := scanCategory(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	rows, err := r.pool.Query(ctx, detailBookQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d books: %w", id, err)
	}
	defer rows.Close()

	books := []category.BookSummary{}
	for rows.Next() {
		var b category.BookSummary
		var a category.AuthorSummary
		var e category.PublisherSummary
		err := rows.Scan(
			&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
			&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt,
			&a.ID, &a.Nome, &a.Email, &a.Telefone, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
			&e.ID, &e.Nome, &e.Endereco, &e.Telefone, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category book: %w", err)
		}
		b.Autor = &a
		b.Editora = &e
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get category %d books: %w", id, err)
	}

	return &category.CategoryWithBooks{Category: c, Livros: books}, nil
}

func (r *PostgresCategoryRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*category.Category, error) {
	var c category.Category
	row := tx.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categorias WHERE id = $1", id)
	if err := scanCategory(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &c, nil
}

// ExistsByName matches case-insensitively. Stored names are trimmed on write,
// so only the candidate needs trimming.
func (r *PostgresCategoryRepository) ExistsByName(ctx context.Context, tx pgx.Tx, nome string, excludeID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM categorias WHERE LOWER(nome) = LOWER($1) AND id <> $2)",
		nome, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

func (r *PostgresCategoryRepository) ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM categorias WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category %d: %w", id, err)
	}
	return exists, nil
}

func (r *PostgresCategoryRepository) CountBooks(ctx context.Context, tx pgx.Tx, categoryID int64) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM livros WHERE categoria_id = $1", categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category %d books: %w", categoryID, err)
	}
	return count, nil
}

func (r *PostgresCategoryRepository) Insert(ctx context.Context, tx pgx.Tx, c *category.Category) (*category.Category, error) {
	var created category.Category
	row := tx.QueryRow(ctx,
		`INSERT INTO categorias (nome, created_at, updated_at)
		 VALUES ($1, NOW(), NOW())
		 RETURNING `+categoryColumns,
		c.Nome,
	)
	if err := scanCategory(row, &created); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &created, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, tx pgx.Tx, c *category.Category) (*category.Category, error) {
	var updated category.Category
	row := tx.QueryRow(ctx,
		`UPDATE categorias
		 SET nome = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+categoryColumns,
		c.Nome, c.ID,
	)
	if err := scanCategory(row, &updated); err != nil {
		return nil, fmt.Errorf("update category %d: %w", c.ID, err)
	}
	return &updated, nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM categorias WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func scanCategory(row pgx.Row, c *category.Category) error {
	return row.Scan(&c.ID, &c.Nome, &c.CreatedAt, &c.UpdatedAt)
}

func scanBook(row pgx.Row, b *category.BookSummary) error {
	return row.Scan(&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
		&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt)
}
