package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalogo-backend/internal/domains/author"
)

const authorColumns = "id, nome, email, telefone, bio, created_at, updated_at"

const bookColumns = "id, titulo, resumo, ano, paginas, isbn, categoria_id, editora_id, autor_id, created_at, updated_at"

// PostgresAuthorRepository implements author.AuthorRepository on pgx.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

func (r *PostgresAuthorRepository) List(ctx context.Context) ([]author.AuthorWithBooks, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+authorColumns+" FROM autores ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	result := []author.AuthorWithBooks{}
	index := map[int64]int{}
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		index[a.ID] = len(result)
		result = append(result, author.AuthorWithBooks{Author: a, Livros: []author.BookSummary{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	bookRows, err := r.pool.Query(ctx, "SELECT "+bookColumns+" FROM livros ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list author books: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b author.BookSummary
		if err := scanBook(bookRows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		if i, ok := index[b.AutorID]; ok {
			result[i].Livros = append(result[i].Livros, b)
		}
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("list author books: %w", err)
	}

	return result, nil
}

// ListPlain returns author rows without their books, for the legacy /autor
// endpoint.
func (r *PostgresAuthorRepository) ListPlain(ctx context.Context) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+authorColumns+" FROM autores ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	result := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return result, nil
}

func (r *PostgresAuthorRepository) GetByID(ctx context.Context, id int64) (*author.AuthorWithBooks, error) {
	var a author.Author
	row := r.pool.QueryRow(ctx, "SELECT "+authorColumns+" FROM autores WHERE id = $1", id)
	if err := scanAuthor(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}

	rows, err := r.pool.Query(ctx, "SELECT "+bookColumns+" FROM livros WHERE autor_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("get author %d books: %w", id, err)
	}
	defer rows.Close()

	books := []author.BookSummary{}
	for rows.Next() {
		var b author.BookSummary
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get author %d books: %w", id, err)
	}

	return &author.AuthorWithBooks{Author: a, Livros: books}, nil
}

func (r *PostgresAuthorRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*author.Author, error) {
	var a author.Author
	row := tx.QueryRow(ctx, "SELECT "+authorColumns+" FROM autores WHERE id = $1", id)
	if err := scanAuthor(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}
	return &a, nil
}

// ExistsByEmail matches exactly, without trimming or case folding. An
// excludeID of zero means no row is exempt.
func (r *PostgresAuthorRepository) ExistsByEmail(ctx context.Context, tx pgx.Tx, email string, excludeID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM autores WHERE email = $1 AND id <> $2)",
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author email: %w", err)
	}
	return exists, nil
}

func (r *PostgresAuthorRepository) ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM autores WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author %d: %w", id, err)
	}
	return exists, nil
}

func (r *PostgresAuthorRepository) CountBooks(ctx context.Context, tx pgx.Tx, authorID int64) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM livros WHERE autor_id = $1", authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count author %d books: %w", authorID, err)
	}
	return count, nil
}

func (r *PostgresAuthorRepository) Insert(ctx context.Context, tx pgx.Tx, a *author.Author) (*author.Author, error) {
	var created author.Author
	row := tx.QueryRow(ctx,
		`INSERT INTO autores (nome, email, telefone, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW())
		 RETURNING `+authorColumns,
		a.Nome, a.Email, a.Telefone, a.Bio,
	)
	if err := scanAuthor(row, &created); err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}
	return &created, nil
}

func (r *PostgresAuthorRepository) Update(ctx context.Context, tx pgx.Tx, a *author.Author) (*author.Author, error) {
	var updated author.Author
	row := tx.QueryRow(ctx,
		`UPDATE autores
		 SET nome = $1, email = $2, telefone = $3, bio = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING `+authorColumns,
		a.Nome, a.Email, a.Telefone, a.Bio, a.ID,
	)
	if err := scanAuthor(row, &updated); err != nil {
		return nil, fmt.Errorf("update author %d: %w", a.ID, err)
	}
	return &updated, nil
}

func (r *PostgresAuthorRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM autores WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}

func scanAuthor(row pgx.Row, a *author.Author) error {
	return row.Scan(&a.ID, &a.Nome, &a.Email, &a.Telefone, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
}

func scanBook(row pgx.Row, b *author.BookSummary) error {
	return row.Scan(&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
		&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt)
}
