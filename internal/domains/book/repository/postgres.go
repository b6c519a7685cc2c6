package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalogo-backend/internal/domains/book"
)

const bookColumns = "id, titulo, resumo, ano, paginas, isbn, categoria_id, editora_id, autor_id, created_at, updated_at"

// relationQuery loads books with their three parents in one round trip.
const relationQuery = `
SELECT b.id, b.titulo, b.resumo, b.ano, b.paginas, b.isbn,
       b.categoria_id, b.editora_id, b.autor_id, b.created_at, b.updated_at,
       a.id, a.nome, a.email, a.telefone, a.bio, a.created_at, a.updated_at,
       c.id, c.nome, c.created_at, c.updated_at,
       e.id, e.nome, e.endereco, e.telefone, e.created_at, e.updated_at
FROM livros b
JOIN autores a ON a.id = b.autor_id
JOIN categorias c ON c.id = b.categoria_id
JOIN editoras e ON e.id = b.editora_id`

// PostgresBookRepository implements book.BookRepository on pgx.
type PostgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) *PostgresBookRepository {
	return &PostgresBookRepository{pool: pool}
}

func (r *PostgresBookRepository) List(ctx context.Context) ([]book.BookWithRelations, error) {
	rows, err := r.pool.Query(ctx, relationQuery+" ORDER BY b.id")
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	result := []book.BookWithRelations{}
	for rows.Next() {
		b, err := scanBookWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return result, nil
}

func (r *PostgresBookRepository) GetByID(ctx context.Context, id int64) (*book.BookWithRelations, error) {
	row := r.pool.QueryRow(ctx, relationQuery+" WHERE b.id = $1", id)
	b, err := scanBookWithRelations(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

func (r *PostgresBookRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*book.Book, error) {
	var b book.Book
	row := tx.QueryRow(ctx, "SELECT "+bookColumns+" FROM livros WHERE id = $1", id)
	if err := scanBook(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &b, nil
}

// ExistsByISBN matches the trimmed ISBN exactly, preserving case.
func (r *PostgresBookRepository) ExistsByISBN(ctx context.Context, tx pgx.Tx, isbn string, excludeID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM livros WHERE isbn = $1 AND id <> $2)",
		isbn, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check book isbn: %w", err)
	}
	return exists, nil
}

func (r *PostgresBookRepository) Insert(ctx context.Context, tx pgx.Tx, b *book.Book) (*book.Book, error) {
	var created book.Book
	row := tx.QueryRow(ctx,
		`INSERT INTO livros (titulo, resumo, ano, paginas, isbn, categoria_id, editora_id, autor_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		 RETURNING `+bookColumns,
		b.Titulo, b.Resumo, b.Ano, b.Paginas, b.ISBN, b.CategoriaID, b.EditoraID, b.AutorID,
	)
	if err := scanBook(row, &created); err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	return &created, nil
}

func (r *PostgresBookRepository) Update(ctx context.Context, tx pgx.Tx, b *book.Book) (*book.Book, error) {
	var updated book.Book
	row := tx.QueryRow(ctx,
		`UPDATE livros
		 SET titulo = $1, resumo = $2, ano = $3, paginas = $4, isbn = $5,
		     categoria_id = $6, editora_id = $7, autor_id = $8, updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+bookColumns,
		b.Titulo, b.Resumo, b.Ano, b.Paginas, b.ISBN, b.CategoriaID, b.EditoraID, b.AutorID, b.ID,
	)
	if err := scanBook(row, &updated); err != nil {
		return nil, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return &updated, nil
}

func (r *PostgresBookRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM livros WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
		&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt)
}

func scanBookWithRelations(row pgx.Row) (*book.BookWithRelations, error) {
	var b book.BookWithRelations
	err := row.Scan(
		&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
		&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt,
		&b.Autor.ID, &b.Autor.Nome, &b.Autor.Email, &b.Autor.Telefone, &b.Autor.Bio,
		&b.Autor.CreatedAt, &b.Autor.UpdatedAt,
		&b.Categoria.ID, &b.Categoria.Nome, &b.Categoria.CreatedAt, &b.Categoria.UpdatedAt,
		&b.Editora.ID, &b.Editora.Nome, &b.Editora.Endereco, &b.Editora.Telefone,
		&b.Editora.CreatedAt, &b.Editora.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
