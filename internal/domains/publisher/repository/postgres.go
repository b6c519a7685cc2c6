package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalogo-backend/internal/domains/publisher"
)

const publisherColumns = "id, nome, endereco, telefone, created_at, updated_at"

const bookColumns = "id, titulo, resumo, ano, paginas, isbn, categoria_id, editora_id, autor_id, created_at, updated_at"

// detailBookQuery loads a publisher's books together with each book's author
// and category, the shape the detail endpoint returns.
const detailBookQuery = `
SELECT b.id, b.titulo, b.resumo, b.ano, b.paginas, b.isbn,
       b.categoria_id, b.editora_id, b.autor_id, b.created_at, b.updated_at,
       a.id, a.nome, a.email, a.telefone, a.bio, a.created_at, a.updated_at,
       c.id, c.nome, c.created_at, c.updated_at
FROM livros b
JOIN autores a ON a.id = b.autor_id
JOIN categorias c ON c.id = b.categoria_id
WHERE b.editora_id = $1
ORDER BY b.id`

// PostgresPublisherRepository implements publisher.PublisherRepository on pgx.
type PostgresPublisherRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPublisherRepository(pool *pgxpool.Pool) *PostgresPublisherRepository {
	return &PostgresPublisherRepository{pool: pool}
}

func (r *PostgresPublisherRepository) List(ctx context.Context) ([]publisher.PublisherWithBooks, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+publisherColumns+" FROM editoras ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	defer rows.Close()

	result := []publisher.PublisherWithBooks{}
	index := map[int64]int{}
	for rows.Next() {
		var p publisher.Publisher
		if err := scanPublisher(rows, &p); err != nil {
			return nil, fmt.Errorf("scan publisher: %w", err)
		}
		index[p.ID] = len(result)
		result = append(result, publisher.PublisherWithBooks{Publisher: p, Livros: []publisher.BookSummary{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}

	bookRows, err := r.pool.Query(ctx, "SELECT "+bookColumns+" FROM livros ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list publisher books: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b publisher.BookSummary
		if err := scanBook(bookRows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		if i, ok := index[b.EditoraID]; ok {
			result[i].Livros = append(result[i].Livros, b)
		}
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("list publisher books: %w", err)
	}

	return result, nil
}

func (r *PostgresPublisherRepository) GetByID(ctx context.Context, id int64) (*publisher.PublisherWithBooks, error) {
	var p publisher.Publisher
	row := r.pool.QueryRow(ctx, "SELECT "+publisherColumns+" FROM editoras WHERE id = $1", id)
	if err := scanPublisher(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publisher %d: %w", id, err)
	}

	rows, err := r.pool.Query(ctx, detailBookQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get publisher %d books: %w", id, err)
	}
	defer rows.Close()

	books := []publisher.BookSummary{}
	for rows.Next() {
		var b publisher.BookSummary
		var a publisher.AuthorSummary
		var c publisher.CategorySummary
		err := rows.Scan(
			&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
			&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt,
			&a.ID, &a.Nome, &a.Email, &a.Telefone, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
			&c.ID, &c.Nome, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan publisher book: %w", err)
		}
		b.Autor = &a
		b.Categoria = &c
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get publisher %d books: %w", id, err)
	}

	return &publisher.PublisherWithBooks{Publisher: p, Livros: books}, nil
}

func (r *PostgresPublisherRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*publisher.Publisher, error) {
	var p publisher.Publisher
	row := tx.QueryRow(ctx, "SELECT "+publisherColumns+" FROM editoras WHERE id = $1", id)
	if err := scanPublisher(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publisher %d: %w", id, err)
	}
	return &p, nil
}

// ExistsByName matches case-insensitively. Stored names are trimmed on write,
// so only the candidate needs trimming.
func (r *PostgresPublisherRepository) ExistsByName(ctx context.Context, tx pgx.Tx, nome string, excludeID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM editoras WHERE LOWER(nome) = LOWER($1) AND id <> $2)",
		nome, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check publisher name: %w", err)
	}
	return exists, nil
}

func (r *PostgresPublisherRepository) ExistsByIDTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM editoras WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check publisher %d: %w", id, err)
	}
	return exists, nil
}

func (r *PostgresPublisherRepository) CountBooks(ctx context.Context, tx pgx.Tx, publisherID int64) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM livros WHERE editora_id = $1", publisherID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count publisher %d books: %w", publisherID, err)
	}
	return count, nil
}

func (r *PostgresPublisherRepository) Insert(ctx context.Context, tx pgx.Tx, p *publisher.Publisher) (*publisher.Publisher, error) {
	var created publisher.Publisher
	row := tx.QueryRow(ctx,
		`INSERT INTO editoras (nome, endereco, telefone, created_at, updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW())
		 RETURNING `+publisherColumns,
		p.Nome, p.Endereco, p.Telefone,
	)
	if err := scanPublisher(row, &created); err != nil {
		return nil, fmt.Errorf("insert publisher: %w", err)
	}
	return &created, nil
}

func (r *PostgresPublisherRepository) Update(ctx context.Context, tx pgx.Tx, p *publisher.Publisher) (*publisher.Publisher, error) {
	var updated publisher.Publisher
	row := tx.QueryRow(ctx,
		`UPDATE editoras
		 SET nome = $1, endereco = $2, telefone = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING `+publisherColumns,
		p.Nome, p.Endereco, p.Telefone, p.ID,
	)
	if err := scanPublisher(row, &updated); err != nil {
		return nil, fmt.Errorf("update publisher %d: %w", p.ID, err)
	}
	return &updated, nil
}

func (r *PostgresPublisherRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM editoras WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete publisher %d: %w", id, err)
	}
	return nil
}

func scanPublisher(row pgx.Row, p *publisher.Publisher) error {
	return row.Scan(&p.ID, &p.Nome, &p.Endereco, &p.Telefone, &p.CreatedAt, &p.UpdatedAt)
}

func scanBook(row pgx.Row, b *publisher.BookSummary) error {
	return row.Scan(&b.ID, &b.Titulo, &b.Resumo, &b.Ano, &b.Paginas, &b.ISBN,
		&b.CategoriaID, &b.EditoraID, &b.AutorID, &b.CreatedAt, &b.UpdatedAt)
}
