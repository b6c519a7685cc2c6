package publisher

import "time"

// Publisher is a catalog publisher row.
type Publisher struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Endereco  *string   `json:"endereco"`
	Telefone  *string   `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorSummary is the author row nested inside detail book entries.
type AuthorSummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategorySummary is the category row nested inside detail book entries.
type CategorySummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookSummary is a book row under a publisher. List responses carry it flat;
// the detail response also nests the book's author and category.
type BookSummary struct {
	ID          int64            `json:"id"`
	Titulo      string           `json:"titulo"`
	Resumo      *string          `json:"resumo"`
	Ano         int              `json:"ano"`
	Paginas     *int             `json:"paginas"`
	ISBN        string           `json:"isbn"`
	CategoriaID int64            `json:"categoria_id"`
	EditoraID   int64            `json:"editora_id"`
	AutorID     int64            `json:"autor_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Autor       *AuthorSummary   `json:"autor,omitempty"`
	Categoria   *CategorySummary `json:"categoria,omitempty"`
}

// PublisherWithBooks is the wire shape for list and detail reads.
type PublisherWithBooks struct {
	Publisher
	Livros []BookSummary `json:"livros"`
}
