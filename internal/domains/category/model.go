package category

import "time"

// Category is a catalog category row.
type Category struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
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

// PublisherSummary is the publisher row nested inside detail book entries.
type PublisherSummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Endereco  *string   `json:"endereco"`
	Telefone  *string   `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookSummary is a book row under a category. List responses carry it flat;
// the detail response also nests the book's author and publisher.
type BookSummary struct {
	ID          int64             `json:"id"`
	Titulo      string            `json:"titulo"`
	Resumo      *string           `json:"resumo"`
	Ano         int               `json:"ano"`
	Paginas     *int              `json:"paginas"`
	ISBN        string            `json:"isbn"`
	CategoriaID int64             `json:"categoria_id"`
	EditoraID   int64             `json:"editora_id"`
	AutorID     int64             `json:"autor_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Autor       *AuthorSummary    `json:"autor,omitempty"`
	Editora     *PublisherSummary `json:"editora,omitempty"`
}

// CategoryWithBooks is the wire shape for list and detail reads.
type CategoryWithBooks struct {
	Category
	Livros []BookSummary `json:"livros"`
}
