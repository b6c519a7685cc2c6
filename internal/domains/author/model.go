package author

import "time"

// Author is a catalog author row.
type Author struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookSummary is the flat book row embedded in author responses.
type BookSummary struct {
	ID          int64     `json:"id"`
	Titulo      string    `json:"titulo"`
	Resumo      *string   `json:"resumo"`
	Ano         int       `json:"ano"`
	Paginas     *int      `json:"paginas"`
	ISBN        string    `json:"isbn"`
	CategoriaID int64     `json:"categoria_id"`
	EditoraID   int64     `json:"editora_id"`
	AutorID     int64     `json:"autor_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorWithBooks is the wire shape for list and detail reads.
type AuthorWithBooks struct {
	Author
	Livros []BookSummary `json:"livros"`
}
