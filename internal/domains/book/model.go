package book

import "time"

// Book is a catalog book row. Every book references exactly one category,
// publisher and author.
type Book struct {
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

// AuthorSummary is the author row nested in book responses.
type AuthorSummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategorySummary is the category row nested in book responses.
type CategorySummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublisherSummary is the publisher row nested in book responses.
type PublisherSummary struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Endereco  *string   `json:"endereco"`
	Telefone  *string   `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookWithRelations is the wire shape for every book read and mutation
// response: the row plus its three parents.
type BookWithRelations struct {
	Book
	Autor     AuthorSummary    `json:"autor"`
	Categoria CategorySummary  `json:"categoria"`
	Editora   PublisherSummary `json:"editora"`
}
