package core

// Book is a single book in the inventory.
// IsAvailable is false exactly while the book is in some user's borrowed list.
type Book struct {
	ID          BookID `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       Genre  `json:"genre"`
	IsAvailable bool   `json:"is_available"`
}

// BuildBook creates an available Book.
func BuildBook(id BookID, title, author string, genre Genre) Book {
	return Book{
		ID:          id,
		Title:       title,
		Author:      author,
		Genre:       genre,
		IsAvailable: true,
	}
}
