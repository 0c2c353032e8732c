package main

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/inventory"
	"github.com/AntonStoeckl/library-circulation-go/users"
)

type seedBook struct {
	id     core.BookID
	title  string
	author string
	genre  string
}

var seedBooks = []seedBook{
	{id: 1, title: "Le Garçon et le Héron", author: "Hayao Miyazaki", genre: "Fiction"},
	{id: 2, title: "Le Monde de Terpone", author: "Ayemou Yvan", genre: "Manga"},
	{id: 3, title: "A Brief History of Time", author: "Stephen Hawking", genre: "Science"},
	{id: 4, title: "The Guns of August", author: "Barbara W. Tuchman", genre: "History"},
	{id: 5, title: "Leaves of Grass", author: "Walt Whitman", genre: "Other:Poetry"},
}

var seedUsers = []core.User{
	core.BuildUser(1, "Ayemou"),
	core.BuildUser(2, "Yvan"),
	core.BuildUser(3, "Hayao"),
}

// seedLibrary creates the demo inventory and registry.
func seedLibrary() (*inventory.Inventory, *users.Registry, error) {
	books := inventory.New()
	for _, seed := range seedBooks {
		genre, err := core.ParseGenre(seed.genre)
		if err != nil {
			return nil, nil, fmt.Errorf("seeding book %s: %w", seed.id, err)
		}

		if err := books.Add(core.BuildBook(seed.id, seed.title, seed.author, genre)); err != nil {
			return nil, nil, err
		}
	}

	registry := users.NewRegistry()
	for _, user := range seedUsers {
		if err := registry.Register(user); err != nil {
			return nil, nil, err
		}
	}

	return books, registry, nil
}
