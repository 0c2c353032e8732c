package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/borrowing"
	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/inventory"
	"github.com/AntonStoeckl/library-circulation-go/journal"
	"github.com/AntonStoeckl/library-circulation-go/users"
)

type action string

const (
	actionBorrow action = "borrow"
	actionReturn action = "return"
)

type step struct {
	action action
	userID core.UserID
	bookID core.BookID
}

// script exercises every outcome of Borrow and Return at least once.
var script = []step{
	{actionBorrow, 1, 1},
	{actionBorrow, 2, 1},
	{actionBorrow, 1, 2},
	{actionBorrow, 1, 3},
	{actionBorrow, 1, 4},
	{actionReturn, 2, 2},
	{actionReturn, 1, 2},
	{actionBorrow, 2, 4},
	{actionBorrow, 3, 99},
	{actionBorrow, 42, 5},
	{actionReturn, 1, 1},
}

// libraryState is the JSON document printed after the script has run.
type libraryState struct {
	Books         []core.Book                 `json:"books"`
	Users         []core.User                 `json:"users"`
	BorrowedBooks map[core.UserID][]core.Book `json:"borrowed_books"`
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	loadEnvFiles()

	cfg, err := parseConfig(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.ObservabilityEnabled {
		providers, err := NewObservabilityProviders(ctx, cfg)
		if err != nil {
			log.Printf("Failed to create observability providers, continuing without: %v", err)
			cfg.ObservabilityEnabled = false
		} else {
			defer func() {
				if err := providers.Shutdown(); err != nil {
					log.Printf("Error during observability shutdown: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Printf("Library demo failed: %v", err)
		return 1
	}

	return 0
}

// run seeds the library, executes the script and prints the resulting state.
func run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	books, registry, err := seedLibrary()
	if err != nil {
		return err
	}

	j := journal.New()
	service, err := borrowing.NewService(append(cfg.borrowingOptions(stderr), borrowing.WithJournal(j))...)
	if err != nil {
		return err
	}

	for _, s := range script {
		if err := ctx.Err(); err != nil {
			return err
		}

		stepErr := perform(ctx, service, books, registry, s)
		outcome := "ok"
		if stepErr != nil {
			outcome = fmt.Sprintf("%s: %v", borrowing.ClassifyStatus(stepErr), stepErr)
		}

		if _, err := fmt.Fprintf(stdout, "%-6s user=%s book=%s -> %s\n", s.action, s.userID, s.bookID, outcome); err != nil {
			return err
		}
	}

	state, err := snapshot(ctx, service, books, registry)
	if err != nil {
		return err
	}

	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, string(encoded)); err != nil {
		return err
	}

	return writeJournal(j, cfg.JournalPath, stdout)
}

func perform(ctx context.Context, service *borrowing.Service, books *inventory.Inventory, registry *users.Registry, s step) error {
	switch s.action {
	case actionBorrow:
		return service.Borrow(ctx, books, registry, s.userID, s.bookID)
	case actionReturn:
		return service.Return(ctx, books, registry, s.userID, s.bookID)
	default:
		return fmt.Errorf("unknown action %q", s.action)
	}
}

func snapshot(ctx context.Context, service *borrowing.Service, books *inventory.Inventory, registry *users.Registry) (libraryState, error) {
	state := libraryState{
		Books:         books.List(),
		Users:         registry.List(),
		BorrowedBooks: make(map[core.UserID][]core.Book),
	}

	for _, user := range state.Users {
		borrowed, err := service.BorrowedBooks(ctx, books, registry, user.ID)
		if err != nil {
			return libraryState{}, err
		}

		state.BorrowedBooks[user.ID] = borrowed
	}

	return state, nil
}

func writeJournal(j *journal.Journal, path string, stdout io.Writer) error {
	switch path {
	case "":
		return nil
	case "-":
		return j.WriteJSONLines(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return errors.Join(j.WriteJSONLines(f), f.Close())
}
