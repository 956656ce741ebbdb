package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/profind/corpus"
	"github.com/poiesic/profind/storage/badger"
)

var dbPath = flag.String("db", "./projects_db", "path to BadgerDB database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewProjectRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	seeded, err := corpus.Seed(context.Background(), repo)
	if err != nil {
		panic(err)
	}

	if seeded == 0 {
		fmt.Println("Store already holds projects, nothing to do")
		return
	}
	fmt.Printf("Seeded %d reference projects into %s\n", seeded, *dbPath)
}
