package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"

	"github.com/restio/restio/config"
	"github.com/restio/restio/http"
	"github.com/restio/restio/telemetry"
)

type Book struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// BookStore is the shared state behind the demo services.
type BookStore struct {
	mu     sync.Mutex
	books  []Book
	nextID int
}

func NewBookStore() *BookStore {
	return &BookStore{nextID: 1}
}

func (s *BookStore) Add(book Book) Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.books = append(s.books, book)
	return book
}

func (s *BookStore) All() []Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]Book, len(s.books))
	copy(books, s.books)
	return books
}

func (s *BookStore) Get(id string) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range s.books {
		if book.ID == id {
			return book, true
		}
	}
	return Book{}, false
}

func (s *BookStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, book := range s.books {
		if book.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// BookListService serves the collection: GET lists, POST creates.
type BookListService struct {
	store *BookStore
}

func (s *BookListService) Handle(method string, matches []string, content []byte) []byte {
	switch method {
	case "GET":
		data, _ := json.Marshal(s.store.All())
		return data
	case "POST":
		var book Book
		if err := json.Unmarshal(content, &book); err != nil {
			return []byte(`{"error":"bad book"}`)
		}
		data, _ := json.Marshal(s.store.Add(book))
		return data
	}
	return []byte(`{"error":"method not allowed"}`)
}

// BookDetailService serves one book addressed by the route's capture
// group: GET fetches, DELETE removes.
type BookDetailService struct {
	store *BookStore
}

func (s *BookDetailService) Handle(method string, matches []string, content []byte) []byte {
	if len(matches) == 0 {
		return []byte(`{"error":"missing book id"}`)
	}
	id := matches[0]

	switch method {
	case "GET":
		book, found := s.store.Get(id)
		if !found {
			return []byte(`{"error":"not found"}`)
		}
		data, _ := json.Marshal(book)
		return data
	case "DELETE":
		if !s.store.Delete(id) {
			return []byte(`{"error":"not found"}`)
		}
		return []byte(`{"status":"deleted"}`)
	}
	return []byte(`{"error":"method not allowed"}`)
}

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	shutdown, err := telemetry.Setup(ctx, "restio-bookstore")
	if err != nil {
		return err
	}
	defer shutdown(context.Background())

	logger := telemetry.NewLogger("bookstore")
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	store := NewBookStore()

	server := http.NewRestServer(cfg.Server.Addr, cfg.Server.Workers)
	server.RegisterService(&BookListService{store: store}, "/books")
	server.RegisterService(&BookDetailService{store: store}, "/books/([0-9]+)")

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Close()
}
