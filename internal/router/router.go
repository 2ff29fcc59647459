package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "cat-daycare/internal/adapters/storage/memory"
	pg "cat-daycare/internal/adapters/storage/postgres"
	"cat-daycare/internal/adapters/storage/rest"
	"cat-daycare/internal/domain/bookings"
	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/middleware"
	"cat-daycare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres directo.
	DB *sql.DB

	// Opcional: table store remoto estilo PostgREST (STORE_URL / STORE_API_KEY).
	StoreURL    string
	StoreAPIKey string

	// Opcional: logger de requests. nil = sin logging.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		clientsRepo  clients.Repository
		bookingsRepo bookings.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	storeURL := opts.StoreURL
	if storeURL == "" {
		storeURL = os.Getenv("STORE_URL")
	}
	apiKey := opts.StoreAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("STORE_API_KEY")
	}

	switch {
	case db != nil:
		clientsRepo = pg.NewClientsRepo(db)
		bookingsRepo = pg.NewBookingsRepo(db)
	case storeURL != "":
		store, err := rest.NewStore(storeURL, apiKey)
		if err == nil {
			clientsRepo = rest.NewClientsRepo(store)
			bookingsRepo = rest.NewBookingsRepo(store)
		}
	}

	// Fallback in-memory (dev y tests)
	if clientsRepo == nil {
		cmem := mem.NewClientsRepo()
		clientsRepo = cmem
		bookingsRepo = mem.NewBookingsRepo(cmem)
	}

	// Services por módulo
	clientsSvc := clients.NewService(clientsRepo)
	bookingsSvc := bookings.NewService(bookingsRepo, clientsSvc)

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc)
	bookings.RegisterRoutes(r, bookingsSvc)

	return r
}
