package router

import (
	"net/http"

	_ "pet-grooming-intake/docs" // registra la especificación de swagger
	"pet-grooming-intake/internal/adapters/imaging"
	mem "pet-grooming-intake/internal/adapters/storage/memory"
	"pet-grooming-intake/internal/domain/intake"
	"pet-grooming-intake/internal/middleware"
	"pet-grooming-intake/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultMaxUpload = 25 << 20

type Options struct {
	// Opcional: si viene nil se usa el registro in-memory (modo dev).
	Repo intake.Repository

	Breeds     []string
	OutputRoot string
	MaxUpload  int64 // bytes por foto

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewRecordsRepo()
	}

	maxUpload := opts.MaxUpload
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}

	images := imaging.New()
	svc := intake.NewService(repo, images, intake.Options{
		OutputRoot: opts.OutputRoot,
		Breeds:     opts.Breeds,
		Logger:     log,
	})

	intake.RegisterRoutes(r, svc, images, maxUpload)

	return r
}
