package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sitebazaar/sitebazaar-api/internal/config"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/database"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/http/handlers"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/http/middleware"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/mail"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %s", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("rabbitmq: %s", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	listingRepo := database.NewListingRepository(db)
	interestRepo := database.NewInterestRepository(db)
	historyRepo := database.NewFinancialHistoryRepository(db)

	// Outbound collaborators
	producer := queue.NewProducer(rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword,
		cfg.MailFrom, cfg.AdminInbox,
	)

	// Notification dispatcher: consumes the event queue, delivers mail.
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Use cases
	listingHandler := &handlers.ListingHandler{
		CreateUC:   usecase.NewCreateListingUseCase(listingRepo, historyRepo),
		UpdateUC:   usecase.NewUpdateListingUseCase(listingRepo, historyRepo),
		SubmitUC:   usecase.NewSubmitListingUseCase(listingRepo, producer),
		ModerateUC: usecase.NewModerateListingUseCase(listingRepo, producer),
		ArchiveUC:  usecase.NewArchiveListingUseCase(listingRepo),
		ReopenUC:   usecase.NewReopenListingUseCase(listingRepo),
		DeleteUC:   usecase.NewDeleteListingUseCase(listingRepo, historyRepo),
		GetUC:      usecase.NewGetListingUseCase(listingRepo),
		ListUC:     usecase.NewListListingsUseCase(listingRepo),
	}
	interestHandler := &handlers.InterestHandler{
		SubmitUC:  usecase.NewSubmitInterestUseCase(interestRepo, listingRepo, producer),
		ListUC:    usecase.NewListInterestsUseCase(interestRepo, listingRepo),
		AdvanceUC: usecase.NewAdvanceInterestUseCase(interestRepo, listingRepo),
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-User-ID", "X-Admin"},
	}))
	r.Use(middleware.Metrics)
	r.Use(middleware.Actor)

	r.Route("/listings", func(r chi.Router) {
		r.Post("/", listingHandler.Create)
		r.Get("/", listingHandler.List)
		r.Get("/{id}", listingHandler.Get)
		r.Patch("/{id}", listingHandler.Update)
		r.Delete("/{id}", listingHandler.Delete)
		r.Post("/{id}/submit", listingHandler.Submit)
		r.Post("/{id}/moderate", listingHandler.Moderate)
		r.Post("/{id}/archive", listingHandler.Archive)
		r.Post("/{id}/reopen", listingHandler.Reopen)
		r.Post("/{id}/interests", interestHandler.Submit)
	})
	r.Route("/interests", func(r chi.Router) {
		r.Get("/", interestHandler.List)
		r.Post("/{id}/status", interestHandler.Advance)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("sitebazaar api listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
