package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/raffasdev/neocustomers/internal/config"
	"github.com/raffasdev/neocustomers/internal/infra/database"
	"github.com/raffasdev/neocustomers/internal/infra/http/handlers"
	"github.com/raffasdev/neocustomers/internal/infra/http/middleware"
	"github.com/raffasdev/neocustomers/internal/infra/mail"
	"github.com/raffasdev/neocustomers/internal/infra/queue"
	"github.com/raffasdev/neocustomers/internal/infra/security"
	"github.com/raffasdev/neocustomers/internal/infra/token"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.FromEnv()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	// Broker é opcional: sem ele o cadastro funciona, só não sai o e-mail de
	// boas-vindas.
	var events usecase.EventPublisherInterface
	var rabbit *queue.RabbitMQ
	if cfg.AMQPURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to RabbitMQ")
		}
		defer rabbit.Close()
		events = queue.NewProducer(rabbit.Ch)

		sender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		worker := queue.NewWorker(rabbit.Ch, sender)
		go worker.Start(queue.QueueName)
	}

	customerRepo := database.NewCustomerRepository(db)
	userRepo := database.NewUserRepository(db)

	hasher := security.NewBcryptHasher()
	tokens := token.NewJWTGenerator(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTExpiry)

	customerUC := usecase.NewCustomerUseCase(customerRepo, events)
	authUC := usecase.NewAuthUseCase(userRepo, hasher, tokens)

	customerHandler := handlers.NewCustomerHandler(customerUC)
	authHandler := handlers.NewAuthHandler(authUC)

	healthHandler := handlers.NewHealthHandler(db, nil)
	if rabbit != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbit.Conn)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Post("/", customerHandler.Create)
		r.Get("/", customerHandler.List)
		r.Get("/{id}", customerHandler.Get)
		r.Put("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)
	})

	log.Info().Str("addr", cfg.Addr).Msg("neocustomers API listening")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
