package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	addressapp "github.com/wpangestu/contacts-api/application/address"
	contactapp "github.com/wpangestu/contacts-api/application/contact"
	userapp "github.com/wpangestu/contacts-api/application/user"
	"github.com/wpangestu/contacts-api/cmd/config"
	redisclient "github.com/wpangestu/contacts-api/cmd/redis"
	_ "github.com/wpangestu/contacts-api/docs"
	addressRepo "github.com/wpangestu/contacts-api/repository/address"
	contactRepo "github.com/wpangestu/contacts-api/repository/contact"
	sessionRepo "github.com/wpangestu/contacts-api/repository/session"
	txRepo "github.com/wpangestu/contacts-api/repository/tx"
	userRepo "github.com/wpangestu/contacts-api/repository/user"
	"github.com/wpangestu/contacts-api/transport"
	"github.com/wpangestu/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// @title CONTACTS API
// @version 1.0
// @description Personal contact book API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client; the session cache degrades to DB lookups
	// when it is unavailable
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("err connect redis, session cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	SessionRepo := sessionRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, SessionRepo)
	ContactApp := contactapp.NewContactApp(TxRepo, ContactRepo, AddressRepo)
	AddressApp := addressapp.NewAddressApp(ContactRepo, AddressRepo)

	httpTransport := transport.NewTransport(UserApp, ContactApp, AddressApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
