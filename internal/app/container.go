package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lendit/lendit-backend/internal/api"
	"github.com/lendit/lendit-backend/internal/auth"
	"github.com/lendit/lendit-backend/internal/booking"
	"github.com/lendit/lendit-backend/internal/file"
	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/itemrequest"
	"github.com/lendit/lendit-backend/internal/pkg/storage"
	"github.com/lendit/lendit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage failed: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Item module. Its booking and request views are fed by repository
	// adapters so construction stays acyclic.
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(
		itemRepo,
		userService,
		itemrequest.NewItemRequestSource(requestRepo),
		booking.NewItemBookingSource(bookingRepo),
	)

	// Booking module
	bookingService := booking.NewService(bookingRepo, itemService, userService)

	// Item request module
	requestService := itemrequest.NewService(requestRepo, userService, itemService)

	// File module
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, itemService, store)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
		FileService:    fileService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
