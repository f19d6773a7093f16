package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lendit/lendit-backend/internal/auth"
	"github.com/lendit/lendit-backend/internal/booking"
	bookingHttp "github.com/lendit/lendit-backend/internal/booking/http"
	"github.com/lendit/lendit-backend/internal/file"
	fileHttp "github.com/lendit/lendit-backend/internal/file/http"
	"github.com/lendit/lendit-backend/internal/item"
	itemHttp "github.com/lendit/lendit-backend/internal/item/http"
	"github.com/lendit/lendit-backend/internal/itemrequest"
	requestHttp "github.com/lendit/lendit-backend/internal/itemrequest/http"
	"github.com/lendit/lendit-backend/internal/user"
	userHttp "github.com/lendit/lendit-backend/internal/user/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
	FileService    file.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware and registers routes for all modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		itemHttp.RegisterRoutes(v1, itemHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		requestHttp.RegisterRoutes(v1, requestHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
