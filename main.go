package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/LadsThatCode/Pinpoint-BE/config"
	handlerInit "github.com/LadsThatCode/Pinpoint-BE/internal/handler/util"
	repoInit "github.com/LadsThatCode/Pinpoint-BE/internal/repository/util"
	servInit "github.com/LadsThatCode/Pinpoint-BE/internal/service/util"
	"github.com/go-playground/validator"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		panic(err)
	}
	if cfg.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_PLACES_API_KEY is not set")
	}

	repo, err := repoInit.New(cfg)
	if err != nil {
		panic(err)
	}

	serv := servInit.New(cfg, repo)

	// Initialize Echo
	e := echo.New()
	e.Logger.SetLevel(4) // INFO level

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- health check ---
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Pinpoint API is healthy!")
	})

	// Initialize handlers
	handlerInit.InitHandler(cfg, e, serv)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.AppPort)
	go func() {
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	log.Printf("Server is running at http://localhost%s", serverAddr)

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
