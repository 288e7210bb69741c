package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/galaxium-booking/api"
	"github.com/Domenick1991/galaxium-booking/config"
	"github.com/Domenick1991/galaxium-booking/internal/agent"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server hosting the REST API, the agent tool-call
// endpoint, and swagger docs, and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	log *logrus.Logger,
	userHandler *api.UserHandler,
	flightHandler *api.FlightHandler,
	bookingHandler *api.BookingHandler,
	agentServer *agent.Server,
) error {
	router := newRouter(cfg, userHandler, flightHandler, bookingHandler, agentServer)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	log.WithField("address", cfg.HTTP.Address).Info("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	userHandler *api.UserHandler,
	flightHandler *api.FlightHandler,
	bookingHandler *api.BookingHandler,
	agentServer *agent.Server,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	root := router.Group("")
	userHandler.Register(root)
	flightHandler.Register(root)
	bookingHandler.Register(root)
	agentServer.Register(root)

	if cfg.HTTP.SwaggerFile != "" {
		router.StaticFile("/swagger/doc.json", cfg.HTTP.SwaggerFile)
		router.GET("/docs/*any", gin.WrapH(http.StripPrefix("/docs",
			httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))))
	}

	return router
}
