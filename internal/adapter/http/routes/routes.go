package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	_ "cemiterio_api/docs"
	"cemiterio_api/internal/adapter/http/dto/request"
	"cemiterio_api/internal/adapter/http/handlers"
	"cemiterio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Handlers groups everything the router serves.
type Handlers struct {
	Gravesites  *handlers.GravesiteHandler
	Contracts   *handlers.ContractHandler
	Deceased    *handlers.DeceasedHandler
	Plotholders *handlers.PlotholderHandler
}

// Run wires storage, use cases and handlers, then blocks serving HTTP.
func Run() {
	ctx := context.Background()

	if err := registerValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	repos, err := buildRepositories(ctx, os.Getenv("STORAGE_DRIVER"))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	router := NewRouter(newHandlers(repos))

	port := getenvDefault("PORT", defaultPort)
	log.Printf("[http][routes] listening port=%s storage=%s", port, repos.driver)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func newHandlers(repos repositories) Handlers {
	occupancy := usecase.NewOccupancyUseCase(repos.occupancy, repos.gravesites)
	return Handlers{
		Gravesites:  handlers.NewGravesiteHandler(usecase.NewGravesiteUseCase(repos.gravesites), occupancy),
		Contracts:   handlers.NewContractHandler(usecase.NewContractUseCase(repos.contracts), occupancy),
		Deceased:    handlers.NewDeceasedHandler(usecase.NewDeceasedUseCase(repos.deceased), occupancy),
		Plotholders: handlers.NewPlotholderHandler(usecase.NewPlotholderUseCase(repos.plotholders)),
	}
}

// NewRouter builds the gin engine with middlewares and every route mounted.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", handlers.Ping)

	addPlotholderRoutes(router, h.Plotholders)
	addGravesiteRoutes(router, h.Gravesites)
	addContractRoutes(router, h.Contracts)
	addDeceasedRoutes(router, h.Deceased)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[http][routes] recovered from panic method=%s path=%s err=%v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	}))
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return request.RegisterValidators(v)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
