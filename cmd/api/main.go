package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"brightfuture/internal/config"
	"brightfuture/internal/database"
	"brightfuture/internal/domain/admin"
	"brightfuture/internal/domain/catalog"
	"brightfuture/internal/domain/estimate"
	"brightfuture/internal/domain/lead"
	"brightfuture/internal/domain/portfolio"
	"brightfuture/internal/domain/search"
	"brightfuture/internal/domain/testimonial"
	"brightfuture/internal/middleware"
	"brightfuture/internal/mirror"
	jwtsvc "brightfuture/internal/pkg/jwt"
	"brightfuture/internal/remote"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.MirrorDSN)
	if err != nil {
		log.Fatal(err)
	}

	mirrorStore, err := mirror.New(db)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	remoteDB, err := remote.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatal(err)
	}
	defer remote.Disconnect(remoteDB)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogStore := catalog.NewStore()
	catalogRemote := catalog.NewRemoteCatalog(remoteDB.Collection(remote.ColProducts))
	catalogService := catalog.NewService(catalogStore, mirrorStore, catalogRemote)
	if err := catalogService.Load(ctx, filepath.Join(cfg.DataDir, "products.json")); err != nil {
		log.Fatal(err)
	}
	catalogHandler := catalog.NewHandler(catalogService)

	portfolioStore := portfolio.NewStore()
	portfolioService := portfolio.NewService(portfolioStore, mirrorStore)
	if err := portfolioService.Load(ctx, filepath.Join(cfg.DataDir, "portfolio.json")); err != nil {
		log.Fatal(err)
	}
	portfolioHandler := portfolio.NewHandler(portfolioService)

	testimonialStore := testimonial.NewStore()
	testimonialService := testimonial.NewService(testimonialStore, mirrorStore)
	testimonialService.Load(ctx)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	leadRepo := lead.NewRepository(remoteDB)
	leadNotifier := lead.NewRelay(cfg.RelayEndpoint, cfg.CRMEndpoint, cfg.WebhookEndpoint)
	leadService := lead.NewService(leadRepo, leadNotifier)
	leadHandler := lead.NewHandler(leadService, productLookup{catalogService})

	estimateHandler := estimate.NewHandler(productSource{catalogService})

	searchService := search.NewService(catalogService, portfolioService)
	searchHandler := search.NewHandler(searchService)

	adminRepo := admin.NewRepository(remoteDB)
	adminService := admin.NewService(adminRepo, j)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		catalog.RegisterPublicRoutes(v1, catalogHandler)
		portfolio.RegisterPublicRoutes(v1, portfolioHandler)
		testimonial.RegisterPublicRoutes(v1, testimonialHandler)
		lead.RegisterPublicRoutes(v1, leadHandler)
		estimate.RegisterPublicRoutes(v1, estimateHandler)
		search.RegisterPublicRoutes(v1, searchHandler)
		admin.RegisterPublicRoutes(v1, adminHandler)

		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(j))
		{
			catalog.RegisterAdminRoutes(protected, catalogHandler)
			portfolio.RegisterAdminRoutes(protected, portfolioHandler)
			testimonial.RegisterAdminRoutes(protected, testimonialHandler)
			lead.RegisterAdminRoutes(protected, leadHandler)
			admin.RegisterAdminRoutes(protected, adminHandler)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// productLookup adapts the catalog service for contact prefill.
type productLookup struct {
	catalog *catalog.Service
}

func (l productLookup) ProductName(ctx context.Context, id string) (string, bool) {
	p, err := l.catalog.Get(id)
	if err != nil {
		return "", false
	}
	return p.Name, true
}

// productSource adapts the catalog service for estimate
// recommendations: most popular active products of a category.
type productSource struct {
	catalog *catalog.Service
}

func (s productSource) TopProducts(category string, limit int) []estimate.RecommendedProduct {
	products := s.catalog.List(catalog.Filters{
		Category: catalog.Category(category),
		Status:   catalog.StatusActive,
	}, catalog.SortPopular)

	if len(products) > limit {
		products = products[:limit]
	}
	picks := make([]estimate.RecommendedProduct, 0, len(products))
	for _, p := range products {
		picks = append(picks, estimate.RecommendedProduct{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: string(p.Category),
		})
	}
	return picks
}
