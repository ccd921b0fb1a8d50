package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"brightfuture/internal/config"
	"brightfuture/internal/database"
	"brightfuture/internal/domain/admin"
	"brightfuture/internal/domain/catalog"
	"brightfuture/internal/domain/portfolio"
	"brightfuture/internal/mirror"
	jwtsvc "brightfuture/internal/pkg/jwt"
	"brightfuture/internal/remote"
)

// Seeds the mirror database and the remote document store from the
// JSON fixtures under DATA_DIR, and creates the initial admin account.
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
		log.Fatal("mirror connection failed:", err)
	}

	mirrorStore, err := mirror.New(db)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	remoteDB, err := remote.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatal("remote connection failed:", err)
	}
	defer remote.Disconnect(remoteDB)

	log.Println("Seeding catalog...")
	catalogStore := catalog.NewStore()
	catalogRemote := catalog.NewRemoteCatalog(remoteDB.Collection(remote.ColProducts))
	catalogService := catalog.NewService(catalogStore, mirrorStore, catalogRemote)

	products, err := catalog.LoadSeed(filepath.Join(cfg.DataDir, "products.json"))
	if err != nil {
		log.Fatal(err)
	}
	if err := catalogService.Import(ctx, products); err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded %d products", len(products))

	log.Println("Seeding portfolio...")
	portfolioStore := portfolio.NewStore()
	portfolioService := portfolio.NewService(portfolioStore, mirrorStore)
	if err := portfolioService.Import(ctx, filepath.Join(cfg.DataDir, "portfolio.json")); err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded %d projects", len(portfolioService.List("", "", "")))

	log.Println("Creating admin account...")
	adminRepo := admin.NewRepository(remoteDB)
	adminService := admin.NewService(adminRepo, jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL))
	if err := adminService.EnsureDefault(ctx, "admin", "admin123"); err != nil {
		log.Fatal(err)
	}

	log.Println("Done")
}
