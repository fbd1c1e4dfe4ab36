// Seeds the business directory with a small starter dataset so local
// installs have something to list before the LGU import runs.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/kdeguzman/negosyoplan/internal/adapters/postgres"
	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/pkg/config"
)

var starter = []domain.Business{
	{Name: "Kape't Pandesal", Category: "cafe", Barangay: "Balibago", Address: "Rizal Blvd, Balibago", Location: domain.GeoPoint{Lat: 14.2882, Lon: 121.0986}, PermitYear: 2024, Active: true},
	{Name: "Tita Nene's Carinderia", Category: "restaurant", Barangay: "Market Area", Address: "Santa Rosa Public Market", Location: domain.GeoPoint{Lat: 14.3126, Lon: 121.1117}, PermitYear: 2023, Active: true},
	{Name: "Southpoint Hardware", Category: "retail", Barangay: "Tagapo", Address: "National Hwy, Tagapo", Location: domain.GeoPoint{Lat: 14.3068, Lon: 121.1059}, PermitYear: 2024, Active: true},
	{Name: "Lakbay Laundry Hub", Category: "services", Barangay: "Dita", Address: "F. Gomez St, Dita", Location: domain.GeoPoint{Lat: 14.3021, Lon: 121.0924}, PermitYear: 2025, Active: true},
	{Name: "Nuvali Juice Cart", Category: "food_truck", Barangay: "Don Jose", Address: "Solenad, Nuvali", Location: domain.GeoPoint{Lat: 14.2398, Lon: 121.0565}, PermitYear: 2025, Active: true},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("negosyoplan-seed")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBusinessRepo(db)
	for i := range starter {
		if err := repo.Upsert(ctx, &starter[i]); err != nil {
			log.Fatalf("seed %s: %v", starter[i].Name, err)
		}
		log.Printf("OK  %s (%s)", starter[i].Name, starter[i].ID)
	}
	log.Printf("seeded %d businesses", len(starter))
}
