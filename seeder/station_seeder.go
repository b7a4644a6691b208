package seeder

import (
	"context"
	"log"
	"time"

	"station-attendance/models"
	"station-attendance/repository"
)

type demoStation struct {
	name, area, bus string
	lat, lon        float64
	radius          int
}

var demoStations = []demoStation{
	{"Swargate Depot", "Swargate", "Swargate Bus Stand", 18.5018, 73.8636, 150},
	{"Shivajinagar Terminal", "Shivajinagar", "Shivajinagar Bus Stop", 18.5308, 73.8475, 100},
	{"Hadapsar Yard", "Hadapsar", "", 18.5089, 73.9260, 200},
	{"Kothrud Office", "Kothrud", "Kothrud Depot", 18.5074, 73.8077, 80},
}

// SeedStations adds the demo stations when none exist yet.
func SeedStations(stationRepo repository.StationRepository) {
	log.Println("🌱 Seeding stations...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if existing := stationRepo.GetAll(ctx); len(existing) > 0 {
		log.Printf("✅ %d station(s) already present, skipping station seeding.", len(existing))
		return
	}

	for _, s := range demoStations {
		lat, lon := s.lat, s.lon
		_, err := stationRepo.CreateStation(ctx, models.StationCreatePayload{
			StationName:      s.name,
			PlaceArea:        s.area,
			NearbyBusStation: s.bus,
			Latitude:         &lat,
			Longitude:        &lon,
			Radius:           s.radius,
		})
		if err != nil {
			log.Printf("❌ Failed to save station '%s': %v", s.name, err)
			continue
		}
		log.Printf("✔ Station '%s' added.", s.name)
	}

	log.Println("✅ Station seeding finished.")
}
