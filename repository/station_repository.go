package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"station-attendance/models"
	"station-attendance/store"
)

var allowedPageSizes = []int{10, 25, 50, 100}

type StationRepository interface {
	GetAll(ctx context.Context) []models.Station
	FindStationByID(ctx context.Context, id string) *models.Station
	CreateStation(ctx context.Context, payload models.StationCreatePayload) (*models.Station, error)
	Search(ctx context.Context, term string, page, perPage int) models.StationPage
}

type stationRepository struct {
	mu       sync.Mutex
	stations *store.Collection[models.Station]
}

func NewStationRepository(backend store.Backend) StationRepository {
	return &stationRepository{
		stations: store.NewCollection[models.Station](backend, store.StationsKey),
	}
}

func (r *stationRepository) GetAll(ctx context.Context) []models.Station {
	return r.stations.Load(ctx)
}

func (r *stationRepository) FindStationByID(ctx context.Context, id string) *models.Station {
	for _, s := range r.stations.Load(ctx) {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

func (r *stationRepository) CreateStation(ctx context.Context, payload models.StationCreatePayload) (*models.Station, error) {
	station := models.Station{
		ID:               uuid.NewString(),
		StationName:      strings.TrimSpace(payload.StationName),
		PlaceArea:        strings.TrimSpace(payload.PlaceArea),
		NearbyBusStation: strings.TrimSpace(payload.NearbyBusStation),
		Radius:           payload.Radius,
		CreatedAt:        time.Now().UTC(),
	}
	if payload.Latitude != nil {
		station.Latitude = *payload.Latitude
	}
	if payload.Longitude != nil {
		station.Longitude = *payload.Longitude
	}
	if station.NearbyBusStation == "" {
		station.NearbyBusStation = models.DefaultNearbyBusStation
	}
	if station.Radius == 0 {
		station.Radius = models.DefaultStationRadius
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stations := append(r.stations.Load(ctx), station)
	if err := r.stations.Replace(ctx, stations); err != nil {
		return nil, fmt.Errorf("failed to create station: %w", err)
	}
	return &station, nil
}

// Search filters by a case-insensitive substring of name, place area or
// nearby bus station, then pages the result. perPage falls back to 10 when
// it is not one of 10, 25, 50 or 100; page is clamped into range.
func (r *stationRepository) Search(ctx context.Context, term string, page, perPage int) models.StationPage {
	term = strings.ToLower(strings.TrimSpace(term))

	filtered := make([]models.Station, 0)
	for _, s := range r.stations.Load(ctx) {
		if term == "" ||
			strings.Contains(strings.ToLower(s.StationName), term) ||
			strings.Contains(strings.ToLower(s.PlaceArea), term) ||
			strings.Contains(strings.ToLower(s.NearbyBusStation), term) {
			filtered = append(filtered, s)
		}
	}

	if !isAllowedPageSize(perPage) {
		perPage = allowedPageSizes[0]
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := min(start+perPage, total)

	result := models.StationPage{
		Data:       filtered[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		End:        end,
	}
	if total > 0 {
		result.Start = start + 1
	}
	return result
}

func isAllowedPageSize(n int) bool {
	for _, size := range allowedPageSizes {
		if size == n {
			return true
		}
	}
	return false
}
