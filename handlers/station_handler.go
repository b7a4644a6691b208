package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"station-attendance/models"
	"station-attendance/pkg/attendance"
	util "station-attendance/pkg/utils"
	"station-attendance/repository"
)

type StationHandler struct {
	repo repository.StationRepository
}

func NewStationHandler(repo repository.StationRepository) *StationHandler {
	return &StationHandler{repo: repo}
}

// GetStations godoc
// @Summary Search stations
// @Description Case-insensitive match on name, place area or nearby bus station, paged.
// @Tags Stations
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "1-based page"
// @Param perPage query int false "10, 25, 50 or 100"
// @Success 200 {object} models.StationPage
// @Router /stations [get]
func (h *StationHandler) GetStations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	page := h.repo.Search(ctx, c.Query("search"), c.QueryInt("page", 1), c.QueryInt("perPage", 10))
	return c.Status(fiber.StatusOK).JSON(page)
}

// CreateStation godoc
// @Summary Add a station
// @Tags Stations
// @Accept json
// @Produce json
// @Param station body models.StationCreatePayload true "New station"
// @Success 201 {object} models.CreateStationResponse
// @Failure 400 {object} object{errors=[]util.ErrorResponse} "Invalid fields"
// @Failure 500 {object} object{error=string} "Store write failed"
// @Router /stations [post]
func (h *StationHandler) CreateStation(c *fiber.Ctx) error {
	var payload models.StationCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	station, err := h.repo.CreateStation(ctx, payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateStationResponse{
		Message: "Station added successfully",
		Station: station,
	})
}

// GetStationByID godoc
// @Summary Get a station
// @Tags Stations
// @Produce json
// @Param id path string true "Station id"
// @Success 200 {object} models.Station
// @Failure 404 {object} object{error=string} "Station not found"
// @Router /stations/{id} [get]
func (h *StationHandler) GetStationByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	station := h.repo.FindStationByID(ctx, c.Params("id"))
	if station == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}
	return c.Status(fiber.StatusOK).JSON(station)
}

// GetStationQRCode godoc
// @Summary Station QR code
// @Tags Stations
// @Produce image/png
// @Param id path string true "Station id"
// @Success 200 {file} file "PNG"
// @Failure 404 {object} object{error=string} "Station not found"
// @Router /stations/{id}/qr [get]
//
// GetStationQRCode serves a PNG encoding the station id for on-site scanning.
func (h *StationHandler) GetStationQRCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	station := h.repo.FindStationByID(ctx, c.Params("id"))
	if station == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}

	png, err := qrcode.Encode(station.ID, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

// LocateInStation godoc
// @Summary Check a point against a station geofence
// @Tags Stations
// @Accept json
// @Produce json
// @Param id path string true "Station id"
// @Param point body models.LocatePayload true "Coordinates"
// @Success 200 {object} models.LocateResponse
// @Failure 400 {object} object{errors=[]util.ErrorResponse} "Invalid coordinates"
// @Failure 404 {object} object{error=string} "Station not found"
// @Router /stations/{id}/locate [post]
func (h *StationHandler) LocateInStation(c *fiber.Ctx) error {
	var payload models.LocatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	station := h.repo.FindStationByID(ctx, c.Params("id"))
	if station == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}

	distance, inside := util.WithinRadius(station.Latitude, station.Longitude, station.Radius, *payload.Latitude, *payload.Longitude)
	return c.Status(fiber.StatusOK).JSON(models.LocateResponse{
		StationID: station.ID,
		Distance:  attendance.Round2(distance),
		Radius:    station.Radius,
		Inside:    inside,
	})
}
