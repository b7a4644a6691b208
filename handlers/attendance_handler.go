package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"station-attendance/models"
	"station-attendance/pkg/attendance"
	"station-attendance/pkg/export"
	util "station-attendance/pkg/utils"
	"station-attendance/repository"
)

type AttendanceHandler struct {
	repo     repository.AttendanceRepository
	userRepo *repository.UserRepository
	now      func() time.Time
}

func NewAttendanceHandler(repo repository.AttendanceRepository, userRepo *repository.UserRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, userRepo: userRepo, now: time.Now}
}

// ComputeHours godoc
// @Summary Preview hours for one row
// @Description Total and overtime hours after an 8 hour shift. Missing times give zeros.
// @Tags Attendance
// @Produce json
// @Param checkIn query string false "Check-in HH:MM"
// @Param checkOut query string false "Check-out HH:MM"
// @Success 200 {object} attendance.Hours
// @Failure 400 {object} object{error=string} "Malformed time"
// @Router /attendance/compute [get]
//
// ComputeHours previews the hours for one row without saving anything.
func (h *AttendanceHandler) ComputeHours(c *fiber.Ctx) error {
	hours, err := attendance.ComputeHours(c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(hours)
}

// RecordAttendance godoc
// @Summary Record a day of attendance
// @Description Saves one record per entry with both times set. Other entries are skipped.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param attendance body models.AttendanceCreatePayload true "Date and entries"
// @Success 201 {object} models.RecordAttendanceResponse
// @Failure 400 {object} object{error=string} "No users, no complete entry, unknown user or malformed time"
// @Failure 500 {object} object{error=string} "Store write failed"
// @Router /attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users := h.userRepo.GetAll(ctx)
	if len(users) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No users found"})
	}

	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u.ID] = true
	}
	for _, entry := range payload.Entries {
		if !known[entry.UserID] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Unknown user %q", entry.UserID)})
		}
	}

	saved, err := h.repo.RecordDay(ctx, payload.Date, payload.Entries)
	if err != nil {
		if errors.Is(err, attendance.ErrInvalidTime) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(saved) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter check-in and check-out times for at least one user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.RecordAttendanceResponse{
		Message: fmt.Sprintf("Attendance saved successfully for %d user(s)!", len(saved)),
		Saved:   len(saved),
		Records: saved,
	})
}

// GetUserAttendance godoc
// @Summary List a user's records for a month
// @Tags Attendance
// @Produce json
// @Param userId query string true "Opaque user id"
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Zero-based month, defaults to the current month"
// @Success 200 {array} models.AttendanceRecord
// @Failure 400 {object} object{error=string} "Bad query"
// @Router /attendance [get]
func (h *AttendanceHandler) GetUserAttendance(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	period, err := h.periodFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	return c.Status(fiber.StatusOK).JSON(h.repo.FindAttendanceByUserAndMonth(ctx, userID, period))
}

// GetMonthlyGrid godoc
// @Summary Monthly grid for all users
// @Tags Monthly
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Zero-based month"
// @Success 200 {object} attendance.MonthlyGrid
// @Failure 400 {object} object{error=string} "Bad query"
// @Router /attendance/monthly [get]
func (h *AttendanceHandler) GetMonthlyGrid(c *fiber.Ctx) error {
	grid, err := h.monthlyGrid(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(grid)
}

// GetMonthlySummary godoc
// @Summary Monthly summary for one user
// @Description Unknown ids, including deleted users, give an empty month rather than an error.
// @Tags Monthly
// @Produce json
// @Param userId path string true "Opaque user id"
// @Param year query int false "Year"
// @Param month query int false "Zero-based month"
// @Success 200 {object} attendance.MonthlySummary
// @Failure 400 {object} object{error=string} "Bad query"
// @Router /attendance/monthly/{userId} [get]
func (h *AttendanceHandler) GetMonthlySummary(c *fiber.Ctx) error {
	period, err := h.periodFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	// Unknown or deleted users get an empty month; their records may outlive them.
	userID := c.Params("userId")
	return c.Status(fiber.StatusOK).JSON(attendance.AggregateMonth(h.repo.GetAll(ctx), userID, period))
}

// ExportMonthly godoc
// @Summary Download the monthly grid
// @Tags Monthly
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int false "Year"
// @Param month query int false "Zero-based month"
// @Param format query string false "csv or xlsx" Enums(csv, xlsx)
// @Success 200 {file} file "Monthly_Attendance_YYYY_MM.<format>"
// @Failure 400 {object} object{error=string} "Bad query or format"
// @Router /attendance/monthly/export [get]
func (h *AttendanceHandler) ExportMonthly(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	grid, err := h.monthlyGrid(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, grid, format); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, export.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", export.Filename(grid, format)))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *AttendanceHandler) monthlyGrid(c *fiber.Ctx) (attendance.MonthlyGrid, error) {
	period, err := h.periodFromQuery(c)
	if err != nil {
		return attendance.MonthlyGrid{}, err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	return attendance.BuildMonthlyGrid(h.userRepo.GetAll(ctx), h.repo.GetAll(ctx), period), nil
}

// periodFromQuery reads year and a zero-based month, defaulting to the
// current month.
func (h *AttendanceHandler) periodFromQuery(c *fiber.Ctx) (attendance.Period, error) {
	current := attendance.CurrentPeriod(h.now())

	year := current.Year
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return attendance.Period{}, fmt.Errorf("invalid year %q", raw)
		}
		year = v
	}

	month := current.Index()
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return attendance.Period{}, fmt.Errorf("invalid month %q", raw)
		}
		month = v
	}

	return attendance.PeriodFromIndex(year, month)
}
