package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"station-attendance/models"
	"station-attendance/pkg/attendance"
	"station-attendance/store"
)

type AttendanceRepository interface {
	GetAll(ctx context.Context) []models.AttendanceRecord
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
	FindAttendanceByUserAndMonth(ctx context.Context, userID string, period attendance.Period) []models.AttendanceRecord
	RecordDay(ctx context.Context, date string, entries []models.AttendanceEntryPayload) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	mu      sync.Mutex
	records *store.Collection[models.AttendanceRecord]
}

func NewAttendanceRepository(backend store.Backend) AttendanceRepository {
	return &attendanceRepository{
		records: store.NewCollection[models.AttendanceRecord](backend, store.AttendanceKey),
	}
}

func (r *attendanceRepository) GetAll(ctx context.Context) []models.AttendanceRecord {
	return r.records.Load(ctx)
}

// CreateAttendance appends record, assigning an id when it has none.
// Records for a user and date that already has one are appended too.
func (r *attendanceRepository) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.records.Load(ctx), *record)
	if err := r.records.Replace(ctx, records); err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindAttendanceByUserAndMonth(ctx context.Context, userID string, period attendance.Period) []models.AttendanceRecord {
	return attendance.FilterByUserAndMonth(r.records.Load(ctx), userID, period)
}

// RecordDay computes hours for every entry that has both times and appends
// the resulting records in one write. Entries missing a time are skipped.
// A malformed time aborts the whole batch before anything is written.
func (r *attendanceRepository) RecordDay(ctx context.Context, date string, entries []models.AttendanceEntryPayload) ([]models.AttendanceRecord, error) {
	saved := make([]models.AttendanceRecord, 0, len(entries))
	for _, entry := range entries {
		checkIn := strings.TrimSpace(entry.CheckIn)
		checkOut := strings.TrimSpace(entry.CheckOut)
		if checkIn == "" || checkOut == "" {
			continue
		}

		hours, err := attendance.ComputeHours(checkIn, checkOut)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", entry.UserID, err)
		}

		saved = append(saved, models.AttendanceRecord{
			ID:       uuid.NewString(),
			UserID:   entry.UserID,
			Date:     date,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			TotalHrs: hours.TotalHrs,
			OtHrs:    hours.OtHrs,
		})
	}

	if len(saved) == 0 {
		return saved, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.records.Load(ctx), saved...)
	if err := r.records.Replace(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return saved, nil
}
