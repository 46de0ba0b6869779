package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apptdb "nutriplan/internal/appointment/db"
)

// Repository handles persistence of appointments.
type Repository struct {
	queries *apptdb.Queries
	db      *sql.DB
}

// NewRepository creates a new appointment repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: apptdb.New(d),
		db:      d,
	}
}

// Save inserts a booked appointment.
func (r *Repository) Save(ctx context.Context, a *Appointment) error {
	err := r.queries.InsertAppointment(ctx, apptdb.InsertAppointmentParams{
		ID:             a.ID,
		UserID:         a.UserID,
		NutritionistID: a.NutritionistID,
		StartsAt:       a.StartsAt.UTC(),
		DurationMins:   int64(a.DurationMins),
		Status:         a.Status,
		AmountCents:    a.AmountCents,
		PaymentRef:     a.PaymentRef,
		CreatedAt:      a.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	dbAppt, err := r.queries.GetAppointmentByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No appointment found
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	a := mapAppointment(dbAppt)
	return &a, nil
}

// ListByUserID retrieves a user's appointments, newest first.
func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]Appointment, error) {
	dbAppts, err := r.queries.ListAppointmentsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appts := make([]Appointment, 0, len(dbAppts))
	for _, dbAppt := range dbAppts {
		appts = append(appts, mapAppointment(dbAppt))
	}
	return appts, nil
}

// ListBookedForDay retrieves a nutritionist's non-cancelled appointments on a
// given calendar day.
func (r *Repository) ListBookedForDay(ctx context.Context, nutritionistID string, day time.Time) ([]Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dbAppts, err := r.queries.ListAppointmentsByNutritionistAndDay(ctx, apptdb.ListAppointmentsByNutritionistAndDayParams{
		NutritionistID: nutritionistID,
		StartsAt:       dayStart,
		StartsAt_2:     dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list booked appointments: %w", err)
	}

	appts := make([]Appointment, 0, len(dbAppts))
	for _, dbAppt := range dbAppts {
		appts = append(appts, mapAppointment(dbAppt))
	}
	return appts, nil
}

// UpdateStatus transitions an appointment to a new status.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.queries.UpdateAppointmentStatus(ctx, apptdb.UpdateAppointmentStatusParams{
		Status: status,
		ID:     id,
	})
}

func mapAppointment(dbAppt apptdb.Appointment) Appointment {
	return Appointment{
		ID:             dbAppt.ID,
		UserID:         dbAppt.UserID,
		NutritionistID: dbAppt.NutritionistID,
		StartsAt:       dbAppt.StartsAt,
		DurationMins:   int(dbAppt.DurationMins),
		Status:         dbAppt.Status,
		AmountCents:    dbAppt.AmountCents,
		PaymentRef:     dbAppt.PaymentRef,
		CreatedAt:      dbAppt.CreatedAt,
	}
}
