package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service handles booking and managing consultations.
type Service struct {
	repo        *Repository
	videoSecret string
	now         func() time.Time
}

// NewService creates an appointment Service.
func NewService(repo *Repository, videoSecret string) *Service {
	return &Service{
		repo:        repo,
		videoSecret: videoSecret,
		now:         time.Now,
	}
}

// BookingRequest describes a consultation booking.
type BookingRequest struct {
	UserID          string
	NutritionistID  string
	AppointmentType string
	StartsAt        time.Time
	Card            Card
}

// Book charges the card and persists the appointment. The slot must still be
// free at booking time.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	nutritionist := FindNutritionist(req.NutritionistID)
	if nutritionist == nil {
		return nil, fmt.Errorf("unknown nutritionist %q", req.NutritionistID)
	}

	now := s.now()
	if !req.StartsAt.After(now) {
		return nil, fmt.Errorf("appointment time %s is in the past", req.StartsAt.Format(time.RFC3339))
	}

	booked, err := s.repo.ListBookedForDay(ctx, req.NutritionistID, req.StartsAt.UTC())
	if err != nil {
		return nil, err
	}
	for _, b := range booked {
		if b.StartsAt.Equal(req.StartsAt.UTC()) {
			return nil, fmt.Errorf("slot %s is already booked", req.StartsAt.Format(time.RFC3339))
		}
	}

	duration := DurationFor(req.AppointmentType)
	amount := PriceCents(nutritionist, duration)

	charge, err := ProcessPayment(req.Card, amount, now)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	appt := &Appointment{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		NutritionistID: req.NutritionistID,
		StartsAt:       req.StartsAt.UTC(),
		DurationMins:   duration,
		Status:         StatusScheduled,
		AmountCents:    charge.AmountCents,
		PaymentRef:     charge.Reference,
		CreatedAt:      now.UTC(),
	}
	if err := s.repo.Save(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Slots returns the free half-hour slots for a nutritionist on a day.
func (s *Service) Slots(ctx context.Context, nutritionistID string, day time.Time) ([]Slot, error) {
	booked, err := s.repo.ListBookedForDay(ctx, nutritionistID, day)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(day, s.now(), booked), nil
}

// Cancel marks a scheduled appointment as cancelled.
func (s *Service) Cancel(ctx context.Context, userID, appointmentID string) error {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt == nil || appt.UserID != userID {
		return fmt.Errorf("appointment %q not found", appointmentID)
	}
	if appt.Status != StatusScheduled {
		return fmt.Errorf("appointment %q is %s, not scheduled", appointmentID, appt.Status)
	}
	return s.repo.UpdateStatus(ctx, appointmentID, StatusCancelled)
}

// JoinToken issues a video call token for a scheduled appointment.
func (s *Service) JoinToken(ctx context.Context, userID, appointmentID string) (string, error) {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if appt == nil || appt.UserID != userID {
		return "", fmt.Errorf("appointment %q not found", appointmentID)
	}
	if appt.Status != StatusScheduled {
		return "", fmt.Errorf("appointment %q is %s, not scheduled", appointmentID, appt.Status)
	}
	return NewVideoToken(s.videoSecret, appointmentID, userID, s.now())
}
