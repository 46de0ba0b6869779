package appointment

import (
	"time"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Consultation durations in minutes per appointment type.
var typeDurations = map[string]int{
	"consultation":      60,
	"follow_up":         30,
	"meal_review":       30,
	"weight_management": 45,
}

const defaultDurationMins = 30

// Nutritionist is a bookable consultant profile.
type Nutritionist struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRateCents int64    `json:"hourly_rate_cents"`
	Rating          float64  `json:"rating"`
	TotalReviews    int      `json:"total_reviews"`
	Bio             string   `json:"bio"`
}

// Appointment is a booked consultation.
type Appointment struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	NutritionistID string    `json:"nutritionist_id"`
	StartsAt       time.Time `json:"starts_at"`
	DurationMins   int       `json:"duration_mins"`
	Status         string    `json:"status"`
	AmountCents    int64     `json:"amount_cents"`
	PaymentRef     string    `json:"payment_ref"`
	CreatedAt      time.Time `json:"created_at"`
}

// Slot is a bookable start time on a given day.
type Slot struct {
	StartsAt time.Time `json:"starts_at"`
	Display  string    `json:"display"`
}

// Nutritionists is the bookable consultant roster.
var Nutritionists = []Nutritionist{
	{
		ID:              "nut-001",
		FullName:        "Dr. Sarah Mitchell",
		Specializations: []string{"weight_management", "sports_nutrition", "diabetes"},
		Languages:       []string{"English", "Spanish"},
		ExperienceYears: 12,
		HourlyRateCents: 9000,
		Rating:          4.8,
		TotalReviews:    127,
		Bio:             "Registered dietitian focused on sustainable weight management and metabolic health.",
	},
	{
		ID:              "nut-002",
		FullName:        "Marco Silva",
		Specializations: []string{"plant_based", "gut_health"},
		Languages:       []string{"English", "Portuguese"},
		ExperienceYears: 8,
		HourlyRateCents: 7000,
		Rating:          4.6,
		TotalReviews:    84,
		Bio:             "Specialist in plant-based nutrition and digestive wellness.",
	},
	{
		ID:              "nut-003",
		FullName:        "Amara Okafor",
		Specializations: []string{"prenatal", "pediatric", "food_allergies"},
		Languages:       []string{"English", "French"},
		ExperienceYears: 10,
		HourlyRateCents: 8500,
		Rating:          4.9,
		TotalReviews:    156,
		Bio:             "Family nutrition expert covering pregnancy, childhood nutrition and allergy management.",
	},
}

// FindNutritionist looks up a roster entry by ID.
func FindNutritionist(id string) *Nutritionist {
	for i := range Nutritionists {
		if Nutritionists[i].ID == id {
			return &Nutritionists[i]
		}
	}
	return nil
}

// DurationFor returns the consultation length in minutes for an appointment
// type.
func DurationFor(appointmentType string) int {
	if d, ok := typeDurations[appointmentType]; ok {
		return d
	}
	return defaultDurationMins
}

// PriceCents computes the consultation price from the nutritionist's hourly
// rate and the appointment duration.
func PriceCents(n *Nutritionist, durationMins int) int64 {
	return n.HourlyRateCents * int64(durationMins) / 60
}

// AvailableSlots generates the bookable half-hour slots for a day: 9:00
// through 17:30, excluding slots in the past and slots already booked.
func AvailableSlots(day time.Time, now time.Time, booked []Appointment) []Slot {
	bookedAt := make(map[time.Time]bool, len(booked))
	for _, a := range booked {
		bookedAt[a.StartsAt.UTC()] = true
	}

	var slots []Slot
	for hour := 9; hour <= 17; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
			if !start.After(now) {
				continue
			}
			if bookedAt[start.UTC()] {
				continue
			}
			slots = append(slots, Slot{
				StartsAt: start,
				Display:  start.Format("3:04 PM"),
			})
		}
	}
	return slots
}
