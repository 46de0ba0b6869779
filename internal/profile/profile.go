package profile

import (
	"fmt"
	"math"
	"time"
)

// Known allergy values. Checkbox-style dietary inputs are split into
// restrictions and allergies using this set.
var allergyValues = map[string]bool{
	"nuts": true, "shellfish": true, "eggs": true, "soy": true,
	"fish": true, "wheat": true, "lactose": true,
}

// activityMultipliers scales BMR to a daily calorie goal.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

// Profile is a user's health and dietary profile document.
type Profile struct {
	FullName            string   `json:"full_name"`
	Phone               string   `json:"phone,omitempty"`
	DateOfBirth         string   `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Gender              string   `json:"gender,omitempty"`
	EmergencyContact    string   `json:"emergency_contact,omitempty"`
	HeightCM            float64  `json:"height_cm,omitempty"`
	WeightKG            float64  `json:"weight_kg,omitempty"`
	ActivityLevel       string   `json:"activity_level,omitempty"`
	FitnessGoals        []string `json:"fitness_goals,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	Allergies           []string `json:"allergies,omitempty"`
	HealthConditions    []string `json:"health_conditions,omitempty"`
}

// Stats are the derived health numbers shown alongside a profile. Zero
// values mean "not enough data to compute".
type Stats struct {
	BMI         float64 `json:"bmi,omitempty"`
	Age         int     `json:"age,omitempty"`
	CalorieGoal int     `json:"calorie_goal,omitempty"`
}

// SplitDietaryValues separates raw dietary checkbox values into restrictions
// and allergies.
func SplitDietaryValues(values []string) (restrictions, allergies []string) {
	for _, v := range values {
		if allergyValues[v] {
			allergies = append(allergies, v)
		} else {
			restrictions = append(restrictions, v)
		}
	}
	return restrictions, allergies
}

// Age computes the user's age in whole years at the given reference time.
// It returns 0 when the date of birth is missing or malformed.
func (p Profile) Age(now time.Time) int {
	if p.DateOfBirth == "" {
		return 0
	}
	birth, err := time.Parse("2006-01-02", p.DateOfBirth)
	if err != nil {
		return 0
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// BMI computes the body mass index in kg/m^2, or 0 when height or weight is
// missing.
func (p Profile) BMI() float64 {
	if p.HeightCM <= 0 || p.WeightKG <= 0 {
		return 0
	}
	heightM := p.HeightCM / 100
	return p.WeightKG / (heightM * heightM)
}

// BMR computes the basal metabolic rate using the Harris-Benedict equation.
// It returns 0 when any required field is missing or the gender is not one
// the equation defines coefficients for.
func (p Profile) BMR(now time.Time) float64 {
	age := p.Age(now)
	if p.HeightCM <= 0 || p.WeightKG <= 0 || age == 0 {
		return 0
	}

	switch p.Gender {
	case "male":
		return 88.362 + 13.397*p.WeightKG + 4.799*p.HeightCM - 5.677*float64(age)
	case "female":
		return 447.593 + 9.247*p.WeightKG + 3.098*p.HeightCM - 4.330*float64(age)
	default:
		return 0
	}
}

// CalorieGoal computes the daily calorie goal: BMR scaled by the activity
// multiplier. Unknown activity levels fall back to sedentary.
func (p Profile) CalorieGoal(now time.Time) int {
	bmr := p.BMR(now)
	if bmr == 0 {
		return 0
	}

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = 1.2
	}
	return int(math.Round(bmr * multiplier))
}

// ComputeStats derives all health numbers at once.
func (p Profile) ComputeStats(now time.Time) Stats {
	return Stats{
		BMI:         p.BMI(),
		Age:         p.Age(now),
		CalorieGoal: p.CalorieGoal(now),
	}
}

// FormatBMI renders a BMI value the way the profile page shows it.
func FormatBMI(bmi float64) string {
	if bmi == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", bmi)
}
