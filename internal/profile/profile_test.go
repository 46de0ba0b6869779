package profile

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestAge(t *testing.T) {
	tests := []struct {
		name        string
		dateOfBirth string
		expected    int
	}{
		{"BirthdayPassed", "1990-03-10", 35},
		{"BirthdayToday", "1990-06-15", 35},
		{"BirthdayUpcoming", "1990-09-20", 34},
		{"Missing", "", 0},
		{"Malformed", "not-a-date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{DateOfBirth: tt.dateOfBirth}
			if got := p.Age(testNow); got != tt.expected {
				t.Errorf("Age() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestBMI(t *testing.T) {
	p := Profile{HeightCM: 180, WeightKG: 75}
	got := p.BMI()
	if math.Abs(got-23.148) > 0.01 {
		t.Errorf("BMI() = %.3f, expected ~23.148", got)
	}

	if got := (Profile{WeightKG: 75}).BMI(); got != 0 {
		t.Errorf("Expected 0 BMI without height, got %.3f", got)
	}
}

func TestBMR(t *testing.T) {
	t.Run("Male", func(t *testing.T) {
		p := Profile{Gender: "male", HeightCM: 180, WeightKG: 80, DateOfBirth: "1995-01-01"}
		// 88.362 + 13.397*80 + 4.799*180 - 5.677*30
		expected := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
		if got := p.BMR(testNow); math.Abs(got-expected) > 0.001 {
			t.Errorf("BMR() = %.3f, expected %.3f", got, expected)
		}
	})

	t.Run("Female", func(t *testing.T) {
		p := Profile{Gender: "female", HeightCM: 165, WeightKG: 60, DateOfBirth: "1995-01-01"}
		expected := 447.593 + 9.247*60 + 3.098*165 - 4.330*30
		if got := p.BMR(testNow); math.Abs(got-expected) > 0.001 {
			t.Errorf("BMR() = %.3f, expected %.3f", got, expected)
		}
	})

	t.Run("UnknownGender", func(t *testing.T) {
		p := Profile{Gender: "", HeightCM: 165, WeightKG: 60, DateOfBirth: "1995-01-01"}
		if got := p.BMR(testNow); got != 0 {
			t.Errorf("Expected 0 BMR without gender, got %.3f", got)
		}
	})

	t.Run("MissingAge", func(t *testing.T) {
		p := Profile{Gender: "male", HeightCM: 180, WeightKG: 80}
		if got := p.BMR(testNow); got != 0 {
			t.Errorf("Expected 0 BMR without date of birth, got %.3f", got)
		}
	})
}

func TestCalorieGoal(t *testing.T) {
	p := Profile{
		Gender:        "male",
		HeightCM:      180,
		WeightKG:      80,
		DateOfBirth:   "1995-01-01",
		ActivityLevel: "moderately_active",
	}

	bmr := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
	expected := int(math.Round(bmr * 1.55))
	if got := p.CalorieGoal(testNow); got != expected {
		t.Errorf("CalorieGoal() = %d, expected %d", got, expected)
	}

	t.Run("UnknownActivityFallsBackToSedentary", func(t *testing.T) {
		p.ActivityLevel = "astronaut"
		expected := int(math.Round(bmr * 1.2))
		if got := p.CalorieGoal(testNow); got != expected {
			t.Errorf("CalorieGoal() = %d, expected %d", got, expected)
		}
	})
}

func TestSplitDietaryValues(t *testing.T) {
	restrictions, allergies := SplitDietaryValues([]string{"vegetarian", "nuts", "gluten_free", "shellfish"})

	if len(restrictions) != 2 || restrictions[0] != "vegetarian" || restrictions[1] != "gluten_free" {
		t.Errorf("Unexpected restrictions: %v", restrictions)
	}
	if len(allergies) != 2 || allergies[0] != "nuts" || allergies[1] != "shellfish" {
		t.Errorf("Unexpected allergies: %v", allergies)
	}
}

func TestFormatBMI(t *testing.T) {
	if got := FormatBMI(23.148); got != "23.1" {
		t.Errorf("FormatBMI() = %q, expected %q", got, "23.1")
	}
	if got := FormatBMI(0); got != "-" {
		t.Errorf("FormatBMI() = %q, expected %q", got, "-")
	}
}
