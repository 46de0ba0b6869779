package coach

import "strings"

// Keyword-triggered canned answers, checked in order. Used whenever no
// language model is configured or the call fails.
var fallbackResponses = []struct {
	keyword  string
	response string
}{
	{"help", "I'm here to help with your nutrition goals! You can ask me about meal planning, healthy recipes, or nutrition advice."},
	{"meal", "For meal planning, focus on balanced nutrition with proteins, healthy carbs, and plenty of vegetables. What specific meals are you planning?"},
	{"weight", "Sustainable weight management comes from consistent healthy eating and regular activity. Small changes make a big difference!"},
	{"calories", "Calorie needs vary by person. Focus on nutrient-dense foods rather than just counting calories. Quality matters!"},
	{"recipe", "I can help you find healthy recipes that match your dietary preferences. What type of cuisine do you enjoy?"},
}

const defaultResponse = "That's a great question! I'm here to help with your nutrition journey. Feel free to ask about meal planning, recipes, or nutrition advice."

// FallbackResponse answers a message with keyword rules only.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range fallbackResponses {
		if strings.Contains(lower, entry.keyword) {
			return entry.response
		}
	}
	return defaultResponse
}
