package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"nutriplan/internal/app"
	"nutriplan/internal/appointment"
	"nutriplan/internal/config"
	"nutriplan/internal/grocery"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/order"
	"nutriplan/internal/profile"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(ctx, application, os.Args[2:])
	case "grocery":
		runGrocery(ctx, application, os.Args[2:])
	case "order":
		runOrder(ctx, application, os.Args[2:])
	case "profile":
		runProfile(ctx, application, os.Args[2:])
	case "coach":
		runCoach(ctx, application, os.Args[2:])
	case "slots":
		runSlots(ctx, application, os.Args[2:])
	case "book":
		runBook(ctx, application, os.Args[2:])
	case "cancel":
		runCancel(ctx, application, os.Args[2:])
	case "join":
		runJoin(ctx, application, os.Args[2:])
	case "clip":
		runClip(ctx, application, os.Args[2:])
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		if err := application.Metrics.Cleanup(*days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Println("Old metric records removed.")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runPlan(ctx context.Context, application *app.App, args []string) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	user := planCmd.String("user", "default", "User ID")
	diet := planCmd.String("diet", "balanced", "Diet type (balanced, vegetarian, vegan, keto, ...)")
	planType := planCmd.String("type", "weekly", "Plan type: daily or weekly")
	meals := planCmd.Int("meals", 3, "Meals per day (1-4)")
	calories := planCmd.Int("calories", 0, "Daily calorie target (0 for none)")
	health := planCmd.String("health", "", "Health labels, comma separated")
	cuisine := planCmd.String("cuisine", "", "Cuisine type filter")
	planCmd.Parse(args)

	prefs := mealplan.Preferences{
		DietType:     *diet,
		PlanType:     *planType,
		MealsPerDay:  *meals,
		Calories:     *calories,
		HealthLabels: *health,
		Cuisine:      *cuisine,
	}

	fmt.Printf("Generating %s %s plan...\n", prefs.PlanType, prefs.DietType)
	plan, err := application.Generator.Generate(ctx, prefs)
	if err != nil {
		log.Fatalf("Failed to generate plan: %v", err)
	}

	planID, err := application.Plans.Save(ctx, *user, prefs, plan)
	if err != nil {
		log.Fatalf("Failed to save plan: %v", err)
	}

	printPlan(plan)

	stored, err := application.Groceries.DeriveForPlan(ctx, *user, planID, plan)
	if err != nil {
		log.Fatalf("Failed to derive grocery list: %v", err)
	}
	fmt.Println(grocery.Text(&stored.List))
}

func printPlan(plan *mealplan.Plan) {
	fmt.Println("\n=== MEAL PLAN ===")
	for _, day := range plan.Days {
		fmt.Printf("\n%s\n", day.Date)
		for _, slot := range day.MealNames() {
			r := day.Meals[slot]
			if r == nil {
				continue
			}
			fmt.Printf("  %-10s %s", slot+":", r.Label)
			if r.Calories > 0 {
				fmt.Printf(" (%d kcal)", r.Calories)
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

func runGrocery(ctx context.Context, application *app.App, args []string) {
	groceryCmd := flag.NewFlagSet("grocery", flag.ExitOnError)
	user := groceryCmd.String("user", "default", "User ID")
	toggle := groceryCmd.String("toggle", "", "Toggle an item, as Category:index")
	remove := groceryCmd.String("remove", "", "Remove an item, as Category:index")
	checkAll := groceryCmd.String("check-all", "", "Check every item in a category")
	uncheckAll := groceryCmd.String("uncheck-all", "", "Uncheck every item in a category")
	export := groceryCmd.String("export", "", "Export format: text or csv")
	groceryCmd.Parse(args)

	switch {
	case *toggle != "":
		category, index := parseItemRef(*toggle)
		if _, err := application.Groceries.Toggle(ctx, *user, category, index); err != nil {
			log.Fatalf("Failed to toggle item: %v", err)
		}
	case *remove != "":
		category, index := parseItemRef(*remove)
		if _, err := application.Groceries.Remove(ctx, *user, category, index); err != nil {
			log.Fatalf("Failed to remove item: %v", err)
		}
	case *checkAll != "":
		if _, err := application.Groceries.SetAll(ctx, *user, *checkAll, true); err != nil {
			log.Fatalf("Failed to check category: %v", err)
		}
	case *uncheckAll != "":
		if _, err := application.Groceries.SetAll(ctx, *user, *uncheckAll, false); err != nil {
			log.Fatalf("Failed to uncheck category: %v", err)
		}
	}

	stored, err := application.Groceries.GetOrDerive(ctx, *user)
	if err != nil {
		log.Fatalf("Failed to load grocery list: %v", err)
	}
	if stored == nil {
		fmt.Println("No grocery list yet. Generate a meal plan first with the plan command.")
		return
	}

	switch *export {
	case "csv":
		out, err := grocery.CSV(&stored.List)
		if err != nil {
			log.Fatalf("Failed to export grocery list: %v", err)
		}
		fmt.Print(out)
	default:
		fmt.Print(grocery.Text(&stored.List))
	}
}

// parseItemRef splits "Category:index" refs like "Proteins:0".
func parseItemRef(ref string) (string, int) {
	idx := strings.LastIndex(ref, ":")
	if idx < 0 {
		log.Fatalf("Invalid item reference %q, expected Category:index", ref)
	}
	index, err := strconv.Atoi(ref[idx+1:])
	if err != nil {
		log.Fatalf("Invalid item index in %q: %v", ref, err)
	}
	return ref[:idx], index
}

func runOrder(ctx context.Context, application *app.App, args []string) {
	orderCmd := flag.NewFlagSet("order", flag.ExitOnError)
	user := orderCmd.String("user", "default", "User ID")
	format := orderCmd.String("format", "checklist", "Output format: simple, checklist or email")
	orderCmd.Parse(args)

	stored, err := application.Groceries.GetOrDerive(ctx, *user)
	if err != nil {
		log.Fatalf("Failed to load grocery list: %v", err)
	}
	if stored == nil {
		fmt.Println("No grocery list yet. Generate a meal plan first with the plan command.")
		return
	}

	o := order.Prepare(*user, &stored.List, time.Now())

	switch *format {
	case "simple":
		fmt.Print(order.SimpleList(o))
	case "email":
		fmt.Print(order.Email(o))
	default:
		fmt.Print(order.Checklist(o))
	}
}

func runProfile(ctx context.Context, application *app.App, args []string) {
	profileCmd := flag.NewFlagSet("profile", flag.ExitOnError)
	user := profileCmd.String("user", "default", "User ID")
	file := profileCmd.String("file", "", "Path to a profile JSON document to save")
	profileCmd.Parse(args)

	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read profile file: %v", err)
		}
		var p profile.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			log.Fatalf("Failed to parse profile file: %v", err)
		}
		if err := application.Profiles.Save(ctx, *user, &p); err != nil {
			log.Fatalf("Failed to save profile: %v", err)
		}
		fmt.Println("Profile saved.")
	}

	p, err := application.Profiles.GetByUserID(ctx, *user)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	if p == nil {
		fmt.Println("No profile saved. Use -file to import one.")
		return
	}

	stats := p.ComputeStats(time.Now())
	fmt.Printf("Name:         %s\n", p.FullName)
	fmt.Printf("Age:          %d\n", stats.Age)
	fmt.Printf("BMI:          %s\n", profile.FormatBMI(stats.BMI))
	fmt.Printf("Calorie Goal: %d kcal/day\n", stats.CalorieGoal)
}

func runCoach(ctx context.Context, application *app.App, args []string) {
	coachCmd := flag.NewFlagSet("coach", flag.ExitOnError)
	user := coachCmd.String("user", "default", "User ID")
	coachCmd.Parse(args)

	question := strings.Join(coachCmd.Args(), " ")
	if question == "" {
		log.Fatal("Usage: nutriplan coach [-user id] <question>")
	}

	answer, err := application.Coach.Respond(ctx, *user, question)
	if err != nil {
		log.Fatalf("Coach failed: %v", err)
	}
	fmt.Println(answer)
}

func runSlots(ctx context.Context, application *app.App, args []string) {
	slotsCmd := flag.NewFlagSet("slots", flag.ExitOnError)
	nutritionist := slotsCmd.String("nutritionist", "", "Nutritionist ID")
	day := slotsCmd.String("day", "", "Day as YYYY-MM-DD")
	slotsCmd.Parse(args)

	if *nutritionist == "" || *day == "" {
		log.Fatal("Usage: nutriplan slots -nutritionist id -day YYYY-MM-DD")
	}
	date, err := time.Parse("2006-01-02", *day)
	if err != nil {
		log.Fatalf("Invalid day %q: %v", *day, err)
	}

	slots, err := application.Appointments.Slots(ctx, *nutritionist, date)
	if err != nil {
		log.Fatalf("Failed to load slots: %v", err)
	}
	if len(slots) == 0 {
		fmt.Println("No free slots on that day.")
		return
	}
	for _, slot := range slots {
		fmt.Println(slot.Display)
	}
}

func runBook(ctx context.Context, application *app.App, args []string) {
	bookCmd := flag.NewFlagSet("book", flag.ExitOnError)
	user := bookCmd.String("user", "default", "User ID")
	nutritionist := bookCmd.String("nutritionist", "", "Nutritionist ID")
	apptType := bookCmd.String("type", "consultation", "Appointment type")
	at := bookCmd.String("at", "", "Start time as RFC3339, e.g. 2026-09-01T10:00:00Z")
	cardNumber := bookCmd.String("card", "", "Card number")
	expMonth := bookCmd.Int("exp-month", 0, "Card expiry month")
	expYear := bookCmd.Int("exp-year", 0, "Card expiry year")
	bookCmd.Parse(args)

	startsAt, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		log.Fatalf("Invalid start time %q: %v", *at, err)
	}

	appt, err := application.Appointments.Book(ctx, appointment.BookingRequest{
		UserID:          *user,
		NutritionistID:  *nutritionist,
		AppointmentType: *apptType,
		StartsAt:        startsAt,
		Card: appointment.Card{
			Number:   *cardNumber,
			ExpMonth: *expMonth,
			ExpYear:  *expYear,
		},
	})
	if err != nil {
		log.Fatalf("Booking failed: %v", err)
	}

	fmt.Printf("Booked appointment %s\n", appt.ID)
	fmt.Printf("  Starts:   %s\n", appt.StartsAt.Format(time.RFC3339))
	fmt.Printf("  Duration: %d mins\n", appt.DurationMins)
	fmt.Printf("  Paid:     $%.2f (ref %s)\n", float64(appt.AmountCents)/100, appt.PaymentRef)
}

func runCancel(ctx context.Context, application *app.App, args []string) {
	cancelCmd := flag.NewFlagSet("cancel", flag.ExitOnError)
	user := cancelCmd.String("user", "default", "User ID")
	id := cancelCmd.String("id", "", "Appointment ID")
	cancelCmd.Parse(args)

	if err := application.Appointments.Cancel(ctx, *user, *id); err != nil {
		log.Fatalf("Cancel failed: %v", err)
	}
	fmt.Println("Appointment cancelled.")
}

func runJoin(ctx context.Context, application *app.App, args []string) {
	joinCmd := flag.NewFlagSet("join", flag.ExitOnError)
	user := joinCmd.String("user", "default", "User ID")
	id := joinCmd.String("id", "", "Appointment ID")
	joinCmd.Parse(args)

	token, err := application.Appointments.JoinToken(ctx, *user, *id)
	if err != nil {
		log.Fatalf("Failed to issue video token: %v", err)
	}
	fmt.Println(token)
}

func runClip(ctx context.Context, application *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: nutriplan clip <url>")
	}

	clipped, err := application.Clipper.ClipURL(ctx, args[0])
	if err != nil {
		log.Fatalf("Failed to clip recipe: %v", err)
	}

	fmt.Printf("Clipped: %s\n", clipped.Label)
	fmt.Printf("  Servings:  %.0f\n", clipped.Servings)
	fmt.Printf("  Cook Time: %d mins\n", clipped.CookTime)
	fmt.Println("  Ingredients:")
	for _, ing := range clipped.Ingredients {
		fmt.Printf("    - %s\n", ing)
	}
}

func printUsage() {
	fmt.Println("Usage: nutriplan <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan               Generate a meal plan and its grocery list")
	fmt.Println("  grocery            Show or update the grocery list")
	fmt.Println("  order              Prepare a shopping order from unchecked items")
	fmt.Println("  profile            Save or show the user profile and health stats")
	fmt.Println("  coach              Ask the nutrition coach a question")
	fmt.Println("  slots              List free consultation slots")
	fmt.Println("  book               Book a consultation")
	fmt.Println("  cancel             Cancel a scheduled consultation")
	fmt.Println("  join               Issue a video call token for a consultation")
	fmt.Println("  clip               Extract a recipe from a URL")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
