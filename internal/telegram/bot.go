package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nutriplan/internal/clipper"
	"nutriplan/internal/coach"
	"nutriplan/internal/config"
	"nutriplan/internal/grocery"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/metrics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// How long a preference-collection session stays answerable.
const sessionTTLSeconds = 300

// Bot wraps the Telegram API, Plan Generator, Grocery Service, Coach, and Clipper.
type Bot struct {
	api          *tgbotapi.BotAPI
	generator    *mealplan.Generator
	plans        *mealplan.Repository
	groceries    *grocery.Service
	coach        *coach.Coach
	clipper      *clipper.Clipper
	metricsStore *metrics.Store
	sessions     *SessionRepository
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	generator *mealplan.Generator,
	plans *mealplan.Repository,
	groceries *grocery.Service,
	nutritionCoach *coach.Coach,
	recipeClipper *clipper.Clipper,
	metricsStore *metrics.Store,
	sessions *SessionRepository,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          bot,
		generator:    generator,
		plans:        plans,
		groceries:    groceries,
		coach:        nutritionCoach,
		clipper:      recipeClipper,
		metricsStore: metricsStore,
		sessions:     sessions,
		cfg:          cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/start" || text == "/help":
		b.sendHelp(msg.Chat.ID)
	case text == "/metrics":
		b.handleMetricsRequest(msg)
	case text == "/plan" || strings.HasPrefix(text, "/plan "):
		b.handlePlanRequest(msg, strings.TrimSpace(strings.TrimPrefix(text, "/plan")))
	case text == "/grocery":
		b.handleGroceryRequest(msg)
	case strings.HasPrefix(text, "/coach "):
		b.handleCoachRequest(msg, strings.TrimSpace(strings.TrimPrefix(text, "/coach")))
	case strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://"):
		b.handleClipperRequest(msg)
	default:
		// A pending preference session claims the next free-form message;
		// anything else goes to the coach.
		ctx := context.Background()
		userID := fmt.Sprintf("%d", msg.From.ID)
		session, err := b.sessions.GetActive(ctx, userID, time.Now())
		if err != nil {
			log.Printf("Failed to look up session for user %s: %v", userID, err)
		}
		if session != nil && session.SessionType == "plan_prefs" {
			b.continuePlanSession(ctx, msg, session)
			return
		}
		b.handleCoachRequest(msg, text)
	}
}

func (b *Bot) sendHelp(chatID int64) {
	help := `🥗 *NutriPlan*

/plan <diet> [daily|weekly] [meals] [calories] - generate a meal plan
/grocery - show your grocery list with tap-to-check items
/coach <question> - ask the nutrition coach
Send a recipe URL to clip it.

Example: ` + "`/plan vegetarian weekly 3 2000`"
	msg := tgbotapi.NewMessage(chatID, help)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "⛔ *Access Denied*: Admin only."))
		return
	}
	b.handleMetricsCommand(msg.Chat.ID)
}

func (b *Bot) handlePlanRequest(msg *tgbotapi.Message, args string) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	if args == "" {
		// Collect the diet type over a short-lived session instead of failing.
		_, err := b.sessions.Create(ctx, userID, "plan_prefs", "awaiting_diet", SessionContextData{
			PlanType:    "weekly",
			MealsPerDay: 3,
		}, sessionTTLSeconds)
		if err != nil {
			log.Printf("Failed to create session for user %s: %v", userID, err)
			b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Something went wrong, please try again."))
			return
		}
		prompt := tgbotapi.NewMessage(msg.Chat.ID, "🥦 What diet should the plan follow?\nReply with one of: balanced, vegetarian, vegan, keto, paleo, mediterranean")
		b.api.Send(prompt)
		return
	}

	prefs := parsePlanArgs(args)

	existing, err := b.plans.LatestByUserID(ctx, userID)
	if err != nil {
		log.Printf("Failed to check existing plan for user %s: %v", userID, err)
	}
	if existing != nil {
		promptText := fmt.Sprintf("🗓️ You already have a plan from *%s*.\nWhat would you like to do?", existing.CreatedAt.Format("2006-01-02"))

		// Callback data is limited to 64 bytes, so encode the parsed fields.
		regenData := fmt.Sprintf("regen|%s|%s|%d|%d", prefs.DietType, prefs.PlanType, prefs.MealsPerDay, prefs.Calories)
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔄 New Plan", regenData),
				tgbotapi.NewInlineKeyboardButtonData("📋 Keep Current", "keep|-"),
			),
		)

		reply := tgbotapi.NewMessage(msg.Chat.ID, promptText)
		reply.ParseMode = "Markdown"
		reply.ReplyMarkup = keyboard
		b.api.Send(reply)
		return
	}

	sentMsg, ok := b.sendThinking(msg.Chat.ID, "🧑‍🍳 *Cooking up your plan...*")
	if !ok {
		return
	}
	b.generateAndSendPlan(ctx, userID, msg.Chat.ID, sentMsg.MessageID, prefs)
}

// parsePlanArgs reads "/plan vegan weekly 3 2000" style arguments. Order past
// the diet type does not matter: daily/weekly sets the plan type, a small
// number the meals per day, a large one the calorie target.
func parsePlanArgs(args string) mealplan.Preferences {
	prefs := mealplan.Preferences{
		PlanType:    "weekly",
		MealsPerDay: 3,
	}

	for i, field := range strings.Fields(strings.ToLower(args)) {
		if i == 0 {
			prefs.DietType = field
			continue
		}
		if field == "daily" || field == "weekly" {
			prefs.PlanType = field
			continue
		}
		if n, err := strconv.Atoi(field); err == nil {
			if n >= 1000 {
				prefs.Calories = n
			} else if n >= 1 && n <= 4 {
				prefs.MealsPerDay = n
			}
		}
	}
	return prefs
}

func (b *Bot) continuePlanSession(ctx context.Context, msg *tgbotapi.Message, session *Session) {
	data, err := session.GetContextData()
	if err != nil {
		log.Printf("Failed to decode session %d context: %v", session.ID, err)
		data = SessionContextData{PlanType: "weekly", MealsPerDay: 3}
	}
	if err := b.sessions.Delete(ctx, session.ID); err != nil {
		log.Printf("Failed to delete session %d: %v", session.ID, err)
	}

	prefs := mealplan.Preferences{
		DietType:    strings.ToLower(strings.TrimSpace(msg.Text)),
		PlanType:    data.PlanType,
		MealsPerDay: data.MealsPerDay,
		Calories:    data.Calories,
	}

	sentMsg, ok := b.sendThinking(msg.Chat.ID, "🧑‍🍳 *Cooking up your plan...*")
	if !ok {
		return
	}
	userID := fmt.Sprintf("%d", msg.From.ID)
	b.generateAndSendPlan(ctx, userID, msg.Chat.ID, sentMsg.MessageID, prefs)
}

func (b *Bot) sendThinking(chatID int64, statusText string) (tgbotapi.Message, bool) {
	replyMsg := tgbotapi.NewMessage(chatID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return tgbotapi.Message{}, false
	}
	return sentMsg, true
}

func (b *Bot) generateAndSendPlan(ctx context.Context, userID string, chatID int64, messageID int, prefs mealplan.Preferences) {
	log.Printf("Generating %s %s plan for user %s", prefs.PlanType, prefs.DietType, userID)

	plan, err := b.generator.Generate(ctx, prefs)
	if err != nil {
		log.Printf("Error generating plan: %v", err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		finalText := fmt.Sprintf("❌ *Error generating plan:*\n```\n%v\n```", safeErr)
		edit := tgbotapi.NewEditMessageText(chatID, messageID, finalText)
		edit.ParseMode = "Markdown"
		b.api.Send(edit)
		b.sendAdminAlert(fmt.Sprintf("⚠️ *Plan generation failed*\nUser: %s\nError: %s", userID, safeErr))
		return
	}

	planID, err := b.plans.Save(ctx, userID, prefs, plan)
	if err != nil {
		log.Printf("Warning: failed to save meal plan for user %s: %v", userID, err)
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, formatPlanMarkdown(plan))
	edit.ParseMode = "Markdown"
	b.api.Send(edit)

	if planID != 0 {
		stored, err := b.groceries.DeriveForPlan(ctx, userID, planID, plan)
		if err != nil {
			log.Printf("Warning: failed to derive grocery list for plan %d: %v", planID, err)
			return
		}
		b.sendGroceryMessage(chatID, &stored.List)
	}
}

func (b *Bot) handleGroceryRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	stored, err := b.groceries.GetOrDerive(ctx, userID)
	if err != nil {
		log.Printf("Error loading grocery list for user %s: %v", userID, err)
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Error loading your grocery list."))
		return
	}
	if stored == nil {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "🛒 No grocery list yet. Send /plan to generate a meal plan first."))
		return
	}

	b.sendGroceryMessage(msg.Chat.ID, &stored.List)
}

func (b *Bot) sendGroceryMessage(chatID int64, list *grocery.List) {
	groceryMsg := tgbotapi.NewMessage(chatID, formatGroceryMarkdown(list))
	groceryMsg.ParseMode = "Markdown"
	keyboard := groceryKeyboard(list)
	if len(keyboard.InlineKeyboard) > 0 {
		groceryMsg.ReplyMarkup = keyboard
	}
	b.api.Send(groceryMsg)
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", query.From.ID)

	parts := strings.Split(query.Data, "|")
	if len(parts) < 2 {
		return
	}

	// Answer callback to remove spinner
	b.api.Request(tgbotapi.NewCallback(query.ID, ""))

	switch parts[0] {
	case "tgl":
		if len(parts) < 3 {
			return
		}
		catIdx, err1 := strconv.Atoi(parts[1])
		itemIdx, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || catIdx < 0 || catIdx >= len(grocery.CategoryOrder) {
			return
		}

		stored, err := b.groceries.Toggle(ctx, userID, grocery.CategoryOrder[catIdx], itemIdx)
		if err != nil {
			log.Printf("Failed to toggle grocery item for user %s: %v", userID, err)
			return
		}

		edit := tgbotapi.NewEditMessageTextAndMarkup(
			query.Message.Chat.ID,
			query.Message.MessageID,
			formatGroceryMarkdown(&stored.List),
			groceryKeyboard(&stored.List),
		)
		edit.ParseMode = "Markdown"
		b.api.Send(edit)

	case "regen":
		if len(parts) < 5 {
			return
		}
		meals, _ := strconv.Atoi(parts[3])
		calories, _ := strconv.Atoi(parts[4])
		prefs := mealplan.Preferences{
			DietType:    parts[1],
			PlanType:    parts[2],
			MealsPerDay: meals,
			Calories:    calories,
		}

		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, "🧑‍🍳 *Cooking up your plan...*")
		edit.ParseMode = "Markdown"
		b.api.Send(edit)

		b.generateAndSendPlan(ctx, userID, query.Message.Chat.ID, query.Message.MessageID, prefs)

	case "keep":
		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, "👍 Keeping your current plan. Send /grocery to see the shopping list.")
		b.api.Send(edit)
	}
}

func (b *Bot) handleCoachRequest(msg *tgbotapi.Message, question string) {
	if question == "" {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "💬 Ask me anything, e.g. /coach how much protein do I need?"))
		return
	}

	sentMsg, ok := b.sendThinking(msg.Chat.ID, "💬 *Thinking...*")
	if !ok {
		return
	}

	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	answer, err := b.coach.Respond(ctx, userID, question)
	if err != nil {
		log.Printf("Coach error for user %s: %v", userID, err)
		answer = "❌ Sorry, I couldn't answer that right now."
	}

	// Model output is not trusted Markdown, send it plain.
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, answer)
	b.api.Send(edit)
}

func (b *Bot) handleClipperRequest(msg *tgbotapi.Message) {
	sentMsg, ok := b.sendThinking(msg.Chat.ID, "✂️ *Clipping recipe...*")
	if !ok {
		return
	}

	ctx := context.Background()

	clipped, err := b.clipper.ClipURL(ctx, msg.Text)
	var finalText string
	if err != nil {
		log.Printf("Error clipping recipe: %v", err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		finalText = fmt.Sprintf("❌ *Error clipping recipe:*\n```\n%v\n```", safeErr)
	} else {
		finalText = fmt.Sprintf("✅ *Recipe Clipped!*\n\n*Title:* %s\n*Servings:* %.0f\n*Cook Time:* %d mins\n*Ingredients:* %d",
			clipped.Label, clipped.Servings, clipped.CookTime, len(clipped.Ingredients))
	}
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, finalText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

func formatPlanMarkdown(plan *mealplan.Plan) string {
	var sb strings.Builder
	if plan.TotalDays > 1 {
		sb.WriteString("📅 *Weekly Meal Plan*\n\n")
	} else {
		sb.WriteString("📅 *Daily Meal Plan*\n\n")
	}

	for _, day := range plan.Days {
		sb.WriteString(fmt.Sprintf("*%s*\n", day.Date))
		for _, slot := range day.MealNames() {
			r := day.Meals[slot]
			if r == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("• %s: %s", titleSlot(slot), r.Label))
			if r.Calories > 0 {
				sb.WriteString(fmt.Sprintf(" (%d kcal)", r.Calories))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func titleSlot(slot string) string {
	if slot == "" {
		return slot
	}
	return strings.ToUpper(slot[:1]) + slot[1:]
}

func formatGroceryMarkdown(list *grocery.List) string {
	stats := grocery.Stats(list)

	var sb strings.Builder
	sb.WriteString("🛒 *Grocery List*\n")
	sb.WriteString(fmt.Sprintf("_%d of %d picked up_\n\n", stats.CheckedItems, stats.TotalItems))

	for _, category := range grocery.CategoryOrder {
		items := list.Categories[category]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("*%s*\n", category))
		for _, item := range items {
			mark := "⬜"
			if item.Checked {
				mark = "✅"
			}
			sb.WriteString(fmt.Sprintf("%s %s\n", mark, item.Name))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// groceryKeyboard builds one toggle button per item. Category and item indices
// keep the callback data well under the 64-byte limit.
func groceryKeyboard(list *grocery.List) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for catIdx, category := range grocery.CategoryOrder {
		for itemIdx, item := range list.Categories[category] {
			label := item.Name
			if len(label) > 24 {
				label = label[:24]
			}
			if item.Checked {
				label = "✅ " + label
			}
			data := fmt.Sprintf("tgl|%d|%d", catIdx, itemIdx)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, data))
			if len(row) == 2 {
				rows = append(rows, row)
				row = nil
			}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.api.Send(tgbotapi.NewMessage(chatID, "❌ Error fetching metrics."))
		return
	}

	health := metrics.GetSysHealth("data")

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDiskSize))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) sendAdminAlert(text string) {
	if b.cfg.AdminTelegramID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(b.cfg.AdminTelegramID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}
