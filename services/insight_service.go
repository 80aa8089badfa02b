// services/insight_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"juluka-backend/metrics"
	"juluka-backend/store"
	"juluka-backend/utils"

	"github.com/robfig/cron/v3"
	"google.golang.org/genai"
)

const insightModel = "gemini-3-flash-preview"

// Fixed sentences used whenever the external call cannot produce text.
const (
	DailyReportFallback = "Great job today! Keep those kicks fresh."
	CareAdviceFallback  = "Standard cleaning protocol: scrub upper, clean midsole, deodorize interior."
)

// TextGenerator is the seam to the external generative-text service: one
// prompt in, one short text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, insightModel, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

// InsightService produces the dashboard's daily-report sentence and
// per-sneaker care advice. Failures of the external call are never surfaced;
// callers always get a sentence back.
type InsightService struct {
	gen   TextGenerator
	store *store.Store
}

// NewInsightService builds the service. With an empty API key the external
// client is not constructed and every request resolves to its fallback.
func NewInsightService(ctx context.Context, apiKey string, st *store.Store) *InsightService {
	s := &InsightService{store: st}
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, insight responses will use fallbacks")
		return s
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Failed to initialize insight client: %v", err)
		return s
	}
	s.gen = &geminiGenerator{client: client}
	return s
}

// NewInsightServiceWith builds the service over an explicit generator.
func NewInsightServiceWith(gen TextGenerator, st *store.Store) *InsightService {
	return &InsightService{gen: gen, store: st}
}

// DailyReport returns a one-sentence performance summary for the given day's
// order count and total revenue.
func (s *InsightService) DailyReport(ctx context.Context, ordersCount int, revenue float64) string {
	prompt := fmt.Sprintf(
		"Generate a short, motivating 1-sentence performance summary for a sneaker cleaning shop that processed %d pairs today with $%.2f in revenue.",
		ordersCount, revenue,
	)
	return s.generate(ctx, prompt, 100, DailyReportFallback)
}

// CareAdvice returns short cleaning pointers for one pair.
func (s *InsightService) CareAdvice(ctx context.Context, sneakerType, brand string) string {
	prompt := fmt.Sprintf(
		"Provide 3 short bullet points for cleaning a %s %s sneaker professionally. Keep it brief and actionable for a sneaker care technician.",
		brand, sneakerType,
	)
	return s.generate(ctx, prompt, 150, CareAdviceFallback)
}

func (s *InsightService) generate(ctx context.Context, prompt string, maxTokens int32, fallback string) string {
	if s.gen == nil {
		metrics.InsightRequests.WithLabelValues("fallback").Inc()
		return fallback
	}
	text, err := s.gen.GenerateText(ctx, prompt, maxTokens)
	if err != nil {
		log.Printf("Insight generation failed: %v", err)
		metrics.InsightRequests.WithLabelValues("fallback").Inc()
		return fallback
	}
	metrics.InsightRequests.WithLabelValues("generated").Inc()
	return text
}

// StartScheduler runs the end-of-day report on the given cron expression and
// logs it, so the close-of-business summary lands in the shop log even when
// nobody has the dashboard open.
func (s *InsightService) StartScheduler(spec string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(spec, s.logDailyReport); err != nil {
		log.Printf("Failed to schedule daily report: %v", err)
		return c
	}

	c.Start()
	log.Println("Daily report scheduler started")
	return c
}

func (s *InsightService) logDailyReport() {
	now := time.Now()
	var revenue float64
	ordersToday := 0
	for _, o := range s.store.Orders() {
		revenue += o.TotalCost
		if utils.SameDay(now, o.DropOffDate) {
			ordersToday++
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	log.Printf("End of day report: %s", s.DailyReport(ctx, ordersToday, revenue))
}
