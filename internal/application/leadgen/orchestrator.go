package leadgen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/internal/infrastructure/ai"
	"github.com/qwii/qwii-api/internal/infrastructure/places"
	"github.com/qwii/qwii-api/pkg/logger"
	"github.com/qwii/qwii-api/pkg/retry"
)

// Run log states
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// RunInput optionally pins the run to a specific industry and location.
// When both are empty the orchestrator rotates through the active
// sources instead.
type RunInput struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

// APIUsage counts outbound provider calls made during a run
type APIUsage struct {
	MapsCalls       int `json:"maps_calls"`
	EnrichmentCalls int `json:"enrichment_calls"`
	ScoringCalls    int `json:"scoring_calls"`
}

// RunResult summarizes a completed pipeline run. Message is set when
// the provider returned no businesses at all, so an empty run reads
// differently from one that only found duplicates.
type RunResult struct {
	LogID           uuid.UUID  `json:"log_id"`
	SourceID        *uuid.UUID `json:"source_id,omitempty"`
	SourceName      string     `json:"source_name,omitempty"`
	Industry        string     `json:"industry"`
	Location        string     `json:"location"`
	SearchQuery     string     `json:"search_query"`
	Message         string     `json:"message,omitempty"`
	LeadsScraped    int        `json:"leads_scraped"`
	LeadsGenerated  int        `json:"leads_generated"`
	LeadsFailed     int        `json:"leads_failed"`
	DuplicatesFound int        `json:"duplicates_found"`
	SuccessRate     float64    `json:"success_rate"`
	APIUsage        APIUsage   `json:"api_usage"`
	DurationSeconds float64    `json:"duration_seconds"`
}

// CredentialStore supplies provider API keys at run time so key rotation
// does not require a restart.
type CredentialStore interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// Orchestrator drives a full pipeline run: pick a source, scrape
// candidates, dedupe against stored leads, enrich and score each
// survivor, and persist the results together with a run log.
type Orchestrator struct {
	leadRepo    repository.LeadRepository
	sourceRepo  repository.LeadSourceRepository
	logRepo     repository.LeadGenerationLogRepository
	credentials CredentialStore
	cfg         config.LeadGenConfig
}

// NewOrchestrator creates a pipeline orchestrator
func NewOrchestrator(
	leadRepo repository.LeadRepository,
	sourceRepo repository.LeadSourceRepository,
	logRepo repository.LeadGenerationLogRepository,
	credentials CredentialStore,
	cfg config.LeadGenConfig,
) *Orchestrator {
	return &Orchestrator{
		leadRepo:    leadRepo,
		sourceRepo:  sourceRepo,
		logRepo:     logRepo,
		credentials: credentials,
		cfg:         cfg,
	}
}

// Run executes one pipeline run. Per-candidate failures are counted and
// skipped; only failures that prevent the run itself (source selection,
// log creation, scraping) abort it, after finalizing the run log in the
// failed state.
func (o *Orchestrator) Run(ctx context.Context, input RunInput) (*RunResult, error) {
	started := time.Now()

	industry, location, source, err := o.selectTarget(ctx, input, started)
	if err != nil {
		return nil, err
	}

	query := BuildQuery(industry, location)
	runLog := &entity.LeadGenerationLog{
		Status:      RunStatusRunning,
		SearchQuery: &query,
		StartedAt:   started,
	}
	if source != nil {
		runLog.SourceID = &source.ID
	}
	if err := o.logRepo.Create(ctx, runLog); err != nil {
		return nil, eris.Wrap(err, "create run log")
	}

	scraper, enricher, scorer := o.buildStages(ctx)

	limit := input.Limit
	if limit <= 0 {
		limit = o.cfg.DefaultLimit
	}

	var keywords []string
	if source != nil {
		keywords = source.SearchTerms
	}

	candidates, mapsCalls, err := scraper.Scrape(ctx, industry, location, keywords, limit)
	runLog.MapsCalls = mapsCalls
	if err != nil {
		o.finalizeFailed(ctx, runLog, err)
		return nil, eris.Wrap(err, "scrape candidates")
	}

	runLog.LeadsScraped = len(candidates)
	if msg := scrapeOutcomeMessage(runLog.LeadsScraped, query); msg != "" {
		logger.Warn().Str("query", query).Msg("scrape returned no businesses")
	}
	for _, cand := range candidates {
		existing, err := o.leadRepo.GetByPlaceID(ctx, cand.PlaceID)
		if err != nil {
			logger.Warn().Err(err).Str("company", cand.Name).Msg("lead lookup failed, skipping candidate")
			runLog.LeadsFailed++
			continue
		}
		if existing != nil {
			runLog.DuplicatesFound++
			continue
		}

		enrichment, enrichCalls := enricher.Enrich(ctx, cand)
		runLog.EnrichmentCalls += enrichCalls

		scoring, scoreCalls := scorer.Score(ctx, cand, enrichment)
		runLog.ScoringCalls += scoreCalls

		lead := BuildLead(cand, enrichment, scoring, query)
		if err := o.leadRepo.Create(ctx, lead); err != nil {
			logger.Warn().Err(err).Str("company", cand.Name).Msg("lead create failed, skipping candidate")
			runLog.LeadsFailed++
			continue
		}
		runLog.LeadsSuccessful++
	}

	completed := time.Now()
	runLog.Status = RunStatusCompleted
	runLog.SuccessRate = successRate(runLog.LeadsSuccessful, runLog.LeadsScraped)
	runLog.CompletedAt = &completed
	if err := o.logRepo.Update(ctx, runLog); err != nil {
		logger.Warn().Err(err).Msg("finalize run log failed")
	}

	if source != nil {
		if err := o.sourceRepo.RecordUsage(ctx, source.ID, runLog.LeadsSuccessful, completed); err != nil {
			logger.Warn().Err(err).Str("source", source.Name).Msg("record source usage failed")
		}
	}

	result := &RunResult{
		LogID:           runLog.ID,
		SourceID:        runLog.SourceID,
		Industry:        industry,
		Location:        location,
		SearchQuery:     query,
		Message:         scrapeOutcomeMessage(runLog.LeadsScraped, query),
		LeadsScraped:    runLog.LeadsScraped,
		LeadsGenerated:  runLog.LeadsSuccessful,
		LeadsFailed:     runLog.LeadsFailed,
		DuplicatesFound: runLog.DuplicatesFound,
		SuccessRate:     runLog.SuccessRate,
		APIUsage: APIUsage{
			MapsCalls:       runLog.MapsCalls,
			EnrichmentCalls: runLog.EnrichmentCalls,
			ScoringCalls:    runLog.ScoringCalls,
		},
		DurationSeconds: completed.Sub(started).Seconds(),
	}
	if source != nil {
		result.SourceName = source.Name
	}

	logger.Info().
		Str("query", query).
		Int("scraped", result.LeadsScraped).
		Int("generated", result.LeadsGenerated).
		Int("duplicates", result.DuplicatesFound).
		Float64("success_rate", result.SuccessRate).
		Msg("lead generation run completed")

	return result, nil
}

// selectTarget resolves the industry and location for this run. An
// explicit industry and location win; otherwise the active source
// scheduled for today's weekday is used, falling back to the highest
// priority active source.
func (o *Orchestrator) selectTarget(ctx context.Context, input RunInput, started time.Time) (industry, location string, source *entity.LeadSource, err error) {
	if input.Industry != "" && input.Location != "" {
		source, err = o.sourceRepo.FindByIndustryLocation(ctx, input.Industry, input.Location)
		if err != nil {
			return "", "", nil, eris.Wrap(err, "find source")
		}
		return input.Industry, input.Location, source, nil
	}

	sources, err := o.sourceRepo.ListActive(ctx)
	if err != nil {
		return "", "", nil, eris.Wrap(err, "list active sources")
	}
	if len(sources) == 0 {
		return "", "", nil, eris.New("no active lead sources configured")
	}

	picked := pickSource(sources, started.Weekday())
	if len(picked.TargetLocations) == 0 {
		return "", "", nil, eris.New("selected source has no target locations")
	}
	location = picked.TargetLocations[started.YearDay()%len(picked.TargetLocations)]
	return picked.Industry, location, picked, nil
}

// pickSource prefers a source scheduled for the given weekday, then the
// highest priority one.
func pickSource(sources []entity.LeadSource, weekday time.Weekday) *entity.LeadSource {
	var best *entity.LeadSource
	for i := range sources {
		s := &sources[i]
		if s.DayOfWeek != nil && *s.DayOfWeek == int(weekday) {
			return s
		}
		if best == nil || s.Priority > best.Priority {
			best = s
		}
	}
	return best
}

// buildStages assembles the scraper, enricher and scorer from whatever
// credentials are configured. Each stage degrades to its fallback when
// its key is missing, so a fresh install produces leads out of the box.
func (o *Orchestrator) buildStages(ctx context.Context) (*Scraper, *Enricher, *Scorer) {
	retryPolicy := retry.Policy{
		MaxAttempts: o.cfg.RetryAttempts,
		BaseDelay:   o.cfg.RetryBaseDelay,
		Multiplier:  2,
	}
	singleAttempt := retry.Policy{MaxAttempts: 1}

	var placesClient places.Client
	if key := o.lookupKey(ctx, service.SettingMapsAPIKey); key != "" {
		placesClient = places.NewClient(key)
	}

	var enrichClient ai.CompletionClient
	if key := o.lookupKey(ctx, service.SettingEnrichmentAPIKey); key != "" {
		enrichClient = ai.NewAnthropicClient(key, o.cfg.EnrichmentModel)
	}

	var scoreClient ai.CompletionClient
	if key := o.lookupKey(ctx, service.SettingScoringAPIKey); key != "" {
		client, err := ai.NewGeminiClient(ctx, key, o.cfg.ScoringModel)
		if err != nil {
			logger.Warn().Err(err).Msg("scoring client init failed, using fallback scoring")
		} else {
			scoreClient = client
		}
	}

	return NewScraper(placesClient, retryPolicy),
		NewEnricher(enrichClient, retryPolicy),
		NewScorer(scoreClient, singleAttempt)
}

func (o *Orchestrator) lookupKey(ctx context.Context, key string) string {
	value, err := o.credentials.GetValue(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("credential lookup failed")
		return ""
	}
	return value
}

func (o *Orchestrator) finalizeFailed(ctx context.Context, runLog *entity.LeadGenerationLog, runErr error) {
	completed := time.Now()
	message := runErr.Error()
	runLog.Status = RunStatusFailed
	runLog.ErrorMessage = &message
	runLog.SuccessRate = successRate(runLog.LeadsSuccessful, runLog.LeadsScraped)
	runLog.CompletedAt = &completed
	if err := o.logRepo.Update(ctx, runLog); err != nil {
		logger.Warn().Err(err).Msg("finalize failed run log failed")
	}
}

// scrapeOutcomeMessage describes an empty scrape. A non-empty scrape
// needs no message.
func scrapeOutcomeMessage(scraped int, query string) string {
	if scraped > 0 {
		return ""
	}
	return fmt.Sprintf("No businesses found for %q; try different keywords or a wider location", query)
}

// successRate is the percentage of scraped candidates that became
// stored leads. Zero scraped means zero, not a division error.
func successRate(successful, scraped int) float64 {
	if scraped == 0 {
		return 0
	}
	return float64(successful) / float64(scraped) * 100
}
