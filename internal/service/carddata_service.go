package service

import (
	"context"
	"strings"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/cache"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/carddata"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var cardDataTracer = otel.Tracer("service/carddata")

// CardDataService serves the display-oriented card database to the
// card-detail screens. It never consults the engine catalog: the two card
// universes are maintained independently.
type CardDataService struct {
	db      *carddata.DB
	cache   *cache.InMemory[*domain.CardData]
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCardDataService creates a new card database service.
func NewCardDataService(db *carddata.DB, lookupCache *cache.InMemory[*domain.CardData], metrics *observability.Metrics, logger *zap.Logger) *CardDataService {
	return &CardDataService{db: db, cache: lookupCache, metrics: metrics, logger: logger}
}

// GetCreditCardData resolves a card by name (exact, then fuzzy). Fuzzy
// results are cached per search string. A nil result means no match; the
// caller treats absence as a normal branch.
func (s *CardDataService) GetCreditCardData(ctx context.Context, name string) *domain.CardData {
	_, span := cardDataTracer.Start(ctx, "CardDataService.GetCreditCardData")
	defer span.End()
	span.SetAttributes(attribute.String("card.name", name))

	cacheKey := strings.ToLower(name)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.metrics.IncrCacheHit("carddata")
		return cached
	}
	s.metrics.IncrCacheMiss("carddata")

	card := s.db.Get(name)
	if card == nil {
		s.logger.Debug("card database lookup missed", zap.String("name", name))
		return nil
	}

	s.cache.Set(cacheKey, card)
	return card
}

// GetAllCreditCards returns every card in database order.
func (s *CardDataService) GetAllCreditCards(ctx context.Context) []domain.CardData {
	_, span := cardDataTracer.Start(ctx, "CardDataService.GetAllCreditCards")
	defer span.End()

	return s.db.All()
}

// GetBestCardForCategory picks the strongest candidate for a category from
// the user's own card names, in the order given. Nil means none resolved.
func (s *CardDataService) GetBestCardForCategory(ctx context.Context, category string, userCards []string) *domain.CategoryMatch {
	_, span := cardDataTracer.Start(ctx, "CardDataService.GetBestCardForCategory")
	defer span.End()
	span.SetAttributes(
		attribute.String("category", category),
		attribute.Int("candidates", len(userCards)),
	)

	return s.db.BestForCategory(category, userCards)
}

// CalculateCardValue projects a card's annual cashback and net value for an
// annual spend profile. Unknown cards value to zero.
func (s *CardDataService) CalculateCardValue(ctx context.Context, name string, spending []domain.SpendingCategory) domain.CardValue {
	_, span := cardDataTracer.Start(ctx, "CardDataService.CalculateCardValue")
	defer span.End()
	span.SetAttributes(attribute.String("card.name", name))

	return s.db.Value(name, spending)
}
