package usecase

import (
	"context"
	"log"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
	"github.com/sitebazaar/sitebazaar-api/internal/valuation"
	"github.com/sitebazaar/sitebazaar-api/internal/verification"
)

// recomputeAdvisory refreshes the derived fields from the current
// snapshot and classification. Valuation feeds verification: the
// pricing-sanity rules compare the asking price against the band
// computed in the same run.
func recomputeAdvisory(l *entity.Listing) {
	est := valuation.Valuate(l.Category, l.Financials)
	l.SuggestedMinPrice = est.Min
	l.SuggestedMaxPrice = est.Max
	l.ValuationNote = est.Explanation
	l.Flags = verification.Inspect(l)
}

// reverify re-runs only the flag rules, for updates that touch no
// financial field (e.g. media count changed).
func reverify(l *entity.Listing) {
	l.Flags = verification.Inspect(l)
}

// publishEvent is the one place where dispatcher failures are handled:
// logged and swallowed. It runs after the primary mutation committed
// and must never fail the triggering operation.
func publishEvent(publisher EventPublisherInterface, evt queue.Event) {
	if publisher == nil {
		return
	}
	go func() {
		if err := publisher.Publish(context.Background(), evt); err != nil {
			log.Printf("[events] %s publish failed (ignored): %s", evt.Kind, err)
		}
	}()
}
