package engine

import (
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// Decision is the outcome of evaluating one item against a fresh snapshot.
// Stock and NotifyOnStock are always persisted afterwards, whether or not an
// alert fired, so the next run sees the current transition state.
type Decision struct {
	StockAlert    bool
	PriceAlert    bool
	Stock         domain.StockStatus
	NotifyOnStock bool
}

// AlertNeeded reports whether any alert condition held.
func (d Decision) AlertNeeded() bool {
	return d.StockAlert || d.PriceAlert
}

// Decide applies the alert decision rule for a single item. It is a pure
// function of the stored item and the freshly fetched snapshot: no I/O, no
// clock, no mutation of its inputs.
//
// Stock alerts fire once per OUT_OF_STOCK to IN_STOCK transition: the item
// must be armed (notifyOnStock=true), the stored last known stock must be
// OUT_OF_STOCK, and the snapshot must report IN_STOCK. Firing disarms the
// item; nothing in this engine re-arms it.
//
// Price alerts fire whenever the current price is positive and strictly
// below the target. They are intentionally not de-duplicated across runs.
func Decide(item *domain.TrackedItem, snap *domain.Snapshot) Decision {
	d := Decision{
		Stock:         snap.Stock,
		NotifyOnStock: item.NotifyOnStock,
	}

	if item.ServiceType.WantsStock() &&
		item.NotifyOnStock &&
		item.LastKnownStock == domain.OutOfStock &&
		snap.Stock == domain.InStock {
		d.StockAlert = true
		d.NotifyOnStock = false
	}

	if item.ServiceType.WantsPrice() &&
		snap.Price.IsPositive() &&
		snap.Price.LessThan(item.TargetPriceLow) {
		d.PriceAlert = true
	}

	return d
}
