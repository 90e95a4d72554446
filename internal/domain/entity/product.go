package entity

import (
	"time"
)

// StoreProduct is the canonical shape a raw provider record is normalized
// into. It is fully overwritten on every sync cycle, keyed by the
// provider-assigned ID.
type StoreProduct struct {
	ID               string                   `json:"id" firestore:"id"`
	Title            string                   `json:"title" firestore:"title"`
	Description      string                   `json:"description,omitempty" firestore:"description"`
	Images           []string                 `json:"images" firestore:"images"`
	Tags             []string                 `json:"tags" firestore:"tags"`
	Categories       []string                 `json:"categories" firestore:"categories"`
	Variants         []map[string]interface{} `json:"variants" firestore:"variants"`
	DefaultVariantID int64                    `json:"default_variant_id,omitempty" firestore:"defaultVariantId"`
	Price            float64                  `json:"price" firestore:"price"`
	Currency         string                   `json:"currency" firestore:"currency"`
	Available        bool                     `json:"available" firestore:"available"`
	SyncedAt         time.Time                `json:"synced_at" firestore:"syncedAt"`
}
