// Package catalog holds the bookable dog-service offerings returned by the
// widget API. The list is read-only for the widget; only its source differs
// between the server (seeded repository) and the embedded client (fetched).
package catalog

// Money is a price amount in a currency's minor units.
type Money struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// Service is a single bookable offering.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       Money  `json:"price"`
	DurationMin int    `json:"duration_min"`
}

// ServicesResponse is the wire envelope for GET /api/widget/services.
type ServicesResponse struct {
	Services []Service `json:"services"`
}
