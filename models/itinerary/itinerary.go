package itinerary

// Itinerary is a packaged trip offered to customers. An itinerary without
// an assigned agent is unassigned and visible to every agent.
type Itinerary struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Destination     string       `json:"destination"`
	Duration        int          `json:"duration"` // days
	Price           float64      `json:"price"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	AssignedAgentID string       `json:"assignedAgentId,omitempty"`
	Collaterals     []Collateral `json:"collaterals"`
}

// Collateral is a marketing asset attached to one itinerary. It is created
// unapproved and goes through the compliance workflow; rejection deletes
// it, so no rejected terminal state exists.
type Collateral struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       CollateralType  `json:"type"`
	URL        string          `json:"url"`
	Approved   bool            `json:"approved"`
	AiFeedback *AiReviewResult `json:"aiFeedback,omitempty"`
}

// AiReviewResult is the structured outcome of an AI compliance review.
type AiReviewResult struct {
	IssuesFound bool   `json:"issuesFound"`
	Feedback    string `json:"feedback"`
}
