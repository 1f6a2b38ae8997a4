package models

// AISummary is the structured weekly summary generated for the dashboard.
// All four fields are required; a response missing any of them is rejected
// by the parser rather than returned partially filled.
type AISummary struct {
	Focus       string `json:"focus"`
	Opportunity string `json:"opportunity"`
	Caution     string `json:"caution"`
	Action      string `json:"action"`
}

// SummaryRequest is the inbound body for the weekly summary endpoint.
// Products arrive as raw documents; the handler wraps them into
// BusinessRecords before the pipeline sees them.
type SummaryRequest struct {
	// Products may be empty: a summary of sparse data is still a valid
	// request, so no required binding here.
	Products []map[string]interface{} `json:"products"`
	Pincode  string                   `json:"pincode" binding:"required"`
}

// ReturnItem is one returned product plus the customer-stated reason.
type ReturnItem struct {
	Description  string `json:"description" binding:"required"`
	ReturnReason string `json:"return_reason" binding:"required"`
}

// InsightResponse carries a single free-text advice string.
type InsightResponse struct {
	Insight string `json:"insight"`
}

type KpiCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Change   string `json:"change,omitempty"`
	Trend    string `json:"trend"`
	Icon     string `json:"icon"`
	Subtitle string `json:"subtitle,omitempty"`
}

type ProductDetail struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type TopSellingItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Icon     string `json:"icon"`
}

// Order is a purchase or sales order row as rendered on the dashboard.
type Order struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Platform    string  `json:"platform,omitempty"`
	OrderDate   string  `json:"order_date,omitempty"`
}
