package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellerpulse/pkg/ai"
	"sellerpulse/pkg/global"
	"sellerpulse/pkg/models"
	"sellerpulse/pkg/mongo"
	"sellerpulse/pkg/redis"
)

const lowStockThreshold = 10

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// GetDashboardSummary runs the weekly summary pipeline over the inventory
// posted by the dashboard.
func GetDashboardSummary(c *gin.Context) {
	var req models.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	records := models.BusinessRecords(req.Products)
	summary, err := Pipeline.Summarize(c.Request.Context(), records, req.Pincode)
	if err != nil {
		respondAIError(c, err, "Failed to generate AI summary")
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(summary))
}

// GetKpis is a static stub: KPI figures will be computed from order history
// in a later iteration. It is deliberately outside the insight pipeline.
func GetKpis(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse([]models.KpiCard{}))
}

func GetProductDetails(c *gin.Context) {
	ctx := c.Request.Context()

	if details, err := redis.GetProductDetailsFromCache(ctx); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(details))
		return
	}

	products, err := mongo.GetProducts()
	if err != nil {
		log.Printf("Error fetching products from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product details", nil))
		return
	}

	details := computeProductDetails(products)

	if cacheErr := redis.CacheProductDetails(ctx, details); cacheErr != nil {
		log.Printf("Warning: failed to cache product details: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(details))
}

func GetTopSellingItems(c *gin.Context) {
	ctx := c.Request.Context()

	if items, err := redis.GetTopSellingItemsFromCache(ctx); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(items))
		return
	}

	items, err := mongo.GetTopSellingItems(4)
	if err != nil {
		log.Printf("Error aggregating top selling items: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch top selling items", nil))
		return
	}

	if cacheErr := redis.CacheTopSellingItems(ctx, items); cacheErr != nil {
		log.Printf("Warning: failed to cache top selling items: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(items))
}

func GetPurchaseOrders(c *gin.Context) {
	respondOrders(c, mongo.PurchaseOrdersCollection)
}

func GetSalesOrders(c *gin.Context) {
	respondOrders(c, mongo.SalesOrdersCollection)
}

func GetReturnedItems(c *gin.Context) {
	records, err := mongo.GetReturns()
	if err != nil {
		log.Printf("Error fetching returns from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch returned items", nil))
		return
	}

	items := make([]models.ReturnItem, 0, len(records))
	for _, record := range records {
		description, _ := record.Description()
		reason, _ := record.ReturnReason()
		items = append(items, models.ReturnItem{Description: description, ReturnReason: reason})
	}

	c.JSON(http.StatusOK, global.SuccessResponse(items))
}

// AnalyzeReturns runs the returns-pattern pipeline over the posted list of
// returned items.
func AnalyzeReturns(c *gin.Context) {
	var items []models.ReturnItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	insight, err := Pipeline.AnalyzeReturns(c.Request.Context(), items)
	if err != nil {
		respondAIError(c, err, "Failed to generate AI insight")
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(models.InsightResponse{Insight: insight}))
}

// respondAIError maps pipeline failures onto the uniform error envelope,
// keeping generation and parse failures distinguishable for operators.
func respondAIError(c *gin.Context, err error, message string) {
	var parseErr *ai.ParseError
	var genErr *ai.GenerationError

	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("AI model is not configured", nil))
	case errors.As(err, &parseErr):
		c.JSON(http.StatusInternalServerError, global.ErrorResponse(message+": "+parseErr.Message, nil))
	case errors.As(err, &genErr):
		c.JSON(http.StatusBadGateway, global.ErrorResponse(message+": "+genErr.Message, nil))
	default:
		c.JSON(http.StatusInternalServerError, global.ErrorResponse(message, nil))
	}
}

func respondOrders(c *gin.Context, collectionName string) {
	records, err := mongo.ListDocuments(collectionName)
	if err != nil {
		log.Printf("Error fetching %s from MongoDB: %v", collectionName, err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	orders := make([]models.Order, 0, len(records))
	for _, record := range records {
		id, _ := record.StringField("order_id")
		description, _ := record.Description()
		amount, _ := record.FloatField("amount")
		status, _ := record.StringField("status")
		platform, _ := record.StringField("platform")
		orderDate, _ := record.StringField("order_date")
		orders = append(orders, models.Order{
			ID:          id,
			Description: description,
			Amount:      amount,
			Status:      status,
			Platform:    platform,
			OrderDate:   orderDate,
		})
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}

func computeProductDetails(products []models.BusinessRecord) []models.ProductDetail {
	lowStock := 0
	categories := make(map[string]struct{})
	for _, product := range products {
		if stock, ok := product.Stock(); ok && stock < lowStockThreshold {
			lowStock++
		}
		if category, ok := product.Category(); ok {
			categories[category] = struct{}{}
		}
	}

	return []models.ProductDetail{
		{Label: "Low Stock Items", Value: lowStock},
		{Label: "All Item Groups", Value: len(categories)},
		{Label: "All Items", Value: len(products)},
		{Label: "Unconfirmed Items", Value: 0},
	}
}
