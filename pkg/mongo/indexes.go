package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"sellerpulse/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Products: category filtering and low-stock scans
	{
		CollectionName: ProductsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_product_category"),
		},
	},
	{
		CollectionName: ProductsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "stock", Value: 1}},
			Options: options.Index().SetName("idx_product_stock"),
		},
	},

	// Sales orders: top-selling aggregation groups on description
	{
		CollectionName: SalesOrdersCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "description", Value: 1}},
			Options: options.Index().SetName("idx_sales_description"),
		},
	},
	{
		CollectionName: SalesOrdersCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "order_date", Value: -1}},
			Options: options.Index().SetName("idx_sales_order_date"),
		},
	},

	// Purchase orders: listed newest first on the dashboard
	{
		CollectionName: PurchaseOrdersCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "order_date", Value: -1}},
			Options: options.Index().SetName("idx_purchase_order_date"),
		},
	},

	// Returns: grouped by reason during analysis review
	{
		CollectionName: ReturnsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "return_reason", Value: 1}},
			Options: options.Index().SetName("idx_return_reason"),
		},
	},
}

// EnsureIndexesOnStartup provisions the dashboard indexes. Index creation is
// idempotent; re-running on deploy is safe.
func EnsureIndexesOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	for _, config := range requiredIndexes {
		collection := GetCollection(config.CollectionName)
		if _, err := collection.Indexes().CreateOne(ctx, config.IndexModel); err != nil {
			log.Fatalf("Failed to create index on %s: %v", config.CollectionName, err)
		}
	}

	log.Println("MongoDB indexes ensured")
}
