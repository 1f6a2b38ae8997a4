package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"sellerpulse/pkg/global"
	"sellerpulse/pkg/models"
)

// Collection names used by the dashboard.
const (
	ProductsCollection       = "products"
	PurchaseOrdersCollection = "purchase_orders"
	SalesOrdersCollection    = "sales_orders"
	ReturnsCollection        = "returns"
)

// ListDocuments fetches every document in a collection as untyped business
// records, preserving the store's natural order.
func ListDocuments(collectionName string) ([]models.BusinessRecord, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(collectionName)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]models.BusinessRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, models.NewBusinessRecord(doc))
	}
	return records, nil
}

func GetProducts() ([]models.BusinessRecord, error) {
	return ListDocuments(ProductsCollection)
}

func GetPurchaseOrders() ([]models.BusinessRecord, error) {
	return ListDocuments(PurchaseOrdersCollection)
}

func GetSalesOrders() ([]models.BusinessRecord, error) {
	return ListDocuments(SalesOrdersCollection)
}

func GetReturns() ([]models.BusinessRecord, error) {
	return ListDocuments(ReturnsCollection)
}
