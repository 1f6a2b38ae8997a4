package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"sellerpulse/pkg/global"
	"sellerpulse/pkg/models"
)

type topSellingRow struct {
	Description string `bson:"_id"`
	Quantity    int    `bson:"quantity"`
}

// GetTopSellingItems groups sales orders by product description and returns
// the most frequently sold items.
func GetTopSellingItems(limit int) ([]models.TopSellingItem, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(SalesOrdersCollection)

	pipeline := bson.A{
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$description"},
				{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{
				{Key: "quantity", Value: -1},
				{Key: "_id", Value: 1},
			}},
		},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []topSellingRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	items := make([]models.TopSellingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.TopSellingItem{
			Name:     row.Description,
			Quantity: row.Quantity,
			Icon:     "Package",
		})
	}
	return items, nil
}
