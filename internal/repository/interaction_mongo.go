package repository

import (
	"context"
	"time"

	"github.com/umalmyha/crmtrack/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoInteractionRepository struct {
	client *mongo.Client
}

// NewMongoInteractionRepository builds interaction repository over mongodb
func NewMongoInteractionRepository(client *mongo.Client) InteractionRepository {
	return &mongoInteractionRepository{client: client}
}

func (r *mongoInteractionRepository) interactions() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(interactionsCollection)
}

func (r *mongoInteractionRepository) FindAllByCustomer(ctx context.Context, ownerID string, customerID string) ([]*model.Interaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "interactionDate", Value: -1}})

	cursor, err := r.interactions().Find(ctx, bson.M{"ownerId": ownerID, "customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}

	interactions := make([]*model.Interaction, 0)
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *mongoInteractionRepository) Create(ctx context.Context, i *model.Interaction) error {
	if _, err := r.interactions().InsertOne(ctx, i); err != nil {
		return err
	}
	return nil
}

func (r *mongoInteractionRepository) DeleteByID(ctx context.Context, ownerID string, id string) (bool, error) {
	res, err := r.interactions().DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// FindUpcomingByOwner mirrors the postgres join with $lookup, $unwind drops
// reminders whose customer document is gone
func (r *mongoInteractionRepository) FindUpcomingByOwner(ctx context.Context, ownerID string, from time.Time, limit int) ([]*model.FollowUp, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"ownerId":      ownerID,
			"followUpDate": bson.M{"$ne": nil, "$gte": from},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         customersCollection,
			"localField":   "customerId",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		bson.D{{Key: "$unwind", Value: "$customer"}},
		bson.D{{Key: "$sort", Value: bson.M{"followUpDate": 1}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          1,
			"customerId":   1,
			"customerName": "$customer.name",
			"type":         1,
			"followUpDate": 1,
		}}},
	}

	cursor, err := r.interactions().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	followUps := make([]*model.FollowUp, 0)
	if err := cursor.All(ctx, &followUps); err != nil {
		return nil, err
	}
	return followUps, nil
}
