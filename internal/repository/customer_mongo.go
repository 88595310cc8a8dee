package repository

import (
	"context"

	"github.com/umalmyha/crmtrack/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "crmtrack"

const (
	customersCollection    = "customers"
	interactionsCollection = "interactions"
)

type mongoCustomerRepository struct {
	client *mongo.Client
}

// NewMongoCustomerRepository builds customer repository over mongodb
func NewMongoCustomerRepository(client *mongo.Client) CustomerRepository {
	return &mongoCustomerRepository{client: client}
}

func (r *mongoCustomerRepository) customers() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(customersCollection)
}

func (r *mongoCustomerRepository) interactions() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(interactionsCollection)
}

func (r *mongoCustomerRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.customers().Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	customers := make([]*model.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, ownerID string, id string) (*model.Customer, error) {
	res := r.customers().FindOne(ctx, bson.M{"_id": id, "ownerId": ownerID})

	var c model.Customer
	if err := res.Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.customers().InsertOne(ctx, c); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":   c.Name,
		"email":  c.Email,
		"phone":  c.Phone,
		"status": c.Status,
	}}

	res, err := r.customers().UpdateOne(ctx, bson.M{"_id": c.ID, "ownerId": c.OwnerID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteByID cascades by hand: mongo has no foreign keys, so interactions of
// the customer are removed right after the customer document
func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, ownerID string, id string) (bool, error) {
	res, err := r.customers().DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return false, err
	}

	if res.DeletedCount == 0 {
		return false, nil
	}

	if _, err := r.interactions().DeleteMany(ctx, bson.M{"customerId": id, "ownerId": ownerID}); err != nil {
		return false, err
	}
	return true, nil
}
