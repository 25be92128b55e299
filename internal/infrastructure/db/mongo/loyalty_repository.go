package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

const (
	collectionLoyalty       = "customer_loyalty"
	collectionLoyaltyEvents = "loyalty_events"
)

type LoyaltyRepository struct {
	db *mongo.Database
}

func NewLoyaltyRepository(db *mongo.Database) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

type loyaltyDoc struct {
	CustomerID    string    `bson:"customer_id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email"`
	TotalSpent    float64   `bson:"total_spent"`
	TotalBookings int       `bson:"total_bookings"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// ApplyAccrual atomically bumps the customer's aggregate, creating the record
// on first accrual. The name/email snapshot refreshes on every write.
func (r *LoyaltyRepository) ApplyAccrual(ctx context.Context, customerID, name, email string, amount float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"customer_id": customerID}
	update := bson.M{
		"$inc": bson.M{
			"total_spent":    amount,
			"total_bookings": 1,
		},
		"$set": bson.M{
			"customer_name":  name,
			"customer_email": email,
			"updated_at":     time.Now().UTC(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection(collectionLoyalty).UpdateOne(ctx, filter, update, opts)
	return err
}

// List returns all loyalty records ordered by total spent descending, ties
// broken by total bookings descending.
func (r *LoyaltyRepository) List(ctx context.Context) ([]*domain.LoyaltyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "total_spent", Value: -1},
		{Key: "total_bookings", Value: -1},
	})

	cur, err := r.db.Collection(collectionLoyalty).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.LoyaltyRecord
	for cur.Next(ctx) {
		var doc loyaltyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &domain.LoyaltyRecord{
			CustomerID:    doc.CustomerID,
			CustomerName:  doc.CustomerName,
			CustomerEmail: doc.CustomerEmail,
			TotalSpent:    doc.TotalSpent,
			TotalBookings: doc.TotalBookings,
			UpdatedAt:     doc.UpdatedAt.UTC(),
		})
	}
	return out, cur.Err()
}

// InsertEvent persists an accrual to the loyalty_events audit collection.
func (r *LoyaltyRepository) InsertEvent(ctx context.Context, event *domain.AccrualEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"booking_id":  event.BookingID,
		"customer_id": event.CustomerID,
		"amount":      event.Amount,
		"recorded_at": event.RecordedAt.UTC(),
	}

	_, err := r.db.Collection(collectionLoyaltyEvents).InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates the unique aggregate key and the listing sort index.
func (r *LoyaltyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.db.Collection(collectionLoyalty).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "total_spent", Value: -1}, {Key: "total_bookings", Value: -1}}},
	})
	return err
}
