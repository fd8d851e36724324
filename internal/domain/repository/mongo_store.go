package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resident-records-service/internal/domain/models"
)

// Collection names shared with existing deployments.
const (
	CollectionResidents = "residents"
	CollectionUsers     = "users"
	CollectionQRTokens  = "qrTokens"
	CollectionScanLogs  = "scanLogs"
)

// MongoStore implements Store over a mongo database.
type MongoStore struct {
	db    *mongo.Database
	close func() error
}

// NewMongoStore wraps db. closeFn disconnects the client and may be nil.
func NewMongoStore(db *mongo.Database, closeFn func() error) *MongoStore {
	return &MongoStore{db: db, close: closeFn}
}

func (s *MongoStore) Residents() InterfaceResidentRepository {
	return &mongoResidentRepository{coll: s.db.Collection(CollectionResidents)}
}

func (s *MongoStore) Accounts() InterfaceAccountRepository {
	return &mongoAccountRepository{coll: s.db.Collection(CollectionUsers)}
}

func (s *MongoStore) QRTokens() InterfaceQRTokenRepository {
	return &mongoQRTokenRepository{coll: s.db.Collection(CollectionQRTokens)}
}

func (s *MongoStore) ScanLogs() InterfaceScanLogRepository {
	return &mongoScanLogRepository{coll: s.db.Collection(CollectionScanLogs)}
}

// Ping checks the primary.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// EnsureIndexes creates the unique indexes the services rely on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionResidents: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionQRTokens: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "expiration", Value: 1}}},
		},
		CollectionScanLogs: {
			{Keys: bson.D{{Key: "residentId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func translateMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

type mongoResidentRepository struct {
	coll *mongo.Collection
}

func (r *mongoResidentRepository) Create(ctx context.Context, resident *models.Resident) error {
	now := time.Now()
	resident.CreatedAt = now
	resident.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, resident)
	return translateMongo(err)
}

func (r *mongoResidentRepository) FindAll(ctx context.Context) ([]models.Resident, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	residents := []models.Resident{}
	if err := cursor.All(ctx, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *mongoResidentRepository) FindByID(ctx context.Context, id string) (*models.Resident, error) {
	var resident models.Resident
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&resident); err != nil {
		return nil, translateMongo(err)
	}
	return &resident, nil
}

func (r *mongoResidentRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoResidentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for name, value := range updates {
		if _, ok := models.ResidentColumn(name); !ok {
			return fmt.Errorf("unknown resident field %q", name)
		}
		set[name] = value
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return translateMongo(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoResidentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoAccountRepository struct {
	coll *mongo.Collection
}

func (r *mongoAccountRepository) Create(ctx context.Context, account *models.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, account)
	return translateMongo(err)
}

func (r *mongoAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		return nil, translateMongo(err)
	}
	return &account, nil
}

func (r *mongoAccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *mongoAccountRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

type mongoQRTokenRepository struct {
	coll *mongo.Collection
}

func (r *mongoQRTokenRepository) Create(ctx context.Context, token *models.QRToken) error {
	_, err := r.coll.InsertOne(ctx, token)
	return translateMongo(err)
}

func (r *mongoQRTokenRepository) FindByToken(ctx context.Context, token string) (*models.QRToken, error) {
	var qrToken models.QRToken
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&qrToken); err != nil {
		return nil, translateMongo(err)
	}
	return &qrToken, nil
}

func (r *mongoQRTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"expiration": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

type mongoScanLogRepository struct {
	coll *mongo.Collection
}

func (r *mongoScanLogRepository) Create(ctx context.Context, log *models.ScanLog) error {
	_, err := r.coll.InsertOne(ctx, log)
	return translateMongo(err)
}
