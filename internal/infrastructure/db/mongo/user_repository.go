package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/user-manager/internal/core/domain"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	RoleID       string             `bson:"role_id"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*domain.User, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := fromDomainUser(user)
	doc.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	doc := fromDomainUser(user)

	set := bson.M{
		"username":      doc.Username,
		"password_hash": doc.PasswordHash,
		"role_id":       doc.RoleID,
		"updated_at":    doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.Email == "" {
		update["$unset"] = bson.M{"email": ""}
	} else {
		set["email"] = doc.Email
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, roleID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role_id": roleID})
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func fromDomainUser(u *domain.User) mongoUser {
	oid, _ := primitive.ObjectIDFromHex(u.ID)
	return mongoUser{
		ID:           oid,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		RoleID:       u.RoleID,
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		RoleID:       mu.RoleID,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
