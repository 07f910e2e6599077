package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/user-manager/internal/core/domain"
)

const rolesCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoRoleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	var docs []mongoRole
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	out := make([]*domain.Role, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoRoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	doc := mongoRole{
		Name:      role.Name,
		CreatedAt: role.CreatedAt.Unix(),
		UpdatedAt: role.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MongoRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	oid, err := primitive.ObjectIDFromHex(role.ID)
	if err != nil {
		return domain.ErrRoleNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":       role.Name,
		"updated_at": role.UpdatedAt.Unix(),
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *MongoRoleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoleNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *MongoRoleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, filter).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return mr.toDomain(), nil
}

func (mr mongoRole) toDomain() *domain.Role {
	return &domain.Role{
		ID:        mr.ID.Hex(),
		Name:      mr.Name,
		CreatedAt: unixToTime(mr.CreatedAt),
		UpdatedAt: unixToTime(mr.UpdatedAt),
	}
}
