package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	SeqID        int64     `bson:"id_usuario"`
	Name         string    `bson:"nombre"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Role         string    `bson:"rol"`
	Status       string    `bson:"estado"`
	RegisteredAt time.Time `bson:"fecha_registro"`
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		SeqID:        d.SeqID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Status:       d.Status,
		RegisteredAt: d.RegisteredAt,
	}
}

// UserRepository adaptador Mongo para cuentas de usuario.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository construye el repositorio.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(colUsers)}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	doc := userDoc{
		ID:           user.ID,
		SeqID:        user.SeqID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Status:       user.Status,
		RegisteredAt: user.RegisteredAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar usuario: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repository.UserPatch) (repository.UpdateResult, error) {
	set := bson.M{}
	setIfString(set, "nombre", patch.Name)
	setIfString(set, "email", patch.Email)
	setIfString(set, "rol", patch.Role)
	setIfString(set, "estado", patch.Status)
	setIfString(set, "password", patch.PasswordHash)
	if len(set) == 0 {
		return repository.UpdateResult{}, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar usuario: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (repository.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar contraseña: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar usuario: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}
