package repository

import (
	"context"
	"strings"
	"time"

	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

const usersCollection = "users"

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

type userRepository struct {
	store documentstore.Store
}

func NewUserRepository(store documentstore.Store) UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := r.store.AddDocument(ctx, usersCollection, userToDocument(user))
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	return r.store.SetDocument(ctx, usersCollection, user.ID, userToDocument(user), true)
}

// GetUserByEmail busca por correo recorriendo la colección. Los usuarios son
// pocos, así que no hace falta un índice.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	entries, err := r.store.ListDocuments(ctx, usersCollection)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for _, entry := range entries {
		user, err := userFromDocument(entry.ID, entry.Data)
		if err != nil {
			return nil, err
		}
		if strings.ToLower(user.Email) == email {
			return user, nil
		}
	}

	return nil, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	doc, err := r.store.GetDocument(ctx, usersCollection, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return userFromDocument(userID, doc)
}

func userToDocument(user *domain.User) documentstore.Document {
	return documentstore.Document{
		"name":          user.Name,
		"lastname":      user.Lastname,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"active":        user.Active,
		"role_id":       user.RoleID,
		"created_at":    user.CreatedAt.Format(time.RFC3339),
		"updated_at":    user.UpdatedAt.Format(time.RFC3339),
	}
}

func userFromDocument(id string, doc documentstore.Document) (*domain.User, error) {
	user := &domain.User{ID: id}

	if name, ok := doc["name"].(string); ok {
		user.Name = name
	}
	if lastname, ok := doc["lastname"].(string); ok {
		user.Lastname = lastname
	}
	if email, ok := doc["email"].(string); ok {
		user.Email = email
	}
	if hash, ok := doc["password_hash"].(string); ok {
		user.PasswordHash = hash
	}
	if active, ok := doc["active"].(bool); ok {
		user.Active = active
	}
	if roleID, ok := doc["role_id"].(float64); ok {
		user.RoleID = int(roleID)
	}
	if raw, ok := doc["created_at"].(string); ok {
		if createdAt, err := time.Parse(time.RFC3339, raw); err == nil {
			user.CreatedAt = createdAt
		}
	}
	if raw, ok := doc["updated_at"].(string); ok {
		if updatedAt, err := time.Parse(time.RFC3339, raw); err == nil {
			user.UpdatedAt = updatedAt
		}
	}

	return user, nil
}
