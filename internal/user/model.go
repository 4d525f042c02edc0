// File: internal/user/model.go
package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

// User is a stored user document. ID is assigned by the store on insert and
// never changes afterwards. Email uniqueness is not enforced.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Picture string             `bson:"picture" json:"picture"`
}

// --- DTOs (Data Transfer Objects) for API requests ---

// CreateUserRequest is the body of POST /api/users. Every field is optional
// and an absent field is stored as the empty string.
type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// ToUser builds a new, not yet stored, user.
func (r CreateUserRequest) ToUser() *User {
	return &User{Name: r.Name, Email: r.Email, Picture: r.Picture}
}

// UpdateUserRequest is the body of PUT /api/users/:id. Fields present in the
// body replace the stored values; absent fields are left as they are.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Picture *string `json:"picture"`
}

// Changes returns the fields to overwrite, keyed by document field name.
func (r UpdateUserRequest) Changes() map[string]string {
	changes := make(map[string]string, 3)
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Picture != nil {
		changes["picture"] = *r.Picture
	}
	return changes
}
