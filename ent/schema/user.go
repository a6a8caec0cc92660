package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Bcrypt password hash"),
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Display name"),
		field.Enum("role").
			Values("admin", "marketing_analyst", "viewer").
			Default("viewer").
			Comment("Access role. Analytics routes require marketing_analyst or admin"),
		field.Bool("is_active").
			Default(true).
			Comment("Inactive accounts cannot authenticate"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
	}
}
