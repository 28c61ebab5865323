package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel carries the UUID primary key and the audit timestamps shared by every table.
// The id is generated by PostgreSQL; UpdatedAt stays NULL until the first update.
type BaseModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime:false" json:"updated_at,omitempty"`
}

// All returns every model in foreign-key dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{&Category{}, &User{}, &Product{}, &Purchase{}, &Rating{}}
}
