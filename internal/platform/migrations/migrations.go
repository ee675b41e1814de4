package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&breedRecord{},
		&dogRecord{},
		&userRecord{},
		&sessionRecord{},
	)
}

// Breed schema mirrors the inventory Postgres adapter.
type breedRecord struct {
	ID    int64  `gorm:"primaryKey;column:id"`
	Name  string `gorm:"column:name;type:varchar(128)"`
	APIID int    `gorm:"column:api_id;index"`
}

func (breedRecord) TableName() string { return "breeds" }

// Dog schema mirrors the inventory Postgres adapter.
type dogRecord struct {
	ID              int64          `gorm:"primaryKey;column:id"`
	Name            string         `gorm:"column:name;type:varchar(128)"`
	Age             *int           `gorm:"column:age"`
	Status          string         `gorm:"column:status;type:varchar(64);index"`
	ImageURL        string         `gorm:"column:image_url"`
	BreedID         *int64         `gorm:"column:breed_id;index"`
	TemperamentTags pq.StringArray `gorm:"column:temperament_tags;type:text[]"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

func (dogRecord) TableName() string { return "dogs" }

// User schema mirrors the accounts Postgres adapter.
type userRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the token-keyed session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	UserID    int64     `gorm:"column:user_id;index"`
	Username  string    `gorm:"column:username;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }
