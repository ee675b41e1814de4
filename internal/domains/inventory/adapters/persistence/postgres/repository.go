package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
	"github.com/pawhaven/pawhaven/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the inventory in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&breedRecord{}, &dogRecord{}); err != nil {
			log.Printf("postgres repository migration failed: %v", err)
		}
	}
	return repo
}

type breedRecord struct {
	ID    int64  `gorm:"primaryKey;column:id"`
	Name  string `gorm:"column:name;type:varchar(128)"`
	APIID int    `gorm:"column:api_id;index"`
}

func (breedRecord) TableName() string { return "breeds" }

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

func newDogRecord(d *domain.Dog) dogRecord {
	rec := dogRecord{
		ID:              d.ID,
		Name:            d.Name,
		Status:          d.Status,
		ImageURL:        d.ImageURL,
		TemperamentTags: copyStringArray(d.TemperamentTags),
	}
	if d.Age != nil {
		age := *d.Age
		rec.Age = &age
	}
	if d.BreedID != nil {
		id := *d.BreedID
		rec.BreedID = &id
	}
	return rec
}

// SaveDog inserts or updates a dog aggregate; inserts get a server-assigned id.
func (r *Repository) SaveDog(ctx context.Context, dog *domain.Dog) (*invtypes.DogProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if dog == nil {
		return nil, errors.New("cannot save nil dog")
	}
	record := newDogRecord(dog)
	if record.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		dog.ID = record.ID
		return r.GetDogByID(ctx, record.ID)
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":             record.Name,
				"age":              record.Age,
				"status":           record.Status,
				"image_url":        record.ImageURL,
				"breed_id":         record.BreedID,
				"temperament_tags": record.TemperamentTags,
				"updated_at":       gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetDogByID(ctx, dog.ID)
}

// GetDogByID fetches a dog by identifier, with its breed link when present.
func (r *Repository) GetDogByID(ctx context.Context, id int64) (*invtypes.DogProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record dogRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrDogNotFound
		}
		return nil, err
	}
	return r.toProjection(ctx, &record)
}

// DeleteDog removes a dog by identifier.
func (r *Repository) DeleteDog(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&dogRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrDogNotFound
	}
	return nil
}

// ListDogs returns every persisted dog.
func (r *Repository) ListDogs(ctx context.Context) ([]*invtypes.DogProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []dogRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return r.recordsToProjections(ctx, records)
}

// ListDogsByBreedAPIID returns the dogs linked to the given remote breed id.
func (r *Repository) ListDogsByBreedAPIID(ctx context.Context, apiID int) ([]*invtypes.DogProjection, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []dogRecord
	if err := r.db.WithContext(ctx).
		Joins("JOIN breeds ON breeds.id = dogs.breed_id").
		Where("breeds.api_id = ?", apiID).
		Order("dogs.id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return r.recordsToProjections(ctx, records)
}

// SaveBreed inserts or updates a breed record.
func (r *Repository) SaveBreed(ctx context.Context, breed *domain.Breed) (*domain.Breed, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if breed == nil {
		return nil, errors.New("cannot save nil breed")
	}
	record := breedRecord{ID: breed.ID, Name: breed.Name, APIID: breed.APIID}
	if record.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "api_id"}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	breed.ID = record.ID
	return &domain.Breed{ID: record.ID, Name: record.Name, APIID: record.APIID}, nil
}

// GetBreedByID fetches a breed by identifier.
func (r *Repository) GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record breedRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrBreedNotFound
		}
		return nil, err
	}
	return &domain.Breed{ID: record.ID, Name: record.Name, APIID: record.APIID}, nil
}

// ListBreeds returns every local breed record.
func (r *Repository) ListBreeds(ctx context.Context) ([]*domain.Breed, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []breedRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.Breed, 0, len(records))
	for _, record := range records {
		list = append(list, &domain.Breed{ID: record.ID, Name: record.Name, APIID: record.APIID})
	}
	return list, nil
}

func (r *Repository) recordsToProjections(ctx context.Context, records []dogRecord) ([]*invtypes.DogProjection, error) {
	list := make([]*invtypes.DogProjection, 0, len(records))
	for i := range records {
		proj, err := r.toProjection(ctx, &records[i])
		if err != nil {
			return nil, err
		}
		list = append(list, proj)
	}
	return list, nil
}

func (r *Repository) toProjection(ctx context.Context, record *dogRecord) (*invtypes.DogProjection, error) {
	if record == nil {
		return nil, nil
	}
	proj := &invtypes.DogProjection{
		Dog:      record.toDomain(),
		Metadata: projection.Metadata{CreatedAt: record.CreatedAt, UpdatedAt: record.UpdatedAt},
	}
	if record.BreedID != nil {
		breed, err := r.GetBreedByID(ctx, *record.BreedID)
		if err != nil && !errors.Is(err, ports.ErrBreedNotFound) {
			return nil, err
		}
		proj.Breed = breed
	}
	return proj, nil
}

func (r *dogRecord) toDomain() *domain.Dog {
	if r == nil {
		return nil
	}
	dog := &domain.Dog{
		ID:       r.ID,
		Name:     r.Name,
		Status:   r.Status,
		ImageURL: r.ImageURL,
	}
	if r.Age != nil {
		age := *r.Age
		dog.Age = &age
	}
	if r.BreedID != nil {
		id := *r.BreedID
		dog.BreedID = &id
	}
	if len(r.TemperamentTags) > 0 {
		dog.TemperamentTags = append([]string{}, r.TemperamentTags...)
	}
	return dog
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}

func copyStringArray(values []string) pq.StringArray {
	if len(values) == 0 {
		return nil
	}
	dup := append([]string{}, values...)
	return pq.StringArray(dup)
}
