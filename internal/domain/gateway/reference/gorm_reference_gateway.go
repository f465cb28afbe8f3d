package reference

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"beltempo/internal/domain/gateway/db"
	"beltempo/internal/domain/model"
	"beltempo/internal/infra/dataset"
	"beltempo/pkg/util/stringutils"
)

type referenceCountry struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:128;not null"`
	NameKey  string `gorm:"size:128;index;not null"`
	Capital  string `gorm:"size:128"`
	Position int    `gorm:"not null"`
}

func (referenceCountry) TableName() string { return "reference_countries" }

type referenceCity struct {
	ID        uint   `gorm:"primaryKey"`
	CountryID uint   `gorm:"index;not null"`
	Name      string `gorm:"size:128;not null"`
	NameKey   string `gorm:"size:128;index;not null"`
	Position  int    `gorm:"not null"`
}

func (referenceCity) TableName() string { return "reference_cities" }

// GormReferenceGateway serves the reference lookups from PostgreSQL.
type GormReferenceGateway struct {
	DB     *gorm.DB
	health db.HealthDBGateway
}

var _ Gateway = (*GormReferenceGateway)(nil)

func NewGormReferenceGateway(database *gorm.DB) *GormReferenceGateway {
	return &GormReferenceGateway{DB: database, health: db.NewGormHealthDBGateway(database)}
}

// Seed creates the reference tables and fills them from records when they are empty.
// It returns the number of countries inserted. Records keep their dataset position,
// so repeated names resolve to the first occurrence like the file gateway does.
func (gateway *GormReferenceGateway) Seed(ctx context.Context, records []dataset.CountryRecord) (int, error) {
	if err := gateway.DB.WithContext(ctx).AutoMigrate(&referenceCountry{}, &referenceCity{}); err != nil {
		return 0, fmt.Errorf("failed to migrate reference tables: %w", err)
	}

	var count int64
	if err := gateway.DB.WithContext(ctx).Model(&referenceCountry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reference countries: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, record := range records {
			country := referenceCountry{
				Name:     record.Country,
				NameKey:  stringutils.ToTitle(record.Country),
				Capital:  record.Capital,
				Position: i,
			}
			if err := tx.Create(&country).Error; err != nil {
				return fmt.Errorf("failed to insert country %s: %w", record.Country, err)
			}
			if len(record.Cities) == 0 {
				continue
			}
			cities := make([]referenceCity, len(record.Cities))
			for j, city := range record.Cities {
				cities[j] = referenceCity{
					CountryID: country.ID,
					Name:      city,
					NameKey:   stringutils.ToTitle(city),
					Position:  j,
				}
			}
			if err := tx.Create(&cities).Error; err != nil {
				return fmt.Errorf("failed to insert cities of %s: %w", record.Country, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (gateway *GormReferenceGateway) IsCountry(ctx context.Context, name string) (bool, error) {
	_, found, err := gateway.FindCountry(ctx, name)
	return found, err
}

func (gateway *GormReferenceGateway) FindCountry(ctx context.Context, name string) (string, bool, error) {
	country, err := gateway.findCountry(ctx, name)
	if err != nil || country == nil {
		return "", false, err
	}
	return country.Name, true, nil
}

func (gateway *GormReferenceGateway) FindCity(ctx context.Context, name string) (string, string, bool, error) {
	var rows []struct {
		City    string
		Country string
	}

	err := gateway.DB.WithContext(ctx).
		Table("reference_cities AS c").
		Select("c.name AS city, r.name AS country").
		Joins("JOIN reference_countries AS r ON r.id = c.country_id").
		Where("c.name_key = ?", stringutils.ToTitle(name)).
		Order("r.position ASC, c.position ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return "", "", false, fmt.Errorf("failed to find city %s: %w", name, err)
	}
	if len(rows) == 0 {
		return "", "", false, nil
	}
	return rows[0].City, rows[0].Country, true, nil
}

func (gateway *GormReferenceGateway) CapitalOf(ctx context.Context, country string) (string, bool, error) {
	record, err := gateway.findCountry(ctx, country)
	if err != nil || record == nil || record.Capital == "" {
		return "", false, err
	}
	return record.Capital, true, nil
}

func (gateway *GormReferenceGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	status := gateway.health.Health(ctx)
	if status.Details == nil {
		status.Details = map[string]string{}
	}
	status.Details["source"] = "postgres"
	return status
}

func (gateway *GormReferenceGateway) findCountry(ctx context.Context, name string) (*referenceCountry, error) {
	var country referenceCountry
	err := gateway.DB.WithContext(ctx).
		Where("name_key = ?", stringutils.ToTitle(name)).
		Order("position ASC").
		Take(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find country %s: %w", name, err)
	}
	return &country, nil
}
