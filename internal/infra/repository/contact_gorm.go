package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

var _ domainContact.Repository = (*ContactGormRepository)(nil)

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, c *models.Contact) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Projects").Create(c).Error)
}

func (r *ContactGormRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.WithContext(ctx).
		Preload("Projects", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ContactGormRepository) Update(ctx context.Context, c *models.Contact) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Projects").Save(c).Error)
}

func (r *ContactGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("contact_id = ?", id).
			Update("contact_id", nil).Error; err != nil {
			return translate(err)
		}

		res := tx.Delete(&models.Contact{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *ContactGormRepository) List(ctx context.Context, f domainContact.Filter) ([]models.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Contact{})

	if !f.AllOwners {
		q = q.Where("user_id = ?", f.OwnerID)
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		like := likePattern(search)
		q = q.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(company) LIKE ? ESCAPE '\')`,
			like, like, like,
		)
	}

	// Count and Find must not share one statement.
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var contacts []models.Contact
	if err := q.
		Order("id DESC").
		Limit(f.Page.PerPage).
		Offset(f.Page.Offset()).
		Find(&contacts).Error; err != nil {
		return nil, 0, translate(err)
	}

	return contacts, total, nil
}

func (r *ContactGormRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ?", ownerID).
		Count(&n).Error
	return n, translate(err)
}
