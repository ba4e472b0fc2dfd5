package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ domainUser.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

func (r *UserGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *UserGormRepository) List(ctx context.Context, f domainUser.Filter) ([]models.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		like := likePattern(search)
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, like, like)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var users []models.User
	if err := q.
		Order("id DESC").
		Limit(f.Page.PerPage).
		Offset(f.Page.Offset()).
		Find(&users).Error; err != nil {
		return nil, 0, translate(err)
	}

	return users, total, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, translate(err)
}

func (r *UserGormRepository) CountOwnedRecords(ctx context.Context, id uint) (int64, error) {
	var contacts, projects int64

	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ?", id).
		Count(&contacts).Error; err != nil {
		return 0, translate(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("user_id = ?", id).
		Count(&projects).Error; err != nil {
		return 0, translate(err)
	}

	return contacts + projects, nil
}
