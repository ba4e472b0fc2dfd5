package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ProjectGormRepository struct {
	db *gorm.DB
}

var _ domainProject.Repository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

func (r *ProjectGormRepository) Create(ctx context.Context, p *models.Project) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Contact").Create(p).Error)
}

func (r *ProjectGormRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).
		Preload("Contact").
		First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProjectGormRepository) Update(ctx context.Context, p *models.Project) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Contact").Save(p).Error)
}

func (r *ProjectGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ProjectGormRepository) List(ctx context.Context, f domainProject.Filter) ([]models.Project, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("user_id = ?", f.OwnerID)

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		like := likePattern(search)
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, like, like)
	}

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var projects []models.Project
	if err := q.
		Preload("Contact").
		Order("id DESC").
		Limit(f.Page.PerPage).
		Offset(f.Page.Offset()).
		Find(&projects).Error; err != nil {
		return nil, 0, translate(err)
	}

	return projects, total, nil
}

func (r *ProjectGormRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("user_id = ?", ownerID).
		Count(&n).Error
	return n, translate(err)
}

func (r *ProjectGormRepository) CountByStatus(ctx context.Context, ownerID uint) (map[int]int64, error) {
	var rows []struct {
		Status int
		Total  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}
