package dto

import (
	"time"

	"github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ContactID   *uint     `json:"contact_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      int       `json:"status"`
	StatusText  string    `json:"status_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User    *UserDTO    `json:"user,omitempty"`
	Contact *ContactDTO `json:"contact,omitempty"`
}

func NewProjectDTO(p *models.Project) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		ContactID:   p.ContactID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StatusText:  project.StatusText(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		User:        NewUserDTO(p.User),
		Contact:     NewContactDTO(p.Contact),
	}
}

func NewProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for i := range projects {
		out = append(out, *NewProjectDTO(&projects[i]))
	}
	return out
}
