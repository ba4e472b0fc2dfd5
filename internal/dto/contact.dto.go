package dto

import (
	"time"

	"github.com/BruksfildServices01/crm-api/internal/models"
)

type ContactDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
	Company     *string   `json:"company"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User     *UserDTO     `json:"user,omitempty"`
	Projects []ProjectDTO `json:"projects,omitempty"`
}

func NewContactDTO(c *models.Contact) *ContactDTO {
	if c == nil {
		return nil
	}

	out := &ContactDTO{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Company:     c.Company,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		User:        NewUserDTO(c.User),
	}
	if len(c.Projects) > 0 {
		out.Projects = NewProjectDTOs(c.Projects)
	}
	return out
}

func NewContactDTOs(contacts []models.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(contacts))
	for i := range contacts {
		out = append(out, *NewContactDTO(&contacts[i]))
	}
	return out
}
