package dashboard

import (
	"context"
	"strconv"

	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
)

type Stats struct {
	TotalUsers       int64            `json:"total_users"`
	TotalContacts    int64            `json:"total_contacts"`
	TotalProjects    int64            `json:"total_projects"`
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
}

// GetStats counts users globally and contacts and projects within the
// principal's own records.
type GetStats struct {
	users    domainUser.Repository
	contacts domainContact.Repository
	projects domainProject.Repository
}

func NewGetStats(
	users domainUser.Repository,
	contacts domainContact.Repository,
	projects domainProject.Repository,
) *GetStats {
	return &GetStats{users: users, contacts: contacts, projects: projects}
}

func (uc *GetStats) Execute(ctx context.Context, principalID uint) (*Stats, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := uc.contacts.CountByOwner(ctx, principalID)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.projects.CountByStatus(ctx, principalID)
	if err != nil {
		return nil, err
	}

	out := &Stats{
		TotalUsers:       users,
		TotalContacts:    contacts,
		ProjectsByStatus: make(map[string]int64, len(domainProject.Statuses)),
	}
	// Every known status is reported, zero or not.
	for _, s := range domainProject.Statuses {
		n := byStatus[int(s)]
		out.ProjectsByStatus[strconv.Itoa(int(s))] = n
		out.TotalProjects += n
	}
	return out, nil
}
