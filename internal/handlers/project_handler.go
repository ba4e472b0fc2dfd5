package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/dto"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/httpresp"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
	ucProject "github.com/BruksfildServices01/crm-api/internal/usecase/project"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ProjectHandler struct {
	list   *ucProject.ListProjects
	get    *ucProject.GetProject
	create *ucProject.CreateProject
	update *ucProject.UpdateProject
	remove *ucProject.DeleteProject

	defaultPerPage int
}

func NewProjectHandler(
	list *ucProject.ListProjects,
	get *ucProject.GetProject,
	create *ucProject.CreateProject,
	update *ucProject.UpdateProject,
	del *ucProject.DeleteProject,
	defaultPerPage int,
) *ProjectHandler {
	return &ProjectHandler{
		list:           list,
		get:            get,
		create:         create,
		update:         update,
		remove:         del,
		defaultPerPage: defaultPerPage,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// ProjectRequest serves create and update; update replaces every field.
// Status is range-checked by the use case.
type ProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Status      int     `json:"status" binding:"required"`
	ContactID   *uint   `json:"contact_id"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ProjectHandler) List(c *gin.Context) {
	in := ucProject.ListProjectsInput{
		PrincipalID: middleware.PrincipalID(c),
		Search:      c.Query("search"),
		Page:        pagination.FromQuery(c, h.defaultPerPage),
	}

	// An empty or zero status means no filter.
	if raw := strings.TrimSpace(c.Query("status")); raw != "" && raw != "0" {
		s, err := strconv.Atoi(raw)
		if err != nil {
			httperr.Respond(c, httperr.ValidationFields("validation_failed", "The given data was invalid.",
				map[string][]string{"status": {"The status field must be an integer."}}))
			return
		}
		in.Status = &s
	}

	items, meta, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewProjectDTOs(items), meta)
}

func (h *ProjectHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), middleware.PrincipalID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProjectDTO(p))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucProject.CreateProjectInput{
		PrincipalID: middleware.PrincipalID(c),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ContactID:   req.ContactID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, "Project created successfully", dto.NewProjectDTO(p))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindFailure(c, err, func() error {
			return h.update.CheckOwner(c.Request.Context(), middleware.PrincipalID(c), id)
		})
		return
	}

	p, err := h.update.Execute(c.Request.Context(), ucProject.UpdateProjectInput{
		PrincipalID: middleware.PrincipalID(c),
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ContactID:   req.ContactID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Updated(c, "Project updated successfully", dto.NewProjectDTO(p))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.PrincipalID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Project deleted successfully")
}
