package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/dto"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/httpresp"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
	ucContact "github.com/BruksfildServices01/crm-api/internal/usecase/contact"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ContactHandler struct {
	list   *ucContact.ListContacts
	get    *ucContact.GetContact
	create *ucContact.CreateContact
	update *ucContact.UpdateContact
	remove *ucContact.DeleteContact

	defaultPerPage int
}

func NewContactHandler(
	list *ucContact.ListContacts,
	get *ucContact.GetContact,
	create *ucContact.CreateContact,
	update *ucContact.UpdateContact,
	del *ucContact.DeleteContact,
	defaultPerPage int,
) *ContactHandler {
	return &ContactHandler{
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

type CreateContactRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=255"`
	Email       string     `json:"email" binding:"required,email,max=255"`
	PhoneNumber *string    `json:"phone_number" binding:"omitempty,max=20"`
	Company     *string    `json:"company" binding:"omitempty,max=255"`
	UserID      optionalID `json:"user_id"`
}

type UpdateContactRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=255"`
	Email       *string    `json:"email" binding:"omitempty,email,max=255"`
	PhoneNumber *string    `json:"phone_number" binding:"omitempty,max=20"`
	Company     *string    `json:"company" binding:"omitempty,max=255"`
	UserID      optionalID `json:"user_id"`
}

// ======================================================
// ROUTES
// ======================================================

// List is owner-scoped unless ?all is given.
func (h *ContactHandler) List(c *gin.Context) {
	items, meta, err := h.list.Execute(c.Request.Context(), ucContact.ListContactsInput{
		PrincipalID: middleware.PrincipalID(c),
		All:         queryFlag(c, "all"),
		Search:      c.Query("search"),
		Page:        pagination.FromQuery(c, h.defaultPerPage),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewContactDTOs(items), meta)
}

func (h *ContactHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}

	contact, err := h.get.Execute(c.Request.Context(), middleware.PrincipalID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewContactDTO(contact))
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	contact, err := h.create.Execute(c.Request.Context(), ucContact.CreateContactInput{
		PrincipalID: middleware.PrincipalID(c),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		UserID:      req.UserID.ptr(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, "Contact created successfully", dto.NewContactDTO(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindFailure(c, err, func() error {
			return h.update.CheckOwner(c.Request.Context(), middleware.PrincipalID(c), id)
		})
		return
	}

	contact, err := h.update.Execute(c.Request.Context(), ucContact.UpdateContactInput{
		PrincipalID: middleware.PrincipalID(c),
		ContactID:   id,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		UserID:      req.UserID.ptr(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Updated(c, "Contact updated successfully", dto.NewContactDTO(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.PrincipalID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Contact deleted successfully")
}
