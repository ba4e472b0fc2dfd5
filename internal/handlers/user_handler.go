package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/dto"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/httpresp"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
	ucUser "github.com/BruksfildServices01/crm-api/internal/usecase/user"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	list   *ucUser.ListUsers
	get    *ucUser.GetUser
	create *ucUser.CreateUser
	update *ucUser.UpdateUser
	remove *ucUser.DeleteUser
	avatar *ucUser.UploadAvatar

	defaultPerPage int
}

func NewUserHandler(
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	create *ucUser.CreateUser,
	update *ucUser.UpdateUser,
	del *ucUser.DeleteUser,
	avatar *ucUser.UploadAvatar,
	defaultPerPage int,
) *UserHandler {
	return &UserHandler{
		list:           list,
		get:            get,
		create:         create,
		update:         update,
		remove:         del,
		avatar:         avatar,
		defaultPerPage: defaultPerPage,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	items, meta, err := h.list.Execute(
		c.Request.Context(),
		c.Query("search"),
		pagination.FromQuery(c, h.defaultPerPage),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewUserDTOs(items), meta)
}

func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	u, err := h.create.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, "User created successfully", dto.NewUserDTO(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	u, err := h.update.Execute(c.Request.Context(), ucUser.UpdateUserInput{
		PrincipalID: middleware.PrincipalID(c),
		UserID:      id,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Updated(c, "User updated successfully", dto.NewUserDTO(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.PrincipalID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "User deleted successfully")
}

// UploadAvatar takes a multipart "avatar" file.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.Respond(c, httperr.ValidationFields("validation_failed", "The given data was invalid.",
			map[string][]string{"avatar": {"The avatar field is required."}}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	u, err := h.avatar.Execute(c.Request.Context(), middleware.PrincipalID(c), id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Updated(c, "Avatar updated successfully", dto.NewUserDTO(u))
}
