package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
	"github.com/openedu/institution-backend/internal/types"
)

type UserHandler struct {
	log     *logger.Logger
	userSvc services.UserService
}

func NewUserHandler(baseLog *logger.Logger, userSvc services.UserService) *UserHandler {
	return &UserHandler{
		log:     baseLog.With("handler", "UserHandler"),
		userSvc: userSvc,
	}
}

type createUserRequest struct {
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Role      types.Role `json:"role" binding:"required,oneof=STUDENT TEACHER ADMIN"`
	Bio       string     `json:"bio"`
	AvatarURL string     `json:"avatar_url"`
}

// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	user, err := h.userSvc.Create(c.Request.Context(), services.CreateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, user)
}

// GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}
