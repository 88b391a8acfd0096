package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	ListUsers(*gin.Context)
	GetCurrentUser(*gin.Context)
	GetUser(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
	SetUserStatus(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// caller aborts with 401 when the auth middleware did not run.
func caller(c *gin.Context) (*entity.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}
	return user, true
}

// ListUsers is staff only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}
	profiles, err := h.userUsecase.ListAll(c.Request.Context(), user)
	if err != nil {
		AppErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(profiles))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user.ToProfile()))
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}
	profile, err := h.userUsecase.GetByID(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		AppErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(profile))
}

// UpdateUser handles updating user profile
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	profile, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.Param("id"), user, usecasecontract.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		AppErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(profile))
}

// DeleteUser permanently removes an account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}
	if err := h.userUsecase.DeleteByID(c.Request.Context(), c.Param("id"), user); err != nil {
		AppErrorHandler(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetUserStatus bans or unbans an account via ?action=ENABLE|DISABLE.
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}
	profile, err := h.userUsecase.SetEnabled(c.Request.Context(), c.Param("id"), user, c.Query("action"))
	if err != nil {
		AppErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(profile))
}
