package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

// AuthHandlerInterface lists the public account entry points.
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	userUsecase usecasecontract.IUserUseCase
	metrics     *middleware.AuthMetrics
}

// NewAuthHandler wires the handler. metrics may be nil.
func NewAuthHandler(uc usecasecontract.IUserUseCase, metrics *middleware.AuthMetrics) *AuthHandler {
	return &AuthHandler{userUsecase: uc, metrics: metrics}
}

// Register handles user registration (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), usecasecontract.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		AppErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(user.ToProfile()))
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	res, err := h.userUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.RecordLogin(apperror.KindOf(err).String())
		AppErrorHandler(c, err)
		return
	}
	h.metrics.RecordLogin("success")

	SuccessHandler(c, http.StatusOK, dto.ToLoginResponse(res))
}

// Logout revokes the bearer token used for this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.userUsecase.Logout(c.Request.Context(), middleware.AccessToken(c)); err != nil {
		AppErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}
