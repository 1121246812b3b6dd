package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kadima-pos/middleware"
	"kadima-pos/models"
	"kadima-pos/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// @Summary Create user
// @Description Create a cashier or admin for the admin's merchant
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User data"
// @Success 201 {object} models.Response{data=models.User}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	user, err := ctrl.users.CreateUser(c.Request.Context(), c.GetString(middleware.CtxMerchantID), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// @Summary List users
// @Description Paginated users of the admin's merchant
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	page, limit := pagination(c)

	users, meta, err := ctrl.users.ListUsers(c.Request.Context(), c.GetString(middleware.CtxMerchantID), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Meta:    meta,
	})
}
