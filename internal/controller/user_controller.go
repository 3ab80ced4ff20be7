// FILE: internal/controller/user_controller.go
package controller

import (
	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/serverutils"
	"company-profile-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultUserPageLimit = 10

type IUserController interface {
	// RegisterRoutes expects r to be the authenticated admin group.
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Put("/profile/password", c.ChangePassword)

	h := r.Group("/users", serverutils.RequireRoles(model.UserRoleAdmin))
	h.Get("", c.List)
	h.Get("/:id", c.Get)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *userController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", defaultUserPageLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultUserPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, users, err := c.service.List(ctx.UserContext(), page, limit, ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.NewPaginatedResponse("Success get users list", users, total, page, limit))
}

func (c *userController) Get(ctx *fiber.Ctx) error {
	id, err := parseUserID(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get User", res))
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User created", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := parseUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := parseUserID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id, serverutils.CurrentUserID(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}

func (c *userController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ChangePassword(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}

func parseUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.NotFound("User")
	}
	return id, nil
}
