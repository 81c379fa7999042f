package controller

import (
	"errors"

	"npo-hub-be/internal/dto"
	"npo-hub-be/internal/pkg/serverutils"
	"npo-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
}

type userController struct {
	service   service.IUserService
	secretKey string
}

func NewUserController(service service.IUserService, secretKey string) IUserController {
	return &userController{service: service, secretKey: secretKey}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/", c.Register)
	h.Get("/:id", serverutils.JwtMiddleware(c.secretKey), c.GetUser)
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Email already registered"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid user ID"))
	}

	res, err := c.service.GetUser(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("User not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("User", res))
}
