package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"station-attendance/models"
	util "station-attendance/pkg/utils"
	"station-attendance/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepository
}

func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetAllUsers godoc
// @Summary List users
// @Description Returns every registered user in stored order
// @Tags Users
// @Produce json
// @Success 200 {object} models.GetAllUsersResponse
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users := h.userRepo.GetAll(ctx)
	return c.Status(fiber.StatusOK).JSON(models.GetAllUsersResponse{Users: users, Total: len(users)})
}

// CreateUser godoc
// @Summary Add a user
// @Description Registers a user with a human-facing code, name and email. Role defaults to employee.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserCreatePayload true "New user"
// @Success 201 {object} models.CreateUserResponse
// @Failure 400 {object} object{error=string,errors=[]util.ErrorResponse} "Missing or invalid fields"
// @Failure 500 {object} object{error=string} "Store write failed"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var payload models.UserCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Please fill in all fields",
			"errors": errs,
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.CreateUser(ctx, payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateUserResponse{
		Message: "User added successfully",
		User:    user,
	})
}

// GetUserByID godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "Opaque user id"
// @Success 200 {object} models.User
// @Failure 404 {object} object{error=string} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user := h.userRepo.FindUserByID(ctx, c.Params("id"))
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user. Their attendance records are kept.
// @Tags Users
// @Produce json
// @Param id path string true "Opaque user id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} object{error=string} "User not found"
// @Failure 500 {object} object{error=string} "Store write failed"
// @Router /users/{id} [delete]
//
// DeleteUser leaves the user's attendance records in place.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.userRepo.DeleteUser(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{Message: "User deleted successfully"})
}
