package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventplanner/dto"
	"eventplanner/internal/authctx"
	"eventplanner/internal/session"
	"eventplanner/internal/validate"
	"eventplanner/model"
)

// @Summary      Sign up
// @Description  Creates a profile and returns a JWT access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequestDTO  true  "Signup fields"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /auth/signup [post]
func SignupHandler(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SignupRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Role == "" {
			body.Role = model.RoleUser
		}
		if errs := validate.SignupFields(body); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := sessions.SignUp(ctx, body.Name, body.Email, body.Password, body.Role)
		if errors.Is(err, model.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "signup failed"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{AccessToken: token})
	}
}

// @Summary      Login
// @Description  Authenticates user and returns JWT access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequestDTO  true  "Login credentials"
// @Success      200   {object}  dto.TokenResponse
// @Router       /auth/login [post]
func LoginHandler(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Email == "" || body.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email and password required"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := sessions.SignIn(ctx, body.Email, body.Password)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "invalid credentials"})
		}
		return c.JSON(dto.TokenResponse{AccessToken: token})
	}
}

// @Summary      Logout
// @Description  Revokes the presented token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
func LogoutHandler(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := authctx.Identity(c)
		if err != nil {
			return err
		}
		if err := sessions.SignOut(c.Context(), ident); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "logout failed"})
		}
		return c.JSON(dto.MessageResponse{Message: "signed out"})
	}
}

// @Summary      Current user
// @Description  Returns the authenticated user's profile and role
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /auth/me [get]
func MeHandler(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}

		profile, err := sessions.Profile(c.Context(), uid)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "profile not found"})
		}
		return c.JSON(dto.MeResponse{
			UID:   profile.ID.Hex(),
			Name:  profile.Name,
			Email: profile.Email,
			Role:  profile.Role,
		})
	}
}
