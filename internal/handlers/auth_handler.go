package handlers

import (
	"log"
	"time"

	"asteria/internal/middleware"
	"asteria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login, logout, and profile routes.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/register", h.HandleRegisterPage)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
	router.Get("/profile", h.HandleGetProfile)
	router.Post("/profile", h.HandleUpdateProfile)
}

// RegisterRequest is the payload for new user registration.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=4"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ProfileRequest is the payload for profile edits.
type ProfileRequest struct {
	Username    string `json:"username" form:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" form:"phone_number" validate:"omitempty,max=20"`
}

// HandleRegisterPage redirects authenticated users home; anonymous visitors
// get the registration entry point.
func (h *AuthHandler) HandleRegisterPage(c *fiber.Ctx) error {
	if middleware.ActorFromCtx(c).Authenticated {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"message": "Create an account"})
}

// HandleRegister creates a new user and logs them in immediately.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	if middleware.ActorFromCtx(c).Authenticated {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user, token, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Username, err)
		return respondServiceError(c, err)
	}

	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful, you are now logged in",
		"user":    user,
		"token":   token,
	})
}

// HandleLoginPage redirects authenticated users home.
func (h *AuthHandler) HandleLoginPage(c *fiber.Ctx) error {
	if middleware.ActorFromCtx(c).Authenticated {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"message": "Log in to your account"})
}

// HandleLogin authenticates a user and establishes their session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	if middleware.ActorFromCtx(c).Authenticated {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("Failed login attempt for user %s", req.Username)
		return respondServiceError(c, err)
	}

	h.setSessionCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// HandleLogout ends the session by expiring the cookie. Logging out without
// a session is a no-op, so the operation is idempotent.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleGetProfile returns the acting user's own record.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(middleware.ActorFromCtx(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleUpdateProfile updates the acting user's username, email, and phone.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user, err := h.userService.UpdateProfile(middleware.ActorFromCtx(c), req.Username, req.Email, req.PhoneNumber)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Your profile has been updated",
		"user":    user,
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
