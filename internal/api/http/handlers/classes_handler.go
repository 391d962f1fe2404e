package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/api/dto"
	"github.com/spec-kit/playplanner-service/internal/service"
)

// ClassesHandler manages the caller's classes.
type ClassesHandler struct {
	service *service.ClassService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classService *service.ClassService) *ClassesHandler {
	return &ClassesHandler{service: classService}
}

// List GET /classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	classes, err := h.service.List(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassItemDtos(classes))
}

// Get GET /classes/:id.
func (h *ClassesHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	class, err := h.service.Get(c.UserContext(), id, principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassItemDto(class))
}

// Create POST /classes.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ClassItemDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	class, err := h.service.Create(c.UserContext(), req.ToDomain(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassItemDto(class))
}

// Update PUT /classes/:id.
func (h *ClassesHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.ClassItemDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	class, err := h.service.Update(c.UserContext(), id, req.ToDomain(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassItemDto(class))
}

// Delete DELETE /classes/:id.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id, principal); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
