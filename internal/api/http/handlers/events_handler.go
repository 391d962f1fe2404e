package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/api/dto"
	"github.com/spec-kit/playplanner-service/internal/service"
)

// EventsHandler manages the caller's events.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// List GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	events, err := h.service.List(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventDtos(events))
}

// Get GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	event, err := h.service.Get(c.UserContext(), id, principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventDto(event))
}

// Create POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.EventDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.service.Create(c.UserContext(), req.ToDomain(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventDto(event))
}

// Update PUT /events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EventDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.service.Update(c.UserContext(), id, req.ToDomain(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventDto(event))
}

// Delete DELETE /events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
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
