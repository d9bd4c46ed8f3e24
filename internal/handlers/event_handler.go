package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventplanner/dto"
	"eventplanner/internal/authctx"
	"eventplanner/internal/catalog"
	"eventplanner/internal/repository"
	"eventplanner/internal/rsvp"
	"eventplanner/model"
)

// @Summary      List upcoming events
// @Description  Upcoming events ordered by date ascending
// @Tags         events
// @Produce      json
// @Success      200  {array}  model.Event
// @Router       /events [get]
func ListEventsHandler(events *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := time.Now().Format("2006-01-02")
		upcoming := catalog.Upcoming(events.Snapshot(), today)
		if upcoming == nil {
			upcoming = []model.Event{}
		}
		return c.JSON(upcoming)
	}
}

// @Summary      Event details
// @Description  One event with its RSVP summary; admins also get the per-status attendee roster
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  dto.EventDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /events/{id} [get]
func EventDetailHandler(events *catalog.Catalog, rsvps *rsvp.Aggregator, usersCol *mongo.Collection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}
		eventID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid event id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		event, ok := catalog.Find(events.Snapshot(), eventID)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "event not found"})
		}

		eventRsvps, err := rsvps.ForEvent(ctx, eventID)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "error loading rsvps"})
		}

		resp := dto.EventDetailResponse{
			Event:   event,
			Summary: rsvp.Summarize(eventRsvps, eventID),
		}
		if own, ok := rsvp.FindUserRSVP(eventRsvps, eventID, uid); ok {
			resp.UserRSVP = &own
		}

		if role, _ := c.Locals("role").(string); role == model.RoleAdmin {
			groups, err := attendeeGroups(ctx, usersCol, eventRsvps)
			if err != nil {
				return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "error loading attendees"})
			}
			resp.Attendees = groups
		}
		return c.JSON(resp)
	}
}

// attendeeGroups resolves RSVP owners to display names and buckets
// them by status, in the fixed going/maybe/declined order.
func attendeeGroups(ctx context.Context, usersCol *mongo.Collection, rsvps []model.RSVP) ([]dto.AttendeeGroup, error) {
	var ids []bson.ObjectID
	for _, r := range rsvps {
		if oid, err := bson.ObjectIDFromHex(r.UserID); err == nil {
			ids = append(ids, oid)
		}
	}
	users, err := repository.FetchUsersByIDs(ctx, usersCol, ids)
	if err != nil {
		return nil, err
	}

	var groups []dto.AttendeeGroup
	for _, status := range []string{model.RSVPStatusGoing, model.RSVPStatusMaybe, model.RSVPStatusDeclined} {
		group := dto.AttendeeGroup{Status: status}
		for _, r := range rsvps {
			if r.Status != status {
				continue
			}
			group.Count++
			name := "User"
			if u, ok := users[r.UserID]; ok {
				if u.Name != "" {
					name = u.Name
				} else if u.Email != "" {
					name = u.Email
				}
			}
			group.Names = append(group.Names, name)
		}
		if group.Count > 0 {
			groups = append(groups, group)
		}
	}
	return groups, nil
}

// @Summary      Create event
// @Description  Validates fields, then creates the event. Admin only.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EventRequestDTO  true  "Event fields"
// @Success      201   {object}  dto.EventCreatedResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /events [post]
func CreateEventHandler(events *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}
		var body dto.EventRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id, fieldErrs, err := events.Create(ctx, body, uid)
		if len(fieldErrs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
		}
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "Error saving event. Please try again."})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.EventCreatedResponse{
			ID:      id.Hex(),
			Message: "Event created successfully!",
		})
	}
}

// @Summary      Update event
// @Description  Validates fields, then edits the event. Admin only.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Event ID"
// @Param        body  body      dto.EventRequestDTO  true  "Event fields"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /events/{id} [put]
func UpdateEventHandler(events *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid event id"})
		}
		var body dto.EventRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fieldErrs, err := events.Update(ctx, eventID, body)
		if len(fieldErrs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
		}
		if errors.Is(err, model.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "event not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "Error saving event. Please try again."})
		}
		return c.JSON(dto.MessageResponse{Message: "Event updated successfully!"})
	}
}

// @Summary      Delete event
// @Description  Deletes the event and every RSVP referencing it. Admin only.
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /events/{id} [delete]
func DeleteEventHandler(events *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid event id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err = events.Delete(ctx, eventID)
		if errors.Is(err, model.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "event not found"})
		}
		if err != nil {
			// Covers the cascade partial failure too: one generic
			// notification, details only in the log.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "Error deleting event"})
		}
		return c.JSON(dto.MessageResponse{Message: "Event deleted successfully"})
	}
}
