package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"eventplanner/dto"
	"eventplanner/internal/authctx"
	"eventplanner/internal/catalog"
	"eventplanner/internal/rsvp"
	"eventplanner/model"
)

// @Summary      Submit RSVP
// @Description  Records or changes the caller's attendance for an event
// @Tags         rsvps
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Event ID"
// @Param        body  body      dto.RSVPRequestDTO true  "Status: going, maybe or declined"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /events/{id}/rsvp [post]
func SubmitRSVPHandler(events *catalog.Catalog, rsvps *rsvp.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}
		eventID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid event id"})
		}
		var body dto.RSVPRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		// No RSVP may reference a nonexistent event.
		if _, ok := catalog.Find(events.Snapshot(), eventID); !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "event not found"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Only the notification text depends on whether one existed;
		// the write itself is an upsert either way.
		_, existed := rsvp.FindUserRSVP(rsvps.Snapshot(), eventID, uid)

		err = rsvps.Submit(ctx, uid, eventID, body.Status)
		if errors.Is(err, model.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "Error processing RSVP"})
		}

		message := "RSVP submitted successfully!"
		if existed {
			message = "RSVP updated successfully!"
		}
		return c.JSON(dto.MessageResponse{Message: message})
	}
}
