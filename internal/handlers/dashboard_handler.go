package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventplanner/dto"
	"eventplanner/internal/authctx"
	"eventplanner/internal/catalog"
	"eventplanner/internal/rsvp"
)

// @Summary      Admin dashboard
// @Description  Upcoming events, each with its RSVP summary. Admin only.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardResponse
// @Router       /dashboard/admin [get]
func AdminDashboardHandler(events *catalog.Catalog, rsvps *rsvp.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := time.Now().Format("2006-01-02")
		upcoming := catalog.Upcoming(events.Snapshot(), today)

		// Two independent mirrors: an RSVP may reference an event the
		// event mirror no longer has, or vice versa. Summaries are
		// computed per surviving event, so dangling RSVPs drop out.
		allRsvps := rsvps.Snapshot()

		cards := make([]dto.AdminEventCard, 0, len(upcoming))
		for _, event := range upcoming {
			cards = append(cards, dto.AdminEventCard{
				Event:   event,
				Summary: rsvp.Summarize(allRsvps, event.ID),
			})
		}
		return c.JSON(dto.AdminDashboardResponse{Events: cards})
	}
}

// @Summary      User dashboard
// @Description  view=all: every upcoming event with the caller's RSVP status. view=mine: only upcoming events the caller has RSVPed to.
// @Tags         dashboard
// @Produce      json
// @Param        view  query     string  false  "all (default) or mine"
// @Success      200   {object}  dto.UserDashboardResponse
// @Router       /dashboard/user [get]
func UserDashboardHandler(events *catalog.Catalog, rsvps *rsvp.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}
		view := c.Query("view", "all")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		mine, err := rsvps.ForUser(ctx, uid)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Message: "error loading rsvps"})
		}

		today := time.Now().Format("2006-01-02")
		upcoming := catalog.Upcoming(events.Snapshot(), today)

		cards := make([]dto.UserEventCard, 0, len(upcoming))
		for _, event := range upcoming {
			card := dto.UserEventCard{Event: event}
			if own, ok := rsvp.FindUserRSVP(mine, event.ID, uid); ok {
				card.RSVPStatus = own.Status
			} else if view == "mine" {
				continue
			}
			cards = append(cards, card)
		}
		return c.JSON(dto.UserDashboardResponse{View: view, Events: cards})
	}
}
