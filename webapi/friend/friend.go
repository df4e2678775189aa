// Package friend exposes the ledger endpoints: friend lifecycle, balance
// mutations and the transaction history.
package friend

import (
	authsvc "github.com/Nweder/fuel-friends-azure/pkg/service/auth"
	ledgersvc "github.com/Nweder/fuel-friends-azure/pkg/service/ledger"
	"github.com/Nweder/fuel-friends-azure/webapi/common"
	"github.com/Nweder/fuel-friends-azure/webapi/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for the shared fuel ledger using the Fiber web
// framework. It sets up endpoints for managing friends, logging fill-ups and
// payments, resetting balances, and reading the transaction history. All
// routes require the shared app password header.
//
// Routes:
//   - GET    /api/friends                  : List all friends.
//   - POST   /api/friends                  : Create a friend.
//   - PUT    /api/friends/:id              : Rename a friend.
//   - DELETE /api/friends/:id              : Delete a friend and its history.
//   - POST   /api/friends/:id/add-liters   : Log a fill-up.
//   - POST   /api/friends/:id/pay          : Record a payment.
//   - POST   /api/friends/:id/reset        : Zero one friend's balances.
//   - POST   /api/reset-all                : Zero every friend's balances.
//   - GET    /api/friends/:id/transactions : Read the history, newest first.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) {
	app.Get("/api/friends", middleware.PasswordProtected(authSvc), ListFriends(ledgerSvc))
	app.Post("/api/friends", middleware.PasswordProtected(authSvc), CreateFriend(ledgerSvc))
	app.Put("/api/friends/:id", middleware.PasswordProtected(authSvc), RenameFriend(ledgerSvc))
	app.Delete("/api/friends/:id", middleware.PasswordProtected(authSvc), DeleteFriend(ledgerSvc))
	app.Post("/api/friends/:id/add-liters", middleware.PasswordProtected(authSvc), AddLiters(ledgerSvc))
	app.Post("/api/friends/:id/pay", middleware.PasswordProtected(authSvc), Pay(ledgerSvc))
	app.Post("/api/friends/:id/reset", middleware.PasswordProtected(authSvc), ResetFriend(ledgerSvc))
	app.Post("/api/reset-all", middleware.PasswordProtected(authSvc), ResetAll(ledgerSvc))
	app.Get("/api/friends/:id/transactions", middleware.PasswordProtected(authSvc), ListTransactions(ledgerSvc))
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// ListFriends returns every friend with derived balances.
// @Summary List all friends
// @Description Returns every friend on the shared ledger with liters, SEK value and lifetime paid amount.
// @Tags friends
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Success 200 {array} FriendResponse "Friends with derived balances"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends [get]
func ListFriends(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		friends, err := ledgerSvc.ListFriends(c.Context())
		if err != nil {
			log.Errorf("Failed to list friends: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list friends", err)
		}
		out := make([]FriendResponse, 0, len(friends))
		for _, f := range friends {
			out = append(out, NewFriendResponse(f))
		}
		return c.JSON(out)
	}
}

// CreateFriend returns a Fiber handler that creates a new friend with zeroed
// balances and records a "created" entry in the history. On success it returns
// the created friend as JSON with status 201. On failure it logs the error and
// returns an appropriate error response.
// @Summary Create a new friend
// @Description Adds a friend to the shared ledger with zeroed balances. The name is trimmed and must keep at least two characters. Returns the created friend.
// @Tags friends
// @Accept json
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param request body CreateFriendRequest true "Friend name"
// @Success 201 {object} FriendResponse "Friend created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends [post]
func CreateFriend(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Infof("Creating new friend")
		input, _ := common.BindAndValidate[CreateFriendRequest](c)
		if input == nil {
			return nil // error response already written
		}
		f, err := ledgerSvc.CreateFriend(c.Context(), input.Name)
		if err != nil {
			log.Errorf("Failed to create friend: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create friend", err)
		}
		log.Infof("Friend created: %s (id=%d)", f.Name, f.ID)
		return c.Status(fiber.StatusCreated).JSON(NewFriendResponse(f))
	}
}

// RenameFriend changes a friend's name.
// @Summary Rename a friend
// @Description Changes a friend's display name. Balances and history stay untouched. Returns the updated friend.
// @Tags friends
// @Accept json
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Param request body RenameFriendRequest true "New name"
// @Success 200 {object} FriendResponse "Friend renamed"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id} [put]
func RenameFriend(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		input, _ := common.BindAndValidate[RenameFriendRequest](c)
		if input == nil {
			return nil // error response already written
		}
		f, err := ledgerSvc.RenameFriend(c.Context(), id, input.Name)
		if err != nil {
			log.Errorf("Failed to rename friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to rename friend", err)
		}
		return c.JSON(NewFriendResponse(f))
	}
}

// DeleteFriend removes a friend and its whole history.
// @Summary Delete a friend
// @Description Removes a friend and every transaction recorded for them. Returns no body.
// @Tags friends
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Success 204 "Friend deleted"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id} [delete]
func DeleteFriend(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteFriend(c.Context(), id); err != nil {
			log.Errorf("Failed to delete friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to delete friend", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddLiters adds fuel to a friend's balance.
// @Summary Log a fill-up
// @Description Adds liters to a friend's balance and records a fuel-added entry. Returns the updated friend.
// @Tags friends
// @Accept json
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Param request body AddLitersRequest true "Liters to add"
// @Success 200 {object} FriendResponse "Balance updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id}/add-liters [post]
func AddLiters(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		input, _ := common.BindAndValidate[AddLitersRequest](c)
		if input == nil {
			return nil // error response already written
		}
		f, err := ledgerSvc.AddFuel(c.Context(), id, input.Liters)
		if err != nil {
			log.Errorf("Failed to add liters for friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to add liters", err)
		}
		return c.JSON(NewFriendResponse(f))
	}
}

// Pay returns a Fiber handler that records a payment against a friend's
// balance. The amount is given in SEK and converted to liters at the fixed
// price. Overpayment is allowed and leaves the friend with a credit.
// @Summary Record a payment
// @Description Subtracts the paid SEK from a friend's balance at the fixed liter price. Overpayment leaves a credit. Returns the updated friend.
// @Tags friends
// @Accept json
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Param request body PayRequest true "Amount in SEK"
// @Success 200 {object} FriendResponse "Balance updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id}/pay [post]
func Pay(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		input, _ := common.BindAndValidate[PayRequest](c)
		if input == nil {
			return nil // error response already written
		}
		f, err := ledgerSvc.Pay(c.Context(), id, input.Amount)
		if err != nil {
			log.Errorf("Failed to record payment for friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to record payment", err)
		}
		return c.JSON(NewFriendResponse(f))
	}
}

// ResetFriend zeroes one friend's balances.
// @Summary Reset a friend's balance
// @Description Zeroes a friend's liters and paid amount and records a reset entry. Returns the updated friend.
// @Tags friends
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Success 200 {object} FriendResponse "Balance reset"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id}/reset [post]
func ResetFriend(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		f, err := ledgerSvc.ResetFriend(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to reset friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to reset friend", err)
		}
		return c.JSON(NewFriendResponse(f))
	}
}

// ResetAll zeroes every friend's balances.
// @Summary Reset every balance
// @Description Zeroes liters and paid amounts for all friends in one go. Individual histories are kept.
// @Tags friends
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Success 200 {object} map[string]bool "All balances reset"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/reset-all [post]
func ResetAll(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ledgerSvc.ResetAll(c.Context()); err != nil {
			log.Errorf("Failed to reset all friends: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to reset all friends", err)
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// ListTransactions returns the newest history entries for a friend.
// @Summary List a friend's transactions
// @Description Returns up to the 50 newest history entries for a friend, newest first.
// @Tags friends
// @Produce json
// @Param X-App-Password header string true "Shared app password"
// @Param id path int true "Friend ID"
// @Success 200 {array} TransactionResponse "History entries, newest first"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Friend not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/friends/{id}/transactions [get]
func ListTransactions(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid friend id", nil, fiber.StatusBadRequest)
		}
		entries, err := ledgerSvc.History(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to list transactions for friend %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		out := make([]TransactionResponse, 0, len(entries))
		for _, tx := range entries {
			out = append(out, NewTransactionResponse(tx))
		}
		return c.JSON(out)
	}
}
