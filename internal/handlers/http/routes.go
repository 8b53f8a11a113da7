package http

import (
	"errors"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/paywatch/internal/paywatch"
	"github.com/gabapcia/paywatch/internal/pkg/logger"
	"github.com/gabapcia/paywatch/internal/pkg/validator"
)

const (
	helloMessage       = "Hello World"
	waitingMessage     = "Being waited on"
	testWebhookMessage = "Test webhook"
)

// maxExpiryMinutes keeps the deadline computation inside time.Duration.
const maxExpiryMinutes = math.MaxInt64 / int64(time.Minute)

var (
	errMissingAddress       = errors.New("address is required")
	errInvalidAddress       = errors.New("address is invalid for the configured network")
	errInvalidAmount        = errors.New("amount_in_btc must be a positive amount with at most 8 decimals")
	errInvalidConfirmations = errors.New("confirmations_num must not be negative")
	errInvalidExpiry        = errors.New("expiry_in_mins is out of range")
)

// waitOnForm is the body of /wait_on and /create_and_wait_on.
type waitOnForm struct {
	Address          *string `json:"address"`
	AmountInBTC      string  `json:"amount_in_btc"`
	ConfirmationsNum int64   `json:"confirmations_num"`
	ExpiryInMins     uint64  `json:"expiry_in_mins"`
}

// toWatchRequest validates everything but the address and builds the request
// for address.
func (f waitOnForm) toWatchRequest(address string, now time.Time) (paywatch.WatchRequest, error) {
	amount, err := decimal.NewFromString(f.AmountInBTC)
	if err != nil || !validator.IsBTCAmount(amount) {
		return paywatch.WatchRequest{}, errInvalidAmount
	}

	if f.ConfirmationsNum < 0 {
		return paywatch.WatchRequest{}, errInvalidConfirmations
	}

	if f.ExpiryInMins > uint64(maxExpiryMinutes) {
		return paywatch.WatchRequest{}, errInvalidExpiry
	}

	return paywatch.WatchRequest{
		Address:               address,
		RequiredAmount:        amount,
		RequiredConfirmations: f.ConfirmationsNum,
		ExpiresAt:             now.Add(time.Duration(f.ExpiryInMins) * time.Minute),
	}, nil
}

func (s *server) validateAddress(address *string) (string, error) {
	if address == nil || *address == "" {
		return "", errMissingAddress
	}

	decoded, err := btcutil.DecodeAddress(*address, s.network)
	if err != nil || !decoded.IsForNet(s.network) {
		return "", errInvalidAddress
	}

	return *address, nil
}

// startStatus maps StartWatch errors to HTTP statuses.
func startStatus(err error) int {
	switch {
	case errors.Is(err, paywatch.ErrAlreadyWatched):
		return fiber.StatusConflict
	case errors.Is(err, paywatch.ErrInvalidAmount), errors.Is(err, validator.ErrValidationFailed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *server) hello(c *fiber.Ctx) error {
	return c.SendString(helloMessage)
}

func (s *server) healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *server) waitOn(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form waitOnForm
	if err := c.BodyParser(&form); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	address, err := s.validateAddress(form.Address)
	if err != nil {
		logger.Debug(ctx, "rejected wait_on request", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	req, err := form.toWatchRequest(address, s.clock())
	if err != nil {
		logger.Debug(ctx, "rejected wait_on request", "watch.address", address, "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.watcher.StartWatch(ctx, req); err != nil {
		logger.Warn(ctx, "watch not started", "watch.address", address, "error", err)
		return c.SendStatus(startStatus(err))
	}

	return c.SendString(waitingMessage)
}

func (s *server) createAndWaitOn(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form waitOnForm
	if err := c.BodyParser(&form); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	// Validate before generating so rejected requests do not burn addresses.
	if _, err := form.toWatchRequest("", s.clock()); err != nil {
		logger.Debug(ctx, "rejected create_and_wait_on request", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	address, err := s.addresses.NewAddress(ctx)
	if err != nil {
		logger.Error(ctx, "error generating address", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	req, err := form.toWatchRequest(address, s.clock())
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.watcher.StartWatch(ctx, req); err != nil {
		logger.Warn(ctx, "watch not started", "watch.address", address, "error", err)
		return c.SendStatus(startStatus(err))
	}

	return c.SendString(address)
}

func (s *server) testWebhook(c *fiber.Ctx) error {
	body := c.Body()
	if !json.Valid(body) {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	logger.Info(c.UserContext(), "test webhook received", "webhook.body", string(body))
	return c.SendString(testWebhookMessage)
}
