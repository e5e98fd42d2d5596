package handler

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
)

// Resetter truncates the domain tables; wired only in test mode.
type Resetter interface {
	ResetAll(ctx context.Context) error
}

type Handler struct {
	cfg             *config.Config
	authSvc         *service.AuthService
	klubSvc         *service.KlubService
	paymentSvc      *service.PaymentService
	referralSvc     *service.ReferralService
	activitySvc     *service.ActivityService
	notificationSvc *service.NotificationService
	resetter        Resetter
	validate        *validator.Validate
	startedAt       time.Time
}

func New(
	cfg *config.Config,
	authSvc *service.AuthService,
	klubSvc *service.KlubService,
	paymentSvc *service.PaymentService,
	referralSvc *service.ReferralService,
	activitySvc *service.ActivityService,
	notificationSvc *service.NotificationService,
	resetter Resetter,
) *Handler {
	validate := validator.New()
	// Report fields under their wire names, not the Go ones.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		cfg:             cfg,
		authSvc:         authSvc,
		klubSvc:         klubSvc,
		paymentSvc:      paymentSvc,
		referralSvc:     referralSvc,
		activitySvc:     activitySvc,
		notificationSvc: notificationSvc,
		resetter:        resetter,
		validate:        validate,
		startedAt:       time.Now(),
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).Seconds(),
		"timestamp": time.Now().UnixMilli(),
	})
}

// validationErrors maps validator failures into the {errors: [...]}
// payload the registration endpoints return.
func (h *Handler) validationErrors(err error) []fiber.Map {
	out := []fiber.Map{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			out = append(out, fiber.Map{
				"msg":  "Invalid value",
				"path": verr.Field(),
			})
		}
	}
	return out
}
