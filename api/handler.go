package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Emmie8/schedsim/internal/config"
	"github.com/Emmie8/schedsim/internal/log"
	"github.com/Emmie8/schedsim/internal/requests"
	"github.com/Emmie8/schedsim/internal/responses"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *schedulers.Simulator
	log       *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		simulator: schedulers.NewSimulator(logger),
		log:       logger,
	}
}

// NewApp wires the comparison endpoints:
//
//	GET  /api/v1/policies  policy names and titles in canonical order
//	POST /api/v1/all       every policy plus the best one
//	POST /api/v1/:policy   a single policy (fcfs, rr, spn, srt, hrrn, fb, fbv, aging)
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/all", h.AllAlgorithms)
		v1.Post("/:policy", h.Schedule)
	}

	return app
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err)
	}

	name := ctx.Params("policy")
	result, err := s.simulator.Run(name, request.Processes(), request.Options(s.config.Options()))
	if err != nil {
		return s.fail(ctx, statusFor(err), err)
	}

	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.fail(ctx, fiber.StatusBadRequest, err)
	}

	comparison, err := s.simulator.Compare(request.Processes(), request.Options(s.config.Options()))
	if err != nil {
		return s.fail(ctx, statusFor(err), err)
	}

	return ctx.JSON(responses.NewComparisonResponse(comparison))
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.NewPolicyResponses(schedulers.Policies()))
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, status int, err error) error {
	s.log.Warn("request rejected",
		slog.String("path", ctx.Path()),
		slog.Int("status", status),
		log.ErrAttr(err),
	)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	if errors.Is(err, schedulers.ErrUnknownPolicy) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}
