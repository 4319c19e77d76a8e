// Package agent exposes the booking use cases as named tools that take a
// flat string argument record and always answer with a sentence.
package agent

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	"github.com/BruksfildServices01/car-service-agent/internal/httperr"
	"github.com/BruksfildServices01/car-service-agent/internal/logger"
	ucAppointment "github.com/BruksfildServices01/car-service-agent/internal/usecase/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

var ErrUnknownTool = errors.New("unknown tool")

type Handler func(ctx context.Context, args Args) (string, error)

// Tool is one operation the agent may call. Action completes the sentence
// "A system error occurred while ..." when the call fails unexpectedly.
type Tool struct {
	Name        string
	Description string
	Arguments   []string
	Action      string
	Handler     Handler
}

// UseCases groups what the built-in tools dispatch to.
type UseCases struct {
	Schedule     *ucAppointment.ScheduleAppointment
	Update       *ucAppointment.UpdateUserData
	Cancel       *ucAppointment.CancelAppointment
	DeleteUser   *ucAppointment.DeleteUser
	CheckUser    *ucAppointment.CheckUserData
	Availability *ucAppointment.CheckDatetimeAvailability
}

type Registry struct {
	tools    map[string]*Tool
	order    []string
	cfg      *config.Config
	uc       UseCases
	log      logger.LoggerInterface
	validate *validator.Validate
}

func NewRegistry(cfg *config.Config, uc UseCases, log logger.LoggerInterface) *Registry {
	if log == nil {
		log = logger.NoOpLogger()
	}
	r := &Registry{
		tools:    make(map[string]*Tool),
		cfg:      cfg,
		uc:       uc,
		log:      log,
		validate: newValidate(),
	}
	r.registerBuiltins()
	return r
}

// Register adds t, replacing any tool with the same name.
func (r *Registry) Register(t *Tool) {
	if _, ok := r.tools[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Call runs the named tool. The only error it returns is ErrUnknownTool;
// every other outcome is rendered into the result string.
func (r *Registry) Call(ctx context.Context, name string, args Args) (string, error) {
	t, ok := r.Get(name)
	if !ok {
		return "", ErrUnknownTool
	}

	out, err := t.Handler(ctx, args)
	if err != nil {
		return r.render(ctx, t, args, err), nil
	}

	r.log.InfoContext(ctx, "tool call succeeded", "tool", t.Name, "user_id", args["user_id"])
	return out, nil
}

// render maps the error taxonomy onto the string the caller sees. Only
// system errors are logged with their details.
func (r *Registry) render(ctx context.Context, t *Tool, args Args, err error) string {
	if validators.IsValidation(err) {
		r.log.InfoContext(ctx, "tool call rejected",
			"tool", t.Name, "user_id", args["user_id"], "reason", err.Error())
		return "Error: " + err.Error() + "."
	}

	if be, ok := httperr.AsBusiness(err); ok {
		r.log.InfoContext(ctx, "tool call refused",
			"tool", t.Name, "user_id", args["user_id"], "code", be.Code)
		return be.Error()
	}

	r.log.ErrorContext(ctx, "tool call failed",
		"tool", t.Name, "user_id", args["user_id"], "error", err)
	return SystemErrorMessage(t.Action)
}

func SystemErrorMessage(action string) string {
	return "A system error occurred while " + action +
		". If this continues, you should request human assistance."
}
