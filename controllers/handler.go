package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"blightwatch-be/config"
	"blightwatch-be/lifecycle"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/services"
	"blightwatch-be/session"
	"blightwatch-be/utils"
)

// Handler serves every route. Its dependencies are fixed at startup.
type Handler struct {
	cases     *services.CaseService
	directory *services.DirectoryService
	users     repository.UserRepository
	codes     session.CodeStore
	cfg       *config.Config
	logger    *zap.Logger
}

func NewHandler(
	cases *services.CaseService,
	directory *services.DirectoryService,
	users repository.UserRepository,
	codes session.CodeStore,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{cases: cases, directory: directory, users: users, codes: codes, cfg: cfg, logger: logger}
}

// Resource names used in "not found" responses.
const (
	resourceCase         = "Case"
	resourceReviewer     = "Reviewer"
	resourceUser         = "User"
	resourceOrganization = "Organization"
	resourceSession      = "Session"
	resourceProfile      = "Profile"
)

func (h *Handler) cookieOptions() utils.CookieOptions {
	return utils.CookieOptions{Domain: h.cfg.Domain, Production: h.cfg.IsProduction()}
}

// respondError maps domain errors onto HTTP statuses. resource names what
// the handler was looking up. Anything it does not recognise is logged and
// reported as a 500.
func (h *Handler) respondError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, lifecycle.ErrAwaitingReview):
		c.JSON(http.StatusConflict, gin.H{
			"error":   lifecycle.LabelAwaitingReview,
			"message": lifecycle.Evaluate(models.StatusPending).Notice,
		})
	case errors.Is(err, lifecycle.ErrInvalidReview),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrCodeMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// UseJSONFieldNames makes validation errors name fields the way clients
// send them.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// bindingError turns validator failures into one readable sentence per field.
func bindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
