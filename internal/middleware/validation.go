// internal/middleware/validation.go
package middleware

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MinPasswordLength int
	MaxNameLength     int
	MaxTitleLength    int
	MaxContentLength  int
	MaxLocationLength int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MinPasswordLength: 8,
		MaxNameLength:     100,
		MaxTitleLength:    200,
		MaxContentLength:  50000,
		MaxLocationLength: 200,
	}
}

// ValidationInterceptor validates requests field-by-field before they reach
// the service layer, so no store call happens for malformed input.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// Stream returns a stream server interceptor. No streaming endpoint takes
// validated input today, so this passes through.
func (v *ValidationInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		return handler(srv, stream)
	}
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *opsv1.CreateClientRequest:
		return v.validateCreateClientRequest(r)
	case *opsv1.UpdateClientRequest:
		return v.validateUpdateClientRequest(r)
	case *opsv1.CreateTemplateRequest:
		return v.validateCreateTemplateRequest(r)
	case *opsv1.UpdateTemplateRequest:
		return v.validateUpdateTemplateRequest(r)
	case *opsv1.StartCycleRequest:
		return v.validateStartCycleRequest(r)
	case *opsv1.ScheduleShootRequest:
		return v.validateScheduleShootRequest(r)
	case *opsv1.RescheduleShootRequest:
		return v.validateRescheduleShootRequest(r)
	case *opsv1.AddContextEntryRequest:
		return v.validateAddContextEntryRequest(r)
	case *opsv1.CompleteCheckinRequest:
		return v.validateCompleteCheckinRequest(r)
	case *opsv1.LoginRequest:
		return v.validateLoginRequest(r)
	case *opsv1.InviteUserRequest:
		return v.validateInviteUserRequest(r)
	case *opsv1.AcceptInviteRequest:
		return v.validateAcceptInviteRequest(r)
	default:
		// Requests without field constraints pass through
		return nil
	}
}

func (v *ValidationInterceptor) validateCreateClientRequest(req *opsv1.CreateClientRequest) error {
	if err := validateRequired(req.Name, "name"); err != nil {
		return err
	}
	if err := validateMaxLength(req.Name, "name", v.config.MaxNameLength); err != nil {
		return err
	}
	for field, u := range map[string]string{
		"drive_url":    req.DriveUrl,
		"schedule_url": req.ScheduleUrl,
		"brand_url":    req.BrandUrl,
	} {
		if err := validateURL(u, field); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateClientRequest(req *opsv1.UpdateClientRequest) error {
	if err := validateRequired(req.Id, "id"); err != nil {
		return err
	}
	if err := validateRequired(req.Name, "name"); err != nil {
		return err
	}
	if err := validateMaxLength(req.Name, "name", v.config.MaxNameLength); err != nil {
		return err
	}
	for field, u := range map[string]string{
		"drive_url":    req.DriveUrl,
		"schedule_url": req.ScheduleUrl,
		"brand_url":    req.BrandUrl,
	} {
		if err := validateURL(u, field); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateCreateTemplateRequest(req *opsv1.CreateTemplateRequest) error {
	if err := validateRequired(req.Title, "title"); err != nil {
		return err
	}
	if err := validateMaxLength(req.Title, "title", v.config.MaxTitleLength); err != nil {
		return err
	}
	if req.ParentType == opsv1.ParentType_PARENT_TYPE_UNSPECIFIED {
		return status.Error(codes.InvalidArgument, "parent_type is required")
	}
	if req.Role == opsv1.TemplateRole_TEMPLATE_ROLE_UNSPECIFIED {
		return status.Error(codes.InvalidArgument, "role is required")
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateTemplateRequest(req *opsv1.UpdateTemplateRequest) error {
	if err := validateRequired(req.Id, "id"); err != nil {
		return err
	}
	if req.Title != nil {
		if err := validateRequired(*req.Title, "title"); err != nil {
			return err
		}
		if err := validateMaxLength(*req.Title, "title", v.config.MaxTitleLength); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateStartCycleRequest(req *opsv1.StartCycleRequest) error {
	if err := validateRequired(req.ClientId, "client_id"); err != nil {
		return err
	}
	return validateDate(req.Month, "month")
}

func (v *ValidationInterceptor) validateScheduleShootRequest(req *opsv1.ScheduleShootRequest) error {
	if err := validateRequired(req.ClientId, "client_id"); err != nil {
		return err
	}
	if err := validateDate(req.ShootDate, "shoot_date"); err != nil {
		return err
	}
	if req.ShootTime != nil {
		if err := validateTimeFormat(*req.ShootTime); err != nil {
			return err
		}
	}
	if req.CalendarLink != nil {
		if err := validateURL(*req.CalendarLink, "calendar_link"); err != nil {
			return err
		}
	}
	if req.Location != nil {
		if err := validateMaxLength(*req.Location, "location", v.config.MaxLocationLength); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateRescheduleShootRequest(req *opsv1.RescheduleShootRequest) error {
	if err := validateRequired(req.ShootId, "shoot_id"); err != nil {
		return err
	}
	return validateDate(req.ShootDate, "shoot_date")
}

func (v *ValidationInterceptor) validateAddContextEntryRequest(req *opsv1.AddContextEntryRequest) error {
	if err := validateRequired(req.ClientId, "client_id"); err != nil {
		return err
	}
	if err := validateRequired(req.Content, "content"); err != nil {
		return err
	}
	if err := validateMaxLength(req.Content, "content", v.config.MaxContentLength); err != nil {
		return err
	}
	if req.Type == opsv1.ContextType_CONTEXT_TYPE_UNSPECIFIED {
		return status.Error(codes.InvalidArgument, "type is required")
	}
	return nil
}

func (v *ValidationInterceptor) validateCompleteCheckinRequest(req *opsv1.CompleteCheckinRequest) error {
	if err := validateRequired(req.TaskId, "task_id"); err != nil {
		return err
	}
	if err := validateMaxLength(req.Transcript, "transcript", v.config.MaxContentLength); err != nil {
		return err
	}
	return validateMaxLength(req.Notes, "notes", v.config.MaxContentLength)
}

func (v *ValidationInterceptor) validateLoginRequest(req *opsv1.LoginRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validateRequired(req.Password, "password")
}

func (v *ValidationInterceptor) validateInviteUserRequest(req *opsv1.InviteUserRequest) error {
	return validateEmail(req.Email)
}

func (v *ValidationInterceptor) validateAcceptInviteRequest(req *opsv1.AcceptInviteRequest) error {
	if err := validateRequired(req.Token, "token"); err != nil {
		return err
	}
	if len(req.Password) < v.config.MinPasswordLength {
		return status.Errorf(codes.InvalidArgument, "password must be at least %d characters", v.config.MinPasswordLength)
	}
	return nil
}

// Shared field validators. These run before any store call and
// short-circuit with a user-facing message.

var timeFormatRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func validateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return nil
}

func validateMaxLength(value, field string, max int) error {
	if len(value) > max {
		return status.Errorf(codes.InvalidArgument, "%s must be less than %d characters", field, max)
	}
	return nil
}

// validateURL accepts empty values; optional URL fields are only checked
// for shape when present.
func validateURL(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return status.Errorf(codes.InvalidArgument, "%s: invalid URL format", field)
	}
	return nil
}

func validateTimeFormat(value string) error {
	if value == "" {
		return nil
	}
	if !timeFormatRegex.MatchString(value) {
		return status.Error(codes.InvalidArgument, "invalid time format (expected HH:MM)")
	}
	return nil
}

func validateDate(value, field string) error {
	if err := validateRequired(value, field); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return status.Errorf(codes.InvalidArgument, "%s: invalid date format (expected YYYY-MM-DD)", field)
	}
	return nil
}

func validateEmail(value string) error {
	if err := validateRequired(value, "email"); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return status.Error(codes.InvalidArgument, "invalid email format")
	}
	return nil
}
