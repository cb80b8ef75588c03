package submissions

import (
	"github.com/google/uuid"

	"sanad/internal/logging"
)

// Operation names one service call for interceptors and logs.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpRemove Operation = "remove"
)

// RequestContext carries operation metadata through the interceptor chain.
type RequestContext struct {
	Operation Operation
	RequestID string
	Payload   any
}

// Interceptor hooks into service calls. Nil hooks are skipped.
type Interceptor struct {
	OnRequest  func(ctx RequestContext)
	OnResponse func(ctx RequestContext, result any)
	OnError    func(ctx RequestContext, err error)
}

// LoggingInterceptor writes request-scoped store logs for every operation.
func LoggingInterceptor() Interceptor {
	return Interceptor{
		OnRequest: func(ctx RequestContext) {
			logging.WithRequestID(logging.CategoryStore, ctx.RequestID).
				Debug("submissions.%s start", ctx.Operation)
		},
		OnResponse: func(ctx RequestContext, _ any) {
			logging.WithRequestID(logging.CategoryStore, ctx.RequestID).
				Debug("submissions.%s ok", ctx.Operation)
		},
		OnError: func(ctx RequestContext, err error) {
			logging.WithRequestID(logging.CategoryStore, ctx.RequestID).
				Error("submissions.%s failed: %v", ctx.Operation, err)
		},
	}
}

func newRequestID() string {
	return uuid.NewString()
}
