package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/hisaab/internal/auth"
	"github.com/mmynk/hisaab/internal/ledger"
	"github.com/mmynk/hisaab/internal/middleware"
)

// toConnectError maps ledger error categories onto Connect codes.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, ledger.ErrInvalidParticipant):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, ledger.ErrInvalidRequest):
		code = connect.CodeInvalidArgument
	case errors.Is(err, ledger.ErrForbidden):
		code = connect.CodePermissionDenied
	case errors.Is(err, ledger.ErrStorage):
		code = connect.CodeUnavailable
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	}
	return connect.NewError(code, err)
}

// callerID returns the authenticated user set by the auth interceptor.
func callerID(ctx context.Context) (int64, error) {
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		return 0, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// logFailure logs a failed call together with its request id.
func logFailure(ctx context.Context, msg string, args ...any) {
	slog.ErrorContext(ctx, msg, append(args, "request_id", middleware.GetRequestID(ctx))...)
}
