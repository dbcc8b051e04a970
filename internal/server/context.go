// SPDX-License-Identifier: EPL-2.0

package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

func withLogger(r *http.Request, log *zap.Logger) context.Context {
	return context.WithValue(r.Context(), ctxKey{}, log)
}

func loggerFrom(r *http.Request) *zap.Logger {
	if log, ok := r.Context().Value(ctxKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}
