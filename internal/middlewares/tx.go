package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
)

// TxMiddleware runs each request in one database transaction.
// The response is held back until the outcome is known: a status below 400 commits,
// anything else rolls back, and a failed commit turns into a 500.
// Side effects registered with database.OnCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := GetRequestID(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", reqID, "error", err)
				writeError(w, http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			ctx, afterCommit := database.WithAfterCommit(setTxToContext(r.Context(), tx))
			r = r.WithContext(ctx)

			bw := &bufferedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r)

			if bw.statusCode >= http.StatusBadRequest {
				afterCommit.Discard()
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "request_id", reqID, "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				afterCommit.Discard()
				logger.Log.Errorw("failed to commit transaction", "request_id", reqID, "error", err)
				writeError(w, http.StatusInternalServerError)
				return
			}
			afterCommit.Run()
			bw.flush()
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// bufferedResponseWriter keeps status and body until flush. Headers go straight
// to the wrapped writer since nothing is sent before WriteHeader.
type bufferedResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	if _, err := bw.ResponseWriter.Write(bw.body.Bytes()); err != nil {
		logger.Log.Warnw("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + http.StatusText(status) + `"}`))
}
