package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction.
//
// The transaction is finished when the handler first writes its status:
// a status below 400 commits, anything else rolls back. A failed commit
// replaces the response with 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			tw := &txResponseWriter{ResponseWriter: w, tx: tx}

			defer func() {
				if rec := recover(); rec != nil {
					if !tw.done {
						_ = tx.Rollback()
					}
					panic(rec)
				}
			}()

			next.ServeHTTP(tw, r.WithContext(setTxToContext(r.Context(), tx)))

			if !tw.done {
				tw.WriteHeader(http.StatusOK)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	tx     *sqlx.Tx
	done   bool
	failed bool
}

func (w *txResponseWriter) WriteHeader(code int) {
	if w.done {
		return
	}
	w.done = true

	if code >= http.StatusBadRequest {
		if err := w.tx.Rollback(); err != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", err)
		}
		w.ResponseWriter.WriteHeader(code)
		return
	}

	if err := w.tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		w.failed = true
		writeError(w.ResponseWriter, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *txResponseWriter) Write(b []byte) (int, error) {
	if !w.done {
		w.WriteHeader(http.StatusOK)
	}
	if w.failed {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
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
