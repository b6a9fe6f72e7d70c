package xslog

import (
	"log/slog"
	"time"

	"github.com/otterbagel/cardiolog/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func UserID(id string) slog.Attr {
	const userIDKey = "user_id"
	return slog.String(userIDKey, id)
}

func Endpoint(endpoint string) slog.Attr {
	const endpointKey = "endpoint"
	return slog.String(endpointKey, endpoint)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Epoch(epoch uint64) slog.Attr {
	const epochKey = "epoch"
	return slog.Uint64(epochKey, epoch)
}

func Connected(connected bool) slog.Attr {
	const connectedKey = "connected"
	return slog.Bool(connectedKey, connected)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}
