package goTrust

import "context"

type clientIPContextKey struct{}
type sessionIDContextKey struct{}

// WithClientIP attaches the caller's IP address to ctx. The Engine includes
// it in audit events so scoring decisions can be correlated with transport
// metadata the caller already holds.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// WithSessionID attaches the caller's session identifier to ctx for audit
// correlation. The engine never validates or manages the session itself.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey{}, sessionID)
}

func clientIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}

func sessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	sessionID, _ := ctx.Value(sessionIDContextKey{}).(string)
	return sessionID
}
