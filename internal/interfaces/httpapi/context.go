package httpapi

import "context"

type contextKey string

const clientIPContextKey contextKey = "client_ip"

func withClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey, ip)
}

func clientIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey).(string)
	return ip, ok && ip != ""
}
