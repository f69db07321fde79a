// Package auth provides a gRPC unary interceptor and an HTTP middleware that
// validate JWT tokens and enforce the permission each protected call requires.
package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Interceptor holds the JWT secret and the permission required per protected method.
type Interceptor struct {
	jwtSecret        string
	protectedMethods map[string]string
}

// NewAuthInterceptor creates an Interceptor. protected maps full gRPC method
// names to the permission they require; an empty permission only requires a
// valid token.
func NewAuthInterceptor(jwtSecret string, protected map[string]string) *Interceptor {
	return &Interceptor{
		jwtSecret:        jwtSecret,
		protectedMethods: protected,
	}
}

// Unary returns a gRPC unary interceptor for token validation on protected methods.
func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		permission, protected := i.protectedMethods[info.FullMethod]
		if !protected {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata missing")
		}

		tokenString, err := extractTokenFromMetadata(md)
		if err != nil {
			return nil, err
		}

		claims, err := validateToken(tokenString, i.jwtSecret)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		actor := claims.Actor()
		if permission != "" && !actor.Has(permission) {
			return nil, status.Errorf(codes.PermissionDenied, "permission %s required", permission)
		}

		return handler(WithActor(ctx, actor), req)
	}
}

// extractTokenFromMetadata retrieves a Bearer token from gRPC metadata.
func extractTokenFromMetadata(md metadata.MD) (string, error) {
	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization header missing")
	}

	headerValue := authHeaders[0]
	if !strings.HasPrefix(headerValue, "Bearer ") {
		return "", status.Error(codes.Unauthenticated, "invalid authorization format: missing Bearer prefix")
	}

	tokenString := strings.TrimPrefix(headerValue, "Bearer ")
	if tokenString == "" {
		return "", status.Error(codes.Unauthenticated, "invalid authorization format: empty token")
	}

	return tokenString, nil
}
