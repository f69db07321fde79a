package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	testSecret     = "test-secret"
	testUserID     = "test-user"
	deleteMethod   = "/org.v1.OrgService/DeleteDepartment"
	readMethod     = "/org.v1.OrgService/GetDepartment"
	manageDepts    = "manage_departments"
	viewOwnProfile = "view_own_profile"
)

func testToken(t *testing.T, secret string, permissions []string, ttl time.Duration) string {
	t.Helper()
	token, err := GenerateToken(testUserID, "MANAGER", permissions, secret, ttl)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthInterceptor(t *testing.T) {
	tests := []struct {
		name        string
		fullMethod  string
		token       string
		wantError   bool
		expectedErr codes.Code
	}{
		{
			name:       "protected method valid token",
			fullMethod: deleteMethod,
			token:      testToken(t, testSecret, []string{manageDepts}, time.Hour),
		},
		{
			name:        "protected method missing permission",
			fullMethod:  deleteMethod,
			token:       testToken(t, testSecret, []string{viewOwnProfile}, time.Hour),
			wantError:   true,
			expectedErr: codes.PermissionDenied,
		},
		{
			name:        "protected method invalid token",
			fullMethod:  deleteMethod,
			token:       testToken(t, "wrong-secret", []string{manageDepts}, time.Hour),
			wantError:   true,
			expectedErr: codes.Unauthenticated,
		},
		{
			name:        "protected method expired token",
			fullMethod:  deleteMethod,
			token:       testToken(t, testSecret, []string{manageDepts}, -time.Hour),
			wantError:   true,
			expectedErr: codes.Unauthenticated,
		},
		{
			name:        "protected method missing metadata",
			fullMethod:  deleteMethod,
			wantError:   true,
			expectedErr: codes.Unauthenticated,
		},
		{
			name:       "unprotected method no token",
			fullMethod: readMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor := NewAuthInterceptor(testSecret, map[string]string{deleteMethod: manageDepts})
			unaryInterceptor := interceptor.Unary()

			ctx := context.Background()
			if tt.token != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", "Bearer "+tt.token))
			}

			// Mock handler that checks for the actor in context
			handler := func(ctx context.Context, _ interface{}) (interface{}, error) {
				if tt.fullMethod == deleteMethod {
					actor, ok := ActorFromContext(ctx)
					if !ok || actor.ID != testUserID || actor.Role != "MANAGER" {
						return nil, status.Error(codes.Unauthenticated, "actor not in context")
					}
				}
				return "response", nil
			}

			info := &grpc.UnaryServerInfo{FullMethod: tt.fullMethod}
			resp, err := unaryInterceptor(ctx, nil, info, handler)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if status.Code(err) != tt.expectedErr {
					t.Errorf("expected error code %v, got %v", tt.expectedErr, status.Code(err))
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if resp != "response" {
					t.Error("handler response mismatch")
				}
			}
		})
	}
}

func TestExtractTokenFromMetadata(t *testing.T) {
	tests := []struct {
		name        string
		metadata    metadata.MD
		wantToken   string
		wantErrCode codes.Code
	}{
		{
			name:        "valid authorization header",
			metadata:    metadata.Pairs("authorization", "Bearer valid-token"),
			wantToken:   "valid-token",
			wantErrCode: codes.OK,
		},
		{
			name:        "missing authorization header",
			metadata:    metadata.MD{},
			wantErrCode: codes.Unauthenticated,
		},
		{
			name:        "malformed authorization header",
			metadata:    metadata.Pairs("authorization", "InvalidPrefix valid-token"),
			wantErrCode: codes.Unauthenticated,
		},
		{
			name:        "empty bearer token",
			metadata:    metadata.Pairs("authorization", "Bearer "),
			wantErrCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := extractTokenFromMetadata(tt.metadata)

			if tt.wantErrCode != codes.OK {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if status.Code(err) != tt.wantErrCode {
					t.Errorf("expected error code %v, got %v", tt.wantErrCode, status.Code(err))
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	valid := testToken(t, testSecret, []string{manageDepts}, time.Hour)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": testUserID,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		tokenString string
		secret      string
		wantValid   bool
	}{
		{"valid token", valid, testSecret, true},
		{"invalid signature", valid, "wrong-secret", false},
		{"expired token", testToken(t, testSecret, nil, -time.Minute), testSecret, false},
		{"missing subject", noSubject, testSecret, false},
		{"unsigned token", noneSigned, testSecret, false},
		{"garbage", "not-a-token", testSecret, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := validateToken(tt.tokenString, tt.secret)
			if tt.wantValid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if claims.Subject != testUserID || !claims.Actor().Has(manageDepts) {
					t.Errorf("unexpected claims %+v", claims)
				}
				return
			}
			if err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestActorID(t *testing.T) {
	if got := ActorID(context.Background()); got != "" {
		t.Errorf("expected anonymous actor, got %q", got)
	}
	ctx := WithActor(context.Background(), Actor{ID: "u1"})
	if got := ActorID(ctx); got != "u1" {
		t.Errorf("expected u1, got %q", got)
	}
}
