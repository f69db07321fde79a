package handlers_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/gartstein/orgchart/internal/org/auth"
	"github.com/gartstein/orgchart/internal/org/controller"
	"github.com/gartstein/orgchart/internal/org/db"
	"github.com/gartstein/orgchart/internal/org/db/dbtest"
	"github.com/gartstein/orgchart/internal/org/events"
	"github.com/gartstein/orgchart/internal/org/handlers"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const (
	testSecret = "handlers-test-secret"
	testActor  = "admin-1"
)

// harness runs the real service behind both transports. The gateway reaches
// the service through the same gRPC connection as client, so HTTP calls pass
// the auth interceptor too.
type harness struct {
	repo    *db.Repository
	client  pb.OrgServiceClient
	gateway *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := zaptest.NewLogger(t)

	repo := dbtest.NewRepository(t, true)
	svc := controller.NewOrgService(repo, events.NewRecorder(repo, logger), logger)
	h := handlers.NewOrgHandler(svc, logger)

	interceptor := auth.NewAuthInterceptor(testSecret, handlers.ProtectedMethods())
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptor.Unary()))
	pb.RegisterOrgServiceServer(srv, h)

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	mux, err := handlers.NewGatewayMux(promhttp.Handler())
	require.NoError(t, err)
	require.NoError(t, pb.RegisterOrgServiceHandler(context.Background(), mux, conn))
	ts := httptest.NewServer(auth.HTTPMiddleware(mux, testSecret, handlers.ProtectedRoutes()))
	t.Cleanup(ts.Close)

	return &harness{
		repo:    repo,
		client:  pb.NewOrgServiceClient(conn),
		gateway: ts,
	}
}

// token signs a token for testActor carrying the given role's permissions.
func token(t *testing.T, roleName string) string {
	t.Helper()
	return tokenFor(t, testActor, roleName)
}

func tokenFor(t *testing.T, actorID, roleName string) string {
	t.Helper()
	role, ok := models.LookupDefaultRole(roleName)
	require.True(t, ok)
	tok, err := auth.GenerateToken(actorID, role.Name, role.Permissions, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func withToken(ctx context.Context, tok string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
}

func bearer(tok string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+tok)
	return h
}
