package handlers

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

func TestServer_RegisterHTTPGateway(t *testing.T) {
	logger := zaptest.NewLogger(t)
	s := NewServer(freePort(t), freePort(t), logger)

	err := s.RegisterHTTPGateway(
		context.Background(),
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		"secret",
	)
	require.NoError(t, err)

	assert.NotNil(t, s.httpServer.Handler, "expected httpServer.Handler to be set")
	assert.Equal(t, s.httpEndpoint, s.httpServer.Addr)
}

func TestServer_StartStop(t *testing.T) {
	logger := zaptest.NewLogger(t)
	grpcPort, httpPort := freePort(t), freePort(t)
	s := NewServer(grpcPort, httpPort, logger)

	handler := NewOrgHandler(&mockOrgController{t: t}, logger)
	s.RegisterGRPCHandler(handler)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.RegisterHTTPGateway(
		ctx,
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		"secret",
	))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(httpPort)) + "/v1/roles")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 50*time.Millisecond, "HTTP gateway never became ready")

	conn, err := grpc.NewClient(
		net.JoinHostPort("127.0.0.1", strconv.Itoa(grpcPort)),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	callCtx, callCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer callCancel()
	health, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	roles, err := pb.NewOrgServiceClient(conn).ListRoles(callCtx, &pb.ListRolesRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, roles.GetRoles())
	require.NoError(t, conn.Close())

	s.Stop()

	select {
	case err := <-errCh:
		require.NoError(t, err, "Server Start returned error")
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}

	lis, err := net.Listen("tcp", s.grpcEndpoint)
	require.NoError(t, err, "expected the gRPC endpoint to be free after shutdown")
	_ = lis.Close()
}
