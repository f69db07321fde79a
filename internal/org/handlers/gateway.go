package handlers

import (
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/protobuf/encoding/protojson"
)

// NewGatewayMux returns the grpc-gateway ServeMux the generated OrgService
// handlers are registered on. Responses keep zero-valued fields so clients see
// counts of 0 and flags of false. When metrics is non-nil it is served on
// GET /metrics.
func NewGatewayMux(metrics http.Handler) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{
				EmitUnpopulated: true,
			},
			UnmarshalOptions: protojson.UnmarshalOptions{
				DiscardUnknown: true,
			},
		}),
	)

	if metrics != nil {
		err := mux.HandlePath(http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			metrics.ServeHTTP(w, r)
		})
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return mux, nil
}
