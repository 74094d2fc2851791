// Package grpc implements the gRPC transport for turntable.
//
// The Assistant service has a single unary Chat method. Requests and
// responses are google.protobuf.Struct values carrying the same JSON shape
// as the HTTP chat API, so no generated code is needed. The standard gRPC
// health service is registered alongside it.
package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nadzzz/turntable/internal/interpreter"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/session"
	"github.com/nadzzz/turntable/internal/spotify"
	"github.com/nadzzz/turntable/internal/transport"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "turntable.v1.Assistant"

// Transport implements transport.Transport over gRPC.
type Transport struct {
	port int

	mu     sync.Mutex
	server *grpc.Server
	closed bool
}

// New creates a new gRPC transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "grpc" }

// Listen starts the gRPC server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	slog.Info("grpc transport listening", "port", t.port)
	return t.Serve(ctx, lis, handler)
}

// Serve runs the server on lis until ctx is cancelled.
// A transport closed before Serve returns at once.
func (t *Transport) Serve(ctx context.Context, lis net.Listener, handler transport.Handler) error {
	srv := grpc.NewServer(grpc.UnaryInterceptor(bearerToken))
	registerAssistantServer(srv, &assistant{handler: handler})

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return lis.Close()
	}
	t.server = srv
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		slog.Info("grpc transport shutting down")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Close gracefully stops the gRPC server.
func (t *Transport) Close() error {
	t.mu.Lock()
	t.closed = true
	srv := t.server
	t.mu.Unlock()

	if srv != nil {
		srv.GracefulStop()
	}
	return nil
}

// bearerToken moves the authorization metadata into the request context.
// A missing header is allowed; the gateway then falls back to its own
// refresh token.
func bearerToken(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return next(ctx, req)
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return next(ctx, req)
	}
	scheme, token, ok := strings.Cut(values[0], " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, status.Error(codes.Unauthenticated, "invalid authorization metadata")
	}
	return next(spotify.WithToken(ctx, strings.TrimSpace(token)), req)
}

type assistantServer interface {
	Chat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type assistant struct {
	handler transport.Handler
}

func (a *assistant) Chat(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req message.ChatRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decoding request: %v", err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, status.Error(codes.InvalidArgument, interpreter.ErrEmptyMessage.Error())
	}

	resp, err := a.handler(ctx, &req)
	if err != nil {
		slog.Warn("grpc chat turn failed", "error", err)
		code := turnCode(err)
		if code == codes.Unavailable {
			// The provider's error body stays in the log.
			return nil, status.Error(code, interpreter.Apology)
		}
		return nil, status.Error(code, err.Error())
	}
	out, err := toStruct(resp)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding response: %v", err)
	}
	return out, nil
}

func turnCode(err error) codes.Code {
	switch {
	case errors.Is(err, interpreter.ErrEmptyMessage):
		return codes.InvalidArgument
	case errors.Is(err, session.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, interpreter.ErrModelUnavailable):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Internal
}

// fromStruct and toStruct go through JSON so the gRPC shape tracks the
// struct tags of the message package.
func fromStruct(in *structpb.Struct, dst any) error {
	raw, err := in.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// --- Manual service descriptor plumbing ---

func registerAssistantServer(s *grpc.Server, srv assistantServer) {
	s.RegisterService(&assistantServiceDesc, srv)
}

func assistantChatHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(assistantServer).Chat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Chat",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(assistantServer).Chat(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var assistantServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*assistantServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Chat",
			Handler:    assistantChatHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "turntable/v1/assistant.proto",
}
