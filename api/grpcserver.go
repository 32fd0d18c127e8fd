package main

import (
	"context"
	"draftroom/pkg/logger"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Service name reported by the health server.
const healthServiceName = "draftroom.API"

// Start the grpc server exposing only the standard health service.
func startGRPCServer(addr string, log logger.Logger) (*grpc.Server, *health.Server, error) {
	list, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	grpcServer := grpc.NewServer()

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		log.Info(context.Background(), "running gRPC health server", logger.String("addr", addr))
		if err := grpcServer.Serve(list); err != nil {
			log.Error(context.Background(), "gRPC server stopped", logger.Err(err))
		}
	}()

	return grpcServer, healthServer, nil
}
