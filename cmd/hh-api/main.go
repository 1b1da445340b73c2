package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	v1 "Go2HeavyHitter/api/gen/v1"
	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/query"
)

func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.ClickHouse.Enabled {
		log.Fatalf("ClickHouse is disabled in config. API server cannot start.")
	}

	querier, err := query.NewClickHouseQuerier(cfg.ClickHouse)
	if err != nil {
		log.Fatalf("Failed to create querier: %v", err)
	}

	svc := &queryService{querier: querier}

	// gRPC endpoint.
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, svc)
	go func() {
		lis, err := net.Listen("tcp", cfg.API.GRPCAddr)
		if err != nil {
			log.Fatalf("Could not listen on %s: %v", cfg.API.GRPCAddr, err)
		}
		log.Printf("gRPC server starting on %s", cfg.API.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC server failed: %v", err)
		}
	}()

	// HTTP endpoint.
	r := mux.NewRouter()
	r.HandleFunc("/healthz", svc.healthHandler).Methods("GET")
	r.HandleFunc("/api/v1/hitters", svc.hittersHandler).Methods("GET")
	r.HandleFunc("/api/v1/hosts", svc.hostsHandler).Methods("GET")

	server := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("API server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("API server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("API server exited.")
}

// queryService backs both the gRPC service and the HTTP handlers with the
// same querier.
type queryService struct {
	v1.UnimplementedQueryServiceServer
	querier query.Querier
}

func (s *queryService) HealthCheck(ctx context.Context, _ *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *queryService) GetHeavyHitters(ctx context.Context, req *v1.GetHeavyHittersRequest) (*v1.GetHeavyHittersResponse, error) {
	hitters, err := s.querier.HeavyHitters(ctx, req.RunId, time.Time{}, req.Limit)
	if err != nil {
		return nil, err
	}
	hosts, err := s.querier.TargetedHosts(ctx, req.RunId, time.Time{})
	if err != nil {
		return nil, err
	}
	return &v1.GetHeavyHittersResponse{Hitters: hitters, Hosts: hosts}, nil
}

func (s *queryService) healthHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.HealthCheck(r.Context(), &v1.HealthCheckRequest{})
	if err != nil {
		http.Error(w, fmt.Sprintf("health check failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

func (s *queryService) hittersHandler(w http.ResponseWriter, r *http.Request) {
	req := &v1.GetHeavyHittersRequest{
		RunId: r.URL.Query().Get("run_id"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid limit: %v", err), http.StatusBadRequest)
			return
		}
		req.Limit = uint32(limit)
	}

	resp, err := s.GetHeavyHitters(r.Context(), req)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query heavy hitters: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

func (s *queryService) hostsHandler(w http.ResponseWriter, r *http.Request) {
	hosts, err := s.querier.TargetedHosts(r.Context(), r.URL.Query().Get("run_id"), time.Time{})
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query hosts: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, &v1.GetHeavyHittersResponse{Hosts: hosts})
}

func writeProtoJSON(w http.ResponseWriter, m proto.Message) {
	jsonBytes, err := protojson.Marshal(m)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to marshal response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}
