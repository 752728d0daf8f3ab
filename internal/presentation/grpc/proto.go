package grpc

// proto.go defines the gRPC server interface for phtracker.vitals.v1.VitalsRiskService.
// Messages are plain Go structs carried by the JSON codec in codec.go; clients
// select it with the "json" content subtype.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "phtracker.vitals.v1.VitalsRiskService"

// VitalsRiskServiceServer is the server API for VitalsRiskService.
type VitalsRiskServiceServer interface {
	PredictRisk(context.Context, *PredictRiskRequest) (*RiskAssessmentResponse, error)
	AssessPatient(context.Context, *AssessPatientRequest) (*RiskAssessmentResponse, error)
	mustEmbedUnimplementedVitalsRiskServiceServer()
}

// UnimplementedVitalsRiskServiceServer provides forward-compatible default implementations.
type UnimplementedVitalsRiskServiceServer struct{}

func (UnimplementedVitalsRiskServiceServer) PredictRisk(context.Context, *PredictRiskRequest) (*RiskAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictRisk not implemented")
}
func (UnimplementedVitalsRiskServiceServer) AssessPatient(context.Context, *AssessPatientRequest) (*RiskAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessPatient not implemented")
}
func (UnimplementedVitalsRiskServiceServer) mustEmbedUnimplementedVitalsRiskServiceServer() {}

// RegisterVitalsRiskServiceServer registers the VitalsRiskServiceServer with the gRPC server.
func RegisterVitalsRiskServiceServer(s grpclib.ServiceRegistrar, srv VitalsRiskServiceServer) {
	s.RegisterService(&_VitalsRiskService_serviceDesc, srv)
}

var _VitalsRiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VitalsRiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PredictRisk", Handler: _VitalsRiskService_PredictRisk_Handler},
		{MethodName: "AssessPatient", Handler: _VitalsRiskService_AssessPatient_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "phtracker/vitals/v1/vitals.proto",
}

func _VitalsRiskService_PredictRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitalsRiskServiceServer).PredictRisk(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/PredictRisk"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitalsRiskServiceServer).PredictRisk(ctx, req.(*PredictRiskRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _VitalsRiskService_AssessPatient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessPatientRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitalsRiskServiceServer).AssessPatient(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/AssessPatient"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitalsRiskServiceServer).AssessPatient(ctx, req.(*AssessPatientRequest))
	}
	return interceptor(ctx, req, info, handler)
}
