// Package v1alpha1 exposes the planner over gRPC. Messages are
// google.protobuf.Struct documents; field names are snake_case.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "essence.api.v1alpha1.PlannerService"

// RPC method names
const (
	MethodRecommendPlans  = "RecommendPlans"
	MethodFindItems       = "FindItems"
	MethodGetLastSearch   = "GetLastSearch"
	MethodSimulatePlan    = "SimulatePlan"
	MethodListItems       = "ListItems"
	MethodGetOwnership    = "GetOwnership"
	MethodUpdateOwnership = "UpdateOwnership"
	MethodResetOwnership  = "ResetOwnership"
	MethodExportOwnership = "ExportOwnership"
	MethodImportOwnership = "ImportOwnership"
)

// FullMethod returns "/<service>/<method>"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PlannerServiceServer is the server API for the planner service
type PlannerServiceServer interface {
	RecommendPlans(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FindItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLastSearch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SimulatePlan(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetOwnership(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateOwnership(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetOwnership(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportOwnership(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportOwnership(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(PlannerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PlannerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(PlannerServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// PlannerServiceDesc describes the planner service for grpc.Server
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodRecommendPlans, PlannerServiceServer.RecommendPlans),
		unaryHandler(MethodFindItems, PlannerServiceServer.FindItems),
		unaryHandler(MethodGetLastSearch, PlannerServiceServer.GetLastSearch),
		unaryHandler(MethodSimulatePlan, PlannerServiceServer.SimulatePlan),
		unaryHandler(MethodListItems, PlannerServiceServer.ListItems),
		unaryHandler(MethodGetOwnership, PlannerServiceServer.GetOwnership),
		unaryHandler(MethodUpdateOwnership, PlannerServiceServer.UpdateOwnership),
		unaryHandler(MethodResetOwnership, PlannerServiceServer.ResetOwnership),
		unaryHandler(MethodExportOwnership, PlannerServiceServer.ExportOwnership),
		unaryHandler(MethodImportOwnership, PlannerServiceServer.ImportOwnership),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "essence/api/v1alpha1/planner.proto",
}

// RegisterPlannerServiceServer registers srv on s
func RegisterPlannerServiceServer(s grpc.ServiceRegistrar, srv PlannerServiceServer) {
	s.RegisterService(&PlannerServiceDesc, srv)
}

// Client calls the planner service over a connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes one planner method with a request document
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
