// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/ops/v1/cycle.proto

package opsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	CycleService_ListCycles_FullMethodName        = "/ops.v1.CycleService/ListCycles"
	CycleService_GetCurrentCycle_FullMethodName   = "/ops.v1.CycleService/GetCurrentCycle"
	CycleService_StartCycle_FullMethodName        = "/ops.v1.CycleService/StartCycle"
	CycleService_UpdateCycleStatus_FullMethodName = "/ops.v1.CycleService/UpdateCycleStatus"
)

// CycleServiceClient is the client API for CycleService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CycleServiceClient interface {
	ListCycles(ctx context.Context, in *ListCyclesRequest, opts ...grpc.CallOption) (*ListCyclesResponse, error)
	GetCurrentCycle(ctx context.Context, in *GetCurrentCycleRequest, opts ...grpc.CallOption) (*GetCurrentCycleResponse, error)
	StartCycle(ctx context.Context, in *StartCycleRequest, opts ...grpc.CallOption) (*StartCycleResponse, error)
	UpdateCycleStatus(ctx context.Context, in *UpdateCycleStatusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type cycleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCycleServiceClient(cc grpc.ClientConnInterface) CycleServiceClient {
	return &cycleServiceClient{cc}
}

func (c *cycleServiceClient) ListCycles(ctx context.Context, in *ListCyclesRequest, opts ...grpc.CallOption) (*ListCyclesResponse, error) {
	out := new(ListCyclesResponse)
	err := c.cc.Invoke(ctx, CycleService_ListCycles_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cycleServiceClient) GetCurrentCycle(ctx context.Context, in *GetCurrentCycleRequest, opts ...grpc.CallOption) (*GetCurrentCycleResponse, error) {
	out := new(GetCurrentCycleResponse)
	err := c.cc.Invoke(ctx, CycleService_GetCurrentCycle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cycleServiceClient) StartCycle(ctx context.Context, in *StartCycleRequest, opts ...grpc.CallOption) (*StartCycleResponse, error) {
	out := new(StartCycleResponse)
	err := c.cc.Invoke(ctx, CycleService_StartCycle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cycleServiceClient) UpdateCycleStatus(ctx context.Context, in *UpdateCycleStatusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, CycleService_UpdateCycleStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CycleServiceServer is the server API for CycleService service.
// All implementations must embed UnimplementedCycleServiceServer
// for forward compatibility
type CycleServiceServer interface {
	ListCycles(context.Context, *ListCyclesRequest) (*ListCyclesResponse, error)
	GetCurrentCycle(context.Context, *GetCurrentCycleRequest) (*GetCurrentCycleResponse, error)
	StartCycle(context.Context, *StartCycleRequest) (*StartCycleResponse, error)
	UpdateCycleStatus(context.Context, *UpdateCycleStatusRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedCycleServiceServer()
}

// UnimplementedCycleServiceServer must be embedded to have forward compatible implementations.
type UnimplementedCycleServiceServer struct {
}

func (UnimplementedCycleServiceServer) ListCycles(context.Context, *ListCyclesRequest) (*ListCyclesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCycles not implemented")
}
func (UnimplementedCycleServiceServer) GetCurrentCycle(context.Context, *GetCurrentCycleRequest) (*GetCurrentCycleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurrentCycle not implemented")
}
func (UnimplementedCycleServiceServer) StartCycle(context.Context, *StartCycleRequest) (*StartCycleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartCycle not implemented")
}
func (UnimplementedCycleServiceServer) UpdateCycleStatus(context.Context, *UpdateCycleStatusRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateCycleStatus not implemented")
}
func (UnimplementedCycleServiceServer) mustEmbedUnimplementedCycleServiceServer() {}

// UnsafeCycleServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CycleServiceServer will
// result in compilation errors.
type UnsafeCycleServiceServer interface {
	mustEmbedUnimplementedCycleServiceServer()
}

func RegisterCycleServiceServer(s grpc.ServiceRegistrar, srv CycleServiceServer) {
	s.RegisterService(&CycleService_ServiceDesc, srv)
}

func _CycleService_ListCycles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCyclesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CycleServiceServer).ListCycles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CycleService_ListCycles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CycleServiceServer).ListCycles(ctx, req.(*ListCyclesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CycleService_GetCurrentCycle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentCycleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CycleServiceServer).GetCurrentCycle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CycleService_GetCurrentCycle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CycleServiceServer).GetCurrentCycle(ctx, req.(*GetCurrentCycleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CycleService_StartCycle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartCycleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CycleServiceServer).StartCycle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CycleService_StartCycle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CycleServiceServer).StartCycle(ctx, req.(*StartCycleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CycleService_UpdateCycleStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCycleStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CycleServiceServer).UpdateCycleStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CycleService_UpdateCycleStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CycleServiceServer).UpdateCycleStatus(ctx, req.(*UpdateCycleStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CycleService_ServiceDesc is the grpc.ServiceDesc for CycleService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CycleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.CycleService",
	HandlerType: (*CycleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCycles",
			Handler:    _CycleService_ListCycles_Handler,
		},
		{
			MethodName: "GetCurrentCycle",
			Handler:    _CycleService_GetCurrentCycle_Handler,
		},
		{
			MethodName: "StartCycle",
			Handler:    _CycleService_StartCycle_Handler,
		},
		{
			MethodName: "UpdateCycleStatus",
			Handler:    _CycleService_UpdateCycleStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ops/v1/cycle.proto",
}
