// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/ops/v1/shoot.proto

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
	ShootService_ListShoots_FullMethodName         = "/ops.v1.ShootService/ListShoots"
	ShootService_ListUpcomingShoots_FullMethodName = "/ops.v1.ShootService/ListUpcomingShoots"
	ShootService_ScheduleShoot_FullMethodName      = "/ops.v1.ShootService/ScheduleShoot"
	ShootService_RescheduleShoot_FullMethodName    = "/ops.v1.ShootService/RescheduleShoot"
	ShootService_UpdateShootStatus_FullMethodName  = "/ops.v1.ShootService/UpdateShootStatus"
)

// ShootServiceClient is the client API for ShootService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ShootServiceClient interface {
	ListShoots(ctx context.Context, in *ListShootsRequest, opts ...grpc.CallOption) (*ListShootsResponse, error)
	ListUpcomingShoots(ctx context.Context, in *ListUpcomingShootsRequest, opts ...grpc.CallOption) (*ListUpcomingShootsResponse, error)
	ScheduleShoot(ctx context.Context, in *ScheduleShootRequest, opts ...grpc.CallOption) (*ScheduleShootResponse, error)
	RescheduleShoot(ctx context.Context, in *RescheduleShootRequest, opts ...grpc.CallOption) (*RescheduleShootResponse, error)
	UpdateShootStatus(ctx context.Context, in *UpdateShootStatusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type shootServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShootServiceClient(cc grpc.ClientConnInterface) ShootServiceClient {
	return &shootServiceClient{cc}
}

func (c *shootServiceClient) ListShoots(ctx context.Context, in *ListShootsRequest, opts ...grpc.CallOption) (*ListShootsResponse, error) {
	out := new(ListShootsResponse)
	err := c.cc.Invoke(ctx, ShootService_ListShoots_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shootServiceClient) ListUpcomingShoots(ctx context.Context, in *ListUpcomingShootsRequest, opts ...grpc.CallOption) (*ListUpcomingShootsResponse, error) {
	out := new(ListUpcomingShootsResponse)
	err := c.cc.Invoke(ctx, ShootService_ListUpcomingShoots_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shootServiceClient) ScheduleShoot(ctx context.Context, in *ScheduleShootRequest, opts ...grpc.CallOption) (*ScheduleShootResponse, error) {
	out := new(ScheduleShootResponse)
	err := c.cc.Invoke(ctx, ShootService_ScheduleShoot_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shootServiceClient) RescheduleShoot(ctx context.Context, in *RescheduleShootRequest, opts ...grpc.CallOption) (*RescheduleShootResponse, error) {
	out := new(RescheduleShootResponse)
	err := c.cc.Invoke(ctx, ShootService_RescheduleShoot_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shootServiceClient) UpdateShootStatus(ctx context.Context, in *UpdateShootStatusRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, ShootService_UpdateShootStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShootServiceServer is the server API for ShootService service.
// All implementations must embed UnimplementedShootServiceServer
// for forward compatibility
type ShootServiceServer interface {
	ListShoots(context.Context, *ListShootsRequest) (*ListShootsResponse, error)
	ListUpcomingShoots(context.Context, *ListUpcomingShootsRequest) (*ListUpcomingShootsResponse, error)
	ScheduleShoot(context.Context, *ScheduleShootRequest) (*ScheduleShootResponse, error)
	RescheduleShoot(context.Context, *RescheduleShootRequest) (*RescheduleShootResponse, error)
	UpdateShootStatus(context.Context, *UpdateShootStatusRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedShootServiceServer()
}

// UnimplementedShootServiceServer must be embedded to have forward compatible implementations.
type UnimplementedShootServiceServer struct {
}

func (UnimplementedShootServiceServer) ListShoots(context.Context, *ListShootsRequest) (*ListShootsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListShoots not implemented")
}
func (UnimplementedShootServiceServer) ListUpcomingShoots(context.Context, *ListUpcomingShootsRequest) (*ListUpcomingShootsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUpcomingShoots not implemented")
}
func (UnimplementedShootServiceServer) ScheduleShoot(context.Context, *ScheduleShootRequest) (*ScheduleShootResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScheduleShoot not implemented")
}
func (UnimplementedShootServiceServer) RescheduleShoot(context.Context, *RescheduleShootRequest) (*RescheduleShootResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RescheduleShoot not implemented")
}
func (UnimplementedShootServiceServer) UpdateShootStatus(context.Context, *UpdateShootStatusRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateShootStatus not implemented")
}
func (UnimplementedShootServiceServer) mustEmbedUnimplementedShootServiceServer() {}

// UnsafeShootServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShootServiceServer will
// result in compilation errors.
type UnsafeShootServiceServer interface {
	mustEmbedUnimplementedShootServiceServer()
}

func RegisterShootServiceServer(s grpc.ServiceRegistrar, srv ShootServiceServer) {
	s.RegisterService(&ShootService_ServiceDesc, srv)
}

func _ShootService_ListShoots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListShootsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShootServiceServer).ListShoots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShootService_ListShoots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShootServiceServer).ListShoots(ctx, req.(*ListShootsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShootService_ListUpcomingShoots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUpcomingShootsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShootServiceServer).ListUpcomingShoots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShootService_ListUpcomingShoots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShootServiceServer).ListUpcomingShoots(ctx, req.(*ListUpcomingShootsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShootService_ScheduleShoot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleShootRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShootServiceServer).ScheduleShoot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShootService_ScheduleShoot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShootServiceServer).ScheduleShoot(ctx, req.(*ScheduleShootRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShootService_RescheduleShoot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RescheduleShootRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShootServiceServer).RescheduleShoot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShootService_RescheduleShoot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShootServiceServer).RescheduleShoot(ctx, req.(*RescheduleShootRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShootService_UpdateShootStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateShootStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShootServiceServer).UpdateShootStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShootService_UpdateShootStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShootServiceServer).UpdateShootStatus(ctx, req.(*UpdateShootStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShootService_ServiceDesc is the grpc.ServiceDesc for ShootService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShootService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.ShootService",
	HandlerType: (*ShootServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListShoots",
			Handler:    _ShootService_ListShoots_Handler,
		},
		{
			MethodName: "ListUpcomingShoots",
			Handler:    _ShootService_ListUpcomingShoots_Handler,
		},
		{
			MethodName: "ScheduleShoot",
			Handler:    _ShootService_ScheduleShoot_Handler,
		},
		{
			MethodName: "RescheduleShoot",
			Handler:    _ShootService_RescheduleShoot_Handler,
		},
		{
			MethodName: "UpdateShootStatus",
			Handler:    _ShootService_UpdateShootStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ops/v1/shoot.proto",
}
