// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/ops/v1/context.proto

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
	ContextService_ListClientContext_FullMethodName  = "/ops.v1.ContextService/ListClientContext"
	ContextService_AddContextEntry_FullMethodName    = "/ops.v1.ContextService/AddContextEntry"
	ContextService_DeleteContextEntry_FullMethodName = "/ops.v1.ContextService/DeleteContextEntry"
)

// ContextServiceClient is the client API for ContextService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ContextServiceClient interface {
	ListClientContext(ctx context.Context, in *ListClientContextRequest, opts ...grpc.CallOption) (*ListClientContextResponse, error)
	AddContextEntry(ctx context.Context, in *AddContextEntryRequest, opts ...grpc.CallOption) (*AddContextEntryResponse, error)
	DeleteContextEntry(ctx context.Context, in *DeleteContextEntryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type contextServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContextServiceClient(cc grpc.ClientConnInterface) ContextServiceClient {
	return &contextServiceClient{cc}
}

func (c *contextServiceClient) ListClientContext(ctx context.Context, in *ListClientContextRequest, opts ...grpc.CallOption) (*ListClientContextResponse, error) {
	out := new(ListClientContextResponse)
	err := c.cc.Invoke(ctx, ContextService_ListClientContext_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contextServiceClient) AddContextEntry(ctx context.Context, in *AddContextEntryRequest, opts ...grpc.CallOption) (*AddContextEntryResponse, error) {
	out := new(AddContextEntryResponse)
	err := c.cc.Invoke(ctx, ContextService_AddContextEntry_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contextServiceClient) DeleteContextEntry(ctx context.Context, in *DeleteContextEntryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, ContextService_DeleteContextEntry_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContextServiceServer is the server API for ContextService service.
// All implementations must embed UnimplementedContextServiceServer
// for forward compatibility
type ContextServiceServer interface {
	ListClientContext(context.Context, *ListClientContextRequest) (*ListClientContextResponse, error)
	AddContextEntry(context.Context, *AddContextEntryRequest) (*AddContextEntryResponse, error)
	DeleteContextEntry(context.Context, *DeleteContextEntryRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedContextServiceServer()
}

// UnimplementedContextServiceServer must be embedded to have forward compatible implementations.
type UnimplementedContextServiceServer struct {
}

func (UnimplementedContextServiceServer) ListClientContext(context.Context, *ListClientContextRequest) (*ListClientContextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientContext not implemented")
}
func (UnimplementedContextServiceServer) AddContextEntry(context.Context, *AddContextEntryRequest) (*AddContextEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddContextEntry not implemented")
}
func (UnimplementedContextServiceServer) DeleteContextEntry(context.Context, *DeleteContextEntryRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteContextEntry not implemented")
}
func (UnimplementedContextServiceServer) mustEmbedUnimplementedContextServiceServer() {}

// UnsafeContextServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContextServiceServer will
// result in compilation errors.
type UnsafeContextServiceServer interface {
	mustEmbedUnimplementedContextServiceServer()
}

func RegisterContextServiceServer(s grpc.ServiceRegistrar, srv ContextServiceServer) {
	s.RegisterService(&ContextService_ServiceDesc, srv)
}

func _ContextService_ListClientContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextServiceServer).ListClientContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContextService_ListClientContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContextServiceServer).ListClientContext(ctx, req.(*ListClientContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContextService_AddContextEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddContextEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextServiceServer).AddContextEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContextService_AddContextEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContextServiceServer).AddContextEntry(ctx, req.(*AddContextEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContextService_DeleteContextEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteContextEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextServiceServer).DeleteContextEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContextService_DeleteContextEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContextServiceServer).DeleteContextEntry(ctx, req.(*DeleteContextEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContextService_ServiceDesc is the grpc.ServiceDesc for ContextService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContextService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.ContextService",
	HandlerType: (*ContextServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListClientContext",
			Handler:    _ContextService_ListClientContext_Handler,
		},
		{
			MethodName: "AddContextEntry",
			Handler:    _ContextService_AddContextEntry_Handler,
		},
		{
			MethodName: "DeleteContextEntry",
			Handler:    _ContextService_DeleteContextEntry_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ops/v1/context.proto",
}
