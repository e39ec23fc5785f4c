// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/ops/v1/assignment.proto

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
	AssignmentService_ListClientAssignments_FullMethodName = "/ops.v1.AssignmentService/ListClientAssignments"
	AssignmentService_SetClientAssignment_FullMethodName   = "/ops.v1.AssignmentService/SetClientAssignment"
	AssignmentService_ClearClientAssignment_FullMethodName = "/ops.v1.AssignmentService/ClearClientAssignment"
	AssignmentService_ResolveAssignee_FullMethodName       = "/ops.v1.AssignmentService/ResolveAssignee"
)

// AssignmentServiceClient is the client API for AssignmentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AssignmentServiceClient interface {
	ListClientAssignments(ctx context.Context, in *ListClientAssignmentsRequest, opts ...grpc.CallOption) (*ListClientAssignmentsResponse, error)
	SetClientAssignment(ctx context.Context, in *SetClientAssignmentRequest, opts ...grpc.CallOption) (*SetClientAssignmentResponse, error)
	ClearClientAssignment(ctx context.Context, in *ClearClientAssignmentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ResolveAssignee(ctx context.Context, in *ResolveAssigneeRequest, opts ...grpc.CallOption) (*ResolveAssigneeResponse, error)
}

type assignmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAssignmentServiceClient(cc grpc.ClientConnInterface) AssignmentServiceClient {
	return &assignmentServiceClient{cc}
}

func (c *assignmentServiceClient) ListClientAssignments(ctx context.Context, in *ListClientAssignmentsRequest, opts ...grpc.CallOption) (*ListClientAssignmentsResponse, error) {
	out := new(ListClientAssignmentsResponse)
	err := c.cc.Invoke(ctx, AssignmentService_ListClientAssignments_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) SetClientAssignment(ctx context.Context, in *SetClientAssignmentRequest, opts ...grpc.CallOption) (*SetClientAssignmentResponse, error) {
	out := new(SetClientAssignmentResponse)
	err := c.cc.Invoke(ctx, AssignmentService_SetClientAssignment_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) ClearClientAssignment(ctx context.Context, in *ClearClientAssignmentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, AssignmentService_ClearClientAssignment_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) ResolveAssignee(ctx context.Context, in *ResolveAssigneeRequest, opts ...grpc.CallOption) (*ResolveAssigneeResponse, error) {
	out := new(ResolveAssigneeResponse)
	err := c.cc.Invoke(ctx, AssignmentService_ResolveAssignee_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignmentServiceServer is the server API for AssignmentService service.
// All implementations must embed UnimplementedAssignmentServiceServer
// for forward compatibility
type AssignmentServiceServer interface {
	ListClientAssignments(context.Context, *ListClientAssignmentsRequest) (*ListClientAssignmentsResponse, error)
	SetClientAssignment(context.Context, *SetClientAssignmentRequest) (*SetClientAssignmentResponse, error)
	ClearClientAssignment(context.Context, *ClearClientAssignmentRequest) (*emptypb.Empty, error)
	ResolveAssignee(context.Context, *ResolveAssigneeRequest) (*ResolveAssigneeResponse, error)
	mustEmbedUnimplementedAssignmentServiceServer()
}

// UnimplementedAssignmentServiceServer must be embedded to have forward compatible implementations.
type UnimplementedAssignmentServiceServer struct {
}

func (UnimplementedAssignmentServiceServer) ListClientAssignments(context.Context, *ListClientAssignmentsRequest) (*ListClientAssignmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientAssignments not implemented")
}
func (UnimplementedAssignmentServiceServer) SetClientAssignment(context.Context, *SetClientAssignmentRequest) (*SetClientAssignmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetClientAssignment not implemented")
}
func (UnimplementedAssignmentServiceServer) ClearClientAssignment(context.Context, *ClearClientAssignmentRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearClientAssignment not implemented")
}
func (UnimplementedAssignmentServiceServer) ResolveAssignee(context.Context, *ResolveAssigneeRequest) (*ResolveAssigneeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveAssignee not implemented")
}
func (UnimplementedAssignmentServiceServer) mustEmbedUnimplementedAssignmentServiceServer() {}

// UnsafeAssignmentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AssignmentServiceServer will
// result in compilation errors.
type UnsafeAssignmentServiceServer interface {
	mustEmbedUnimplementedAssignmentServiceServer()
}

func RegisterAssignmentServiceServer(s grpc.ServiceRegistrar, srv AssignmentServiceServer) {
	s.RegisterService(&AssignmentService_ServiceDesc, srv)
}

func _AssignmentService_ListClientAssignments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ListClientAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_ListClientAssignments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ListClientAssignments(ctx, req.(*ListClientAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignmentService_SetClientAssignment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetClientAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).SetClientAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_SetClientAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).SetClientAssignment(ctx, req.(*SetClientAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignmentService_ClearClientAssignment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearClientAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ClearClientAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_ClearClientAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ClearClientAssignment(ctx, req.(*ClearClientAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignmentService_ResolveAssignee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveAssigneeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ResolveAssignee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignmentService_ResolveAssignee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ResolveAssignee(ctx, req.(*ResolveAssigneeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AssignmentService_ServiceDesc is the grpc.ServiceDesc for AssignmentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AssignmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.AssignmentService",
	HandlerType: (*AssignmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListClientAssignments",
			Handler:    _AssignmentService_ListClientAssignments_Handler,
		},
		{
			MethodName: "SetClientAssignment",
			Handler:    _AssignmentService_SetClientAssignment_Handler,
		},
		{
			MethodName: "ClearClientAssignment",
			Handler:    _AssignmentService_ClearClientAssignment_Handler,
		},
		{
			MethodName: "ResolveAssignee",
			Handler:    _AssignmentService_ResolveAssignee_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ops/v1/assignment.proto",
}
