// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: api/proto/ops/v1/task.proto

package opsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	TaskService_ListTasks_FullMethodName          = "/ops.v1.TaskService/ListTasks"
	TaskService_ListClientTasks_FullMethodName    = "/ops.v1.TaskService/ListClientTasks"
	TaskService_ListPendingTasks_FullMethodName   = "/ops.v1.TaskService/ListPendingTasks"
	TaskService_SetTaskStatus_FullMethodName      = "/ops.v1.TaskService/SetTaskStatus"
	TaskService_UpdateTaskAssignee_FullMethodName = "/ops.v1.TaskService/UpdateTaskAssignee"
	TaskService_CompleteCheckin_FullMethodName    = "/ops.v1.TaskService/CompleteCheckin"
)

// TaskServiceClient is the client API for TaskService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TaskServiceClient interface {
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	ListClientTasks(ctx context.Context, in *ListClientTasksRequest, opts ...grpc.CallOption) (*ListClientTasksResponse, error)
	ListPendingTasks(ctx context.Context, in *ListPendingTasksRequest, opts ...grpc.CallOption) (*ListPendingTasksResponse, error)
	SetTaskStatus(ctx context.Context, in *SetTaskStatusRequest, opts ...grpc.CallOption) (*SetTaskStatusResponse, error)
	UpdateTaskAssignee(ctx context.Context, in *UpdateTaskAssigneeRequest, opts ...grpc.CallOption) (*UpdateTaskAssigneeResponse, error)
	CompleteCheckin(ctx context.Context, in *CompleteCheckinRequest, opts ...grpc.CallOption) (*CompleteCheckinResponse, error)
}

type taskServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskServiceClient(cc grpc.ClientConnInterface) TaskServiceClient {
	return &taskServiceClient{cc}
}

func (c *taskServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	out := new(ListTasksResponse)
	err := c.cc.Invoke(ctx, TaskService_ListTasks_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) ListClientTasks(ctx context.Context, in *ListClientTasksRequest, opts ...grpc.CallOption) (*ListClientTasksResponse, error) {
	out := new(ListClientTasksResponse)
	err := c.cc.Invoke(ctx, TaskService_ListClientTasks_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) ListPendingTasks(ctx context.Context, in *ListPendingTasksRequest, opts ...grpc.CallOption) (*ListPendingTasksResponse, error) {
	out := new(ListPendingTasksResponse)
	err := c.cc.Invoke(ctx, TaskService_ListPendingTasks_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) SetTaskStatus(ctx context.Context, in *SetTaskStatusRequest, opts ...grpc.CallOption) (*SetTaskStatusResponse, error) {
	out := new(SetTaskStatusResponse)
	err := c.cc.Invoke(ctx, TaskService_SetTaskStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) UpdateTaskAssignee(ctx context.Context, in *UpdateTaskAssigneeRequest, opts ...grpc.CallOption) (*UpdateTaskAssigneeResponse, error) {
	out := new(UpdateTaskAssigneeResponse)
	err := c.cc.Invoke(ctx, TaskService_UpdateTaskAssignee_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) CompleteCheckin(ctx context.Context, in *CompleteCheckinRequest, opts ...grpc.CallOption) (*CompleteCheckinResponse, error) {
	out := new(CompleteCheckinResponse)
	err := c.cc.Invoke(ctx, TaskService_CompleteCheckin_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TaskServiceServer is the server API for TaskService service.
// All implementations must embed UnimplementedTaskServiceServer
// for forward compatibility
type TaskServiceServer interface {
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	ListClientTasks(context.Context, *ListClientTasksRequest) (*ListClientTasksResponse, error)
	ListPendingTasks(context.Context, *ListPendingTasksRequest) (*ListPendingTasksResponse, error)
	SetTaskStatus(context.Context, *SetTaskStatusRequest) (*SetTaskStatusResponse, error)
	UpdateTaskAssignee(context.Context, *UpdateTaskAssigneeRequest) (*UpdateTaskAssigneeResponse, error)
	CompleteCheckin(context.Context, *CompleteCheckinRequest) (*CompleteCheckinResponse, error)
	mustEmbedUnimplementedTaskServiceServer()
}

// UnimplementedTaskServiceServer must be embedded to have forward compatible implementations.
type UnimplementedTaskServiceServer struct {
}

func (UnimplementedTaskServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTasks not implemented")
}
func (UnimplementedTaskServiceServer) ListClientTasks(context.Context, *ListClientTasksRequest) (*ListClientTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientTasks not implemented")
}
func (UnimplementedTaskServiceServer) ListPendingTasks(context.Context, *ListPendingTasksRequest) (*ListPendingTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPendingTasks not implemented")
}
func (UnimplementedTaskServiceServer) SetTaskStatus(context.Context, *SetTaskStatusRequest) (*SetTaskStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetTaskStatus not implemented")
}
func (UnimplementedTaskServiceServer) UpdateTaskAssignee(context.Context, *UpdateTaskAssigneeRequest) (*UpdateTaskAssigneeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTaskAssignee not implemented")
}
func (UnimplementedTaskServiceServer) CompleteCheckin(context.Context, *CompleteCheckinRequest) (*CompleteCheckinResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteCheckin not implemented")
}
func (UnimplementedTaskServiceServer) mustEmbedUnimplementedTaskServiceServer() {}

// UnsafeTaskServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TaskServiceServer will
// result in compilation errors.
type UnsafeTaskServiceServer interface {
	mustEmbedUnimplementedTaskServiceServer()
}

func RegisterTaskServiceServer(s grpc.ServiceRegistrar, srv TaskServiceServer) {
	s.RegisterService(&TaskService_ServiceDesc, srv)
}

func _TaskService_ListTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).ListTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_ListTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).ListTasks(ctx, req.(*ListTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskService_ListClientTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).ListClientTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_ListClientTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).ListClientTasks(ctx, req.(*ListClientTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskService_ListPendingTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPendingTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).ListPendingTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_ListPendingTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).ListPendingTasks(ctx, req.(*ListPendingTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskService_SetTaskStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTaskStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).SetTaskStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_SetTaskStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).SetTaskStatus(ctx, req.(*SetTaskStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskService_UpdateTaskAssignee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTaskAssigneeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).UpdateTaskAssignee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_UpdateTaskAssignee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).UpdateTaskAssignee(ctx, req.(*UpdateTaskAssigneeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaskService_CompleteCheckin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteCheckinRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaskServiceServer).CompleteCheckin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaskService_CompleteCheckin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaskServiceServer).CompleteCheckin(ctx, req.(*CompleteCheckinRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TaskService_ServiceDesc is the grpc.ServiceDesc for TaskService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TaskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ops.v1.TaskService",
	HandlerType: (*TaskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTasks",
			Handler:    _TaskService_ListTasks_Handler,
		},
		{
			MethodName: "ListClientTasks",
			Handler:    _TaskService_ListClientTasks_Handler,
		},
		{
			MethodName: "ListPendingTasks",
			Handler:    _TaskService_ListPendingTasks_Handler,
		},
		{
			MethodName: "SetTaskStatus",
			Handler:    _TaskService_SetTaskStatus_Handler,
		},
		{
			MethodName: "UpdateTaskAssignee",
			Handler:    _TaskService_UpdateTaskAssignee_Handler,
		},
		{
			MethodName: "CompleteCheckin",
			Handler:    _TaskService_CompleteCheckin_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ops/v1/task.proto",
}
