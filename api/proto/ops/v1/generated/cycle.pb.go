// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: api/proto/ops/v1/cycle.proto

package opsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Cycle struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClientId  string                 `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Month     string                 `protobuf:"bytes,3,opt,name=month,proto3" json:"month,omitempty"` // "YYYY-MM-DD", always the first of the month
	Status    CycleStatus            `protobuf:"varint,4,opt,name=status,proto3,enum=ops.v1.CycleStatus" json:"status,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *Cycle) Reset() {
	*x = Cycle{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Cycle) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Cycle) ProtoMessage() {}

func (x *Cycle) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Cycle.ProtoReflect.Descriptor instead.
func (*Cycle) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{0}
}

func (x *Cycle) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Cycle) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *Cycle) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *Cycle) GetStatus() CycleStatus {
	if x != nil {
		return x.Status
	}
	return CycleStatus_CYCLE_STATUS_UNSPECIFIED
}

func (x *Cycle) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Cycle) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type ListCyclesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
}

func (x *ListCyclesRequest) Reset() {
	*x = ListCyclesRequest{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCyclesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCyclesRequest) ProtoMessage() {}

func (x *ListCyclesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCyclesRequest.ProtoReflect.Descriptor instead.
func (*ListCyclesRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{1}
}

func (x *ListCyclesRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

type ListCyclesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Cycles []*Cycle `protobuf:"bytes,1,rep,name=cycles,proto3" json:"cycles,omitempty"` // month descending
}

func (x *ListCyclesResponse) Reset() {
	*x = ListCyclesResponse{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCyclesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCyclesResponse) ProtoMessage() {}

func (x *ListCyclesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCyclesResponse.ProtoReflect.Descriptor instead.
func (*ListCyclesResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{2}
}

func (x *ListCyclesResponse) GetCycles() []*Cycle {
	if x != nil {
		return x.Cycles
	}
	return nil
}

type GetCurrentCycleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
}

func (x *GetCurrentCycleRequest) Reset() {
	*x = GetCurrentCycleRequest{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentCycleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentCycleRequest) ProtoMessage() {}

func (x *GetCurrentCycleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentCycleRequest.ProtoReflect.Descriptor instead.
func (*GetCurrentCycleRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{3}
}

func (x *GetCurrentCycleRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

type GetCurrentCycleResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Cycle *Cycle `protobuf:"bytes,1,opt,name=cycle,proto3" json:"cycle,omitempty"` // unset when the client has no cycles
}

func (x *GetCurrentCycleResponse) Reset() {
	*x = GetCurrentCycleResponse{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentCycleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentCycleResponse) ProtoMessage() {}

func (x *GetCurrentCycleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentCycleResponse.ProtoReflect.Descriptor instead.
func (*GetCurrentCycleResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{4}
}

func (x *GetCurrentCycleResponse) GetCycle() *Cycle {
	if x != nil {
		return x.Cycle
	}
	return nil
}

// StartCycle creates the cycle and materializes its task list in one
// transaction; the supplied month is normalized to the first of the month.
type StartCycleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Month    string `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"` // "YYYY-MM-DD"
}

func (x *StartCycleRequest) Reset() {
	*x = StartCycleRequest{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartCycleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartCycleRequest) ProtoMessage() {}

func (x *StartCycleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartCycleRequest.ProtoReflect.Descriptor instead.
func (*StartCycleRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{5}
}

func (x *StartCycleRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *StartCycleRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

type StartCycleResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Cycle        *Cycle `protobuf:"bytes,1,opt,name=cycle,proto3" json:"cycle,omitempty"`
	TasksCreated int32  `protobuf:"varint,2,opt,name=tasks_created,json=tasksCreated,proto3" json:"tasks_created,omitempty"`
}

func (x *StartCycleResponse) Reset() {
	*x = StartCycleResponse{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartCycleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartCycleResponse) ProtoMessage() {}

func (x *StartCycleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartCycleResponse.ProtoReflect.Descriptor instead.
func (*StartCycleResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{6}
}

func (x *StartCycleResponse) GetCycle() *Cycle {
	if x != nil {
		return x.Cycle
	}
	return nil
}

func (x *StartCycleResponse) GetTasksCreated() int32 {
	if x != nil {
		return x.TasksCreated
	}
	return 0
}

type UpdateCycleStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CycleId string      `protobuf:"bytes,1,opt,name=cycle_id,json=cycleId,proto3" json:"cycle_id,omitempty"`
	Status  CycleStatus `protobuf:"varint,2,opt,name=status,proto3,enum=ops.v1.CycleStatus" json:"status,omitempty"`
}

func (x *UpdateCycleStatusRequest) Reset() {
	*x = UpdateCycleStatusRequest{}
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCycleStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCycleStatusRequest) ProtoMessage() {}

func (x *UpdateCycleStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_cycle_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCycleStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateCycleStatusRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_cycle_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateCycleStatusRequest) GetCycleId() string {
	if x != nil {
		return x.CycleId
	}
	return ""
}

func (x *UpdateCycleStatusRequest) GetStatus() CycleStatus {
	if x != nil {
		return x.Status
	}
	return CycleStatus_CYCLE_STATUS_UNSPECIFIED
}

var File_api_proto_ops_v1_cycle_proto protoreflect.FileDescriptor

var file_api_proto_ops_v1_cycle_proto_rawDesc = []byte{
	0x0a, 0x1c, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x1a, 0x1b, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d, 0x70, 0x74, 0x79, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x1d, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f,
	0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x6f, 0x6e, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x22, 0xed, 0x01, 0x0a, 0x05, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1b, 0x0a,
	0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f,
	0x6e, 0x74, 0x68, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68,
	0x12, 0x2b, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x39, 0x0a,
	0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63,
	0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x75, 0x70, 0x64, 0x61,
	0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67,
	0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54,
	0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65,
	0x64, 0x41, 0x74, 0x22, 0x30, 0x0a, 0x11, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65,
	0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6c, 0x69,
	0x65, 0x6e, 0x74, 0x49, 0x64, 0x22, 0x3b, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x79, 0x63,
	0x6c, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a, 0x06, 0x63,
	0x79, 0x63, 0x6c, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70,
	0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x06, 0x63, 0x79, 0x63, 0x6c,
	0x65, 0x73, 0x22, 0x35, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x74,
	0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09,
	0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x22, 0x3e, 0x0a, 0x17, 0x47, 0x65, 0x74,
	0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x05, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x79, 0x63,
	0x6c, 0x65, 0x52, 0x05, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x22, 0x46, 0x0a, 0x11, 0x53, 0x74, 0x61,
	0x72, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b,
	0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x6d,
	0x6f, 0x6e, 0x74, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6d, 0x6f, 0x6e, 0x74,
	0x68, 0x22, 0x5e, 0x0a, 0x12, 0x53, 0x74, 0x61, 0x72, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x05, 0x63, 0x79, 0x63, 0x6c, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e,
	0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x05, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x12, 0x23, 0x0a, 0x0d,
	0x74, 0x61, 0x73, 0x6b, 0x73, 0x5f, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0c, 0x74, 0x61, 0x73, 0x6b, 0x73, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x64, 0x22, 0x62, 0x0a, 0x18, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x43, 0x79, 0x63, 0x6c, 0x65,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a,
	0x08, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x12, 0x2b, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x32, 0xbb, 0x02, 0x0a, 0x0c, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x53,
	0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x43, 0x0a, 0x0a, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x79,
	0x63, 0x6c, 0x65, 0x73, 0x12, 0x19, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69,
	0x73, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x1a, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x79, 0x63,
	0x6c, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a, 0x0f, 0x47,
	0x65, 0x74, 0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x12, 0x1e,
	0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x75, 0x72, 0x72, 0x65,
	0x6e, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1f,
	0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x75, 0x72, 0x72, 0x65,
	0x6e, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x43, 0x0a, 0x0a, 0x53, 0x74, 0x61, 0x72, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x12, 0x19, 0x2e,
	0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x74, 0x61, 0x72, 0x74, 0x43, 0x79, 0x63, 0x6c,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x74, 0x61, 0x72, 0x74, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4d, 0x0a, 0x11, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x43, 0x79,
	0x63, 0x6c, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x20, 0x2e, 0x6f, 0x70, 0x73, 0x2e,
	0x76, 0x31, 0x2e, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x43, 0x79, 0x63, 0x6c, 0x65, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d,
	0x70, 0x74, 0x79, 0x42, 0x40, 0x5a, 0x3e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f,
	0x6d, 0x2f, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x62, 0x7a, 0x7a, 0x2f, 0x63, 0x6c, 0x69, 0x65, 0x6e,
	0x74, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f,
	0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x3b,
	0x6f, 0x70, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_ops_v1_cycle_proto_rawDescOnce sync.Once
	file_api_proto_ops_v1_cycle_proto_rawDescData = file_api_proto_ops_v1_cycle_proto_rawDesc
)

func file_api_proto_ops_v1_cycle_proto_rawDescGZIP() []byte {
	file_api_proto_ops_v1_cycle_proto_rawDescOnce.Do(func() {
		file_api_proto_ops_v1_cycle_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_ops_v1_cycle_proto_rawDescData)
	})
	return file_api_proto_ops_v1_cycle_proto_rawDescData
}

var file_api_proto_ops_v1_cycle_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_api_proto_ops_v1_cycle_proto_goTypes = []any{
	(*Cycle)(nil),                    // 0: ops.v1.Cycle
	(*ListCyclesRequest)(nil),        // 1: ops.v1.ListCyclesRequest
	(*ListCyclesResponse)(nil),       // 2: ops.v1.ListCyclesResponse
	(*GetCurrentCycleRequest)(nil),   // 3: ops.v1.GetCurrentCycleRequest
	(*GetCurrentCycleResponse)(nil),  // 4: ops.v1.GetCurrentCycleResponse
	(*StartCycleRequest)(nil),        // 5: ops.v1.StartCycleRequest
	(*StartCycleResponse)(nil),       // 6: ops.v1.StartCycleResponse
	(*UpdateCycleStatusRequest)(nil), // 7: ops.v1.UpdateCycleStatusRequest
	(CycleStatus)(0),                 // 8: ops.v1.CycleStatus
	(*timestamppb.Timestamp)(nil),    // 9: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),            // 10: google.protobuf.Empty
}
var file_api_proto_ops_v1_cycle_proto_depIdxs = []int32{
	8,  // 0: ops.v1.Cycle.status:type_name -> ops.v1.CycleStatus
	9,  // 1: ops.v1.Cycle.created_at:type_name -> google.protobuf.Timestamp
	9,  // 2: ops.v1.Cycle.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 3: ops.v1.ListCyclesResponse.cycles:type_name -> ops.v1.Cycle
	0,  // 4: ops.v1.GetCurrentCycleResponse.cycle:type_name -> ops.v1.Cycle
	0,  // 5: ops.v1.StartCycleResponse.cycle:type_name -> ops.v1.Cycle
	8,  // 6: ops.v1.UpdateCycleStatusRequest.status:type_name -> ops.v1.CycleStatus
	1,  // 7: ops.v1.CycleService.ListCycles:input_type -> ops.v1.ListCyclesRequest
	3,  // 8: ops.v1.CycleService.GetCurrentCycle:input_type -> ops.v1.GetCurrentCycleRequest
	5,  // 9: ops.v1.CycleService.StartCycle:input_type -> ops.v1.StartCycleRequest
	7,  // 10: ops.v1.CycleService.UpdateCycleStatus:input_type -> ops.v1.UpdateCycleStatusRequest
	2,  // 11: ops.v1.CycleService.ListCycles:output_type -> ops.v1.ListCyclesResponse
	4,  // 12: ops.v1.CycleService.GetCurrentCycle:output_type -> ops.v1.GetCurrentCycleResponse
	6,  // 13: ops.v1.CycleService.StartCycle:output_type -> ops.v1.StartCycleResponse
	10, // 14: ops.v1.CycleService.UpdateCycleStatus:output_type -> google.protobuf.Empty
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_api_proto_ops_v1_cycle_proto_init() }
func file_api_proto_ops_v1_cycle_proto_init() {
	if File_api_proto_ops_v1_cycle_proto != nil {
		return
	}
	file_api_proto_ops_v1_common_proto_init()
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_ops_v1_cycle_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_ops_v1_cycle_proto_goTypes,
		DependencyIndexes: file_api_proto_ops_v1_cycle_proto_depIdxs,
		MessageInfos:      file_api_proto_ops_v1_cycle_proto_msgTypes,
	}.Build()
	File_api_proto_ops_v1_cycle_proto = out.File
	file_api_proto_ops_v1_cycle_proto_rawDesc = nil
	file_api_proto_ops_v1_cycle_proto_goTypes = nil
	file_api_proto_ops_v1_cycle_proto_depIdxs = nil
}
