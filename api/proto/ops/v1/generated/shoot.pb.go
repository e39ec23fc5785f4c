// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: api/proto/ops/v1/shoot.proto

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

type Shoot struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClientId     string                 `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId      *string                `protobuf:"bytes,3,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
	ShootDate    string                 `protobuf:"bytes,4,opt,name=shoot_date,json=shootDate,proto3" json:"shoot_date,omitempty"`       // "YYYY-MM-DD"
	ShootTime    *string                `protobuf:"bytes,5,opt,name=shoot_time,json=shootTime,proto3,oneof" json:"shoot_time,omitempty"` // "HH:MM"
	Location     *string                `protobuf:"bytes,6,opt,name=location,proto3,oneof" json:"location,omitempty"`
	CalendarLink *string                `protobuf:"bytes,7,opt,name=calendar_link,json=calendarLink,proto3,oneof" json:"calendar_link,omitempty"`
	Status       ShootStatus            `protobuf:"varint,8,opt,name=status,proto3,enum=ops.v1.ShootStatus" json:"status,omitempty"`
	Type         ShootType              `protobuf:"varint,9,opt,name=type,proto3,enum=ops.v1.ShootType" json:"type,omitempty"`
	CreatedAt    *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt    *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *Shoot) Reset() {
	*x = Shoot{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shoot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shoot) ProtoMessage() {}

func (x *Shoot) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shoot.ProtoReflect.Descriptor instead.
func (*Shoot) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{0}
}

func (x *Shoot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Shoot) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *Shoot) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

func (x *Shoot) GetShootDate() string {
	if x != nil {
		return x.ShootDate
	}
	return ""
}

func (x *Shoot) GetShootTime() string {
	if x != nil && x.ShootTime != nil {
		return *x.ShootTime
	}
	return ""
}

func (x *Shoot) GetLocation() string {
	if x != nil && x.Location != nil {
		return *x.Location
	}
	return ""
}

func (x *Shoot) GetCalendarLink() string {
	if x != nil && x.CalendarLink != nil {
		return *x.CalendarLink
	}
	return ""
}

func (x *Shoot) GetStatus() ShootStatus {
	if x != nil {
		return x.Status
	}
	return ShootStatus_SHOOT_STATUS_UNSPECIFIED
}

func (x *Shoot) GetType() ShootType {
	if x != nil {
		return x.Type
	}
	return ShootType_SHOOT_TYPE_UNSPECIFIED
}

func (x *Shoot) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Shoot) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type ListShootsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string  `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId  *string `protobuf:"bytes,2,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
}

func (x *ListShootsRequest) Reset() {
	*x = ListShootsRequest{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShootsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShootsRequest) ProtoMessage() {}

func (x *ListShootsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShootsRequest.ProtoReflect.Descriptor instead.
func (*ListShootsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{1}
}

func (x *ListShootsRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ListShootsRequest) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

type ListShootsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Shoots []*Shoot `protobuf:"bytes,1,rep,name=shoots,proto3" json:"shoots,omitempty"` // shoot_date descending
}

func (x *ListShootsResponse) Reset() {
	*x = ListShootsResponse{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShootsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShootsResponse) ProtoMessage() {}

func (x *ListShootsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShootsResponse.ProtoReflect.Descriptor instead.
func (*ListShootsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{2}
}

func (x *ListShootsResponse) GetShoots() []*Shoot {
	if x != nil {
		return x.Shoots
	}
	return nil
}

type ListUpcomingShootsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Limit int32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"` // default 10
}

func (x *ListUpcomingShootsRequest) Reset() {
	*x = ListUpcomingShootsRequest{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUpcomingShootsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingShootsRequest) ProtoMessage() {}

func (x *ListUpcomingShootsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingShootsRequest.ProtoReflect.Descriptor instead.
func (*ListUpcomingShootsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{3}
}

func (x *ListUpcomingShootsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListUpcomingShootsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Shoots []*Shoot `protobuf:"bytes,1,rep,name=shoots,proto3" json:"shoots,omitempty"` // shoot_date ascending from today
}

func (x *ListUpcomingShootsResponse) Reset() {
	*x = ListUpcomingShootsResponse{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUpcomingShootsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingShootsResponse) ProtoMessage() {}

func (x *ListUpcomingShootsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingShootsResponse.ProtoReflect.Descriptor instead.
func (*ListUpcomingShootsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{4}
}

func (x *ListUpcomingShootsResponse) GetShoots() []*Shoot {
	if x != nil {
		return x.Shoots
	}
	return nil
}

// ScheduleShoot creates the shoot, materializes its task list anchored at
// shoot_date, and when cycle_task_id is set marks that cycle task done,
// all in one transaction.
type ScheduleShootRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId     string    `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId      *string   `protobuf:"bytes,2,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
	ShootDate    string    `protobuf:"bytes,3,opt,name=shoot_date,json=shootDate,proto3" json:"shoot_date,omitempty"` // "YYYY-MM-DD"
	Type         ShootType `protobuf:"varint,4,opt,name=type,proto3,enum=ops.v1.ShootType" json:"type,omitempty"`
	ShootTime    *string   `protobuf:"bytes,5,opt,name=shoot_time,json=shootTime,proto3,oneof" json:"shoot_time,omitempty"` // "HH:MM"
	Location     *string   `protobuf:"bytes,6,opt,name=location,proto3,oneof" json:"location,omitempty"`
	CalendarLink *string   `protobuf:"bytes,7,opt,name=calendar_link,json=calendarLink,proto3,oneof" json:"calendar_link,omitempty"`
	CycleTaskId  *string   `protobuf:"bytes,8,opt,name=cycle_task_id,json=cycleTaskId,proto3,oneof" json:"cycle_task_id,omitempty"` // the originating "Schedule Shoot" task
}

func (x *ScheduleShootRequest) Reset() {
	*x = ScheduleShootRequest{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleShootRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleShootRequest) ProtoMessage() {}

func (x *ScheduleShootRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleShootRequest.ProtoReflect.Descriptor instead.
func (*ScheduleShootRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{5}
}

func (x *ScheduleShootRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ScheduleShootRequest) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

func (x *ScheduleShootRequest) GetShootDate() string {
	if x != nil {
		return x.ShootDate
	}
	return ""
}

func (x *ScheduleShootRequest) GetType() ShootType {
	if x != nil {
		return x.Type
	}
	return ShootType_SHOOT_TYPE_UNSPECIFIED
}

func (x *ScheduleShootRequest) GetShootTime() string {
	if x != nil && x.ShootTime != nil {
		return *x.ShootTime
	}
	return ""
}

func (x *ScheduleShootRequest) GetLocation() string {
	if x != nil && x.Location != nil {
		return *x.Location
	}
	return ""
}

func (x *ScheduleShootRequest) GetCalendarLink() string {
	if x != nil && x.CalendarLink != nil {
		return *x.CalendarLink
	}
	return ""
}

func (x *ScheduleShootRequest) GetCycleTaskId() string {
	if x != nil && x.CycleTaskId != nil {
		return *x.CycleTaskId
	}
	return ""
}

type ScheduleShootResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Shoot        *Shoot `protobuf:"bytes,1,opt,name=shoot,proto3" json:"shoot,omitempty"`
	TasksCreated int32  `protobuf:"varint,2,opt,name=tasks_created,json=tasksCreated,proto3" json:"tasks_created,omitempty"`
}

func (x *ScheduleShootResponse) Reset() {
	*x = ScheduleShootResponse{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleShootResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleShootResponse) ProtoMessage() {}

func (x *ScheduleShootResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleShootResponse.ProtoReflect.Descriptor instead.
func (*ScheduleShootResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{6}
}

func (x *ScheduleShootResponse) GetShoot() *Shoot {
	if x != nil {
		return x.Shoot
	}
	return nil
}

func (x *ScheduleShootResponse) GetTasksCreated() int32 {
	if x != nil {
		return x.TasksCreated
	}
	return 0
}

// RescheduleShoot changes the anchor date and recomputes every task's due
// date from its template offset in the same transaction.
type RescheduleShootRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShootId   string `protobuf:"bytes,1,opt,name=shoot_id,json=shootId,proto3" json:"shoot_id,omitempty"`
	ShootDate string `protobuf:"bytes,2,opt,name=shoot_date,json=shootDate,proto3" json:"shoot_date,omitempty"` // "YYYY-MM-DD"
}

func (x *RescheduleShootRequest) Reset() {
	*x = RescheduleShootRequest{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RescheduleShootRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RescheduleShootRequest) ProtoMessage() {}

func (x *RescheduleShootRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RescheduleShootRequest.ProtoReflect.Descriptor instead.
func (*RescheduleShootRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{7}
}

func (x *RescheduleShootRequest) GetShootId() string {
	if x != nil {
		return x.ShootId
	}
	return ""
}

func (x *RescheduleShootRequest) GetShootDate() string {
	if x != nil {
		return x.ShootDate
	}
	return ""
}

type RescheduleShootResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Shoot *Shoot `protobuf:"bytes,1,opt,name=shoot,proto3" json:"shoot,omitempty"`
}

func (x *RescheduleShootResponse) Reset() {
	*x = RescheduleShootResponse{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RescheduleShootResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RescheduleShootResponse) ProtoMessage() {}

func (x *RescheduleShootResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RescheduleShootResponse.ProtoReflect.Descriptor instead.
func (*RescheduleShootResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{8}
}

func (x *RescheduleShootResponse) GetShoot() *Shoot {
	if x != nil {
		return x.Shoot
	}
	return nil
}

// UpdateShootStatus advances the production pipeline; the transition marks
// the matching handoff task ("Shoot Content", "Edit Content",
// "Schedule Content") done in the same transaction.
type UpdateShootStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShootId string      `protobuf:"bytes,1,opt,name=shoot_id,json=shootId,proto3" json:"shoot_id,omitempty"`
	Status  ShootStatus `protobuf:"varint,2,opt,name=status,proto3,enum=ops.v1.ShootStatus" json:"status,omitempty"`
}

func (x *UpdateShootStatusRequest) Reset() {
	*x = UpdateShootStatusRequest{}
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateShootStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateShootStatusRequest) ProtoMessage() {}

func (x *UpdateShootStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_shoot_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateShootStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateShootStatusRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_shoot_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateShootStatusRequest) GetShootId() string {
	if x != nil {
		return x.ShootId
	}
	return ""
}

func (x *UpdateShootStatusRequest) GetStatus() ShootStatus {
	if x != nil {
		return x.Status
	}
	return ShootStatus_SHOOT_STATUS_UNSPECIFIED
}

var File_api_proto_ops_v1_shoot_proto protoreflect.FileDescriptor

var file_api_proto_ops_v1_shoot_proto_rawDesc = []byte{
	0x0a, 0x1c, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x1a, 0x1b, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d, 0x70, 0x74, 0x79, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x1d, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f,
	0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x6f, 0x6e, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x22, 0xe7, 0x03, 0x0a, 0x05, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1b, 0x0a,
	0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1e, 0x0a, 0x08, 0x63, 0x79,
	0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00, 0x52, 0x07,
	0x63, 0x79, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x88, 0x01, 0x01, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x68,
	0x6f, 0x6f, 0x74, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x73, 0x68, 0x6f, 0x6f, 0x74, 0x44, 0x61, 0x74, 0x65, 0x12, 0x22, 0x0a, 0x0a, 0x73, 0x68, 0x6f,
	0x6f, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x48, 0x01, 0x52,
	0x09, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x88, 0x01, 0x01, 0x12, 0x1f, 0x0a,
	0x08, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x48,
	0x02, 0x52, 0x08, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x88, 0x01, 0x01, 0x12, 0x28,
	0x0a, 0x0d, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x6c, 0x69, 0x6e, 0x6b, 0x18,
	0x07, 0x20, 0x01, 0x28, 0x09, 0x48, 0x03, 0x52, 0x0c, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61,
	0x72, 0x4c, 0x69, 0x6e, 0x6b, 0x88, 0x01, 0x01, 0x12, 0x2b, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x25, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x09, 0x20,
	0x01, 0x28, 0x0e, 0x32, 0x11, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f,
	0x6f, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x39, 0x0a, 0x0a,
	0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x75, 0x70, 0x64, 0x61, 0x74,
	0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64,
	0x41, 0x74, 0x42, 0x0b, 0x0a, 0x09, 0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x42,
	0x0d, 0x0a, 0x0b, 0x5f, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x42, 0x0b,
	0x0a, 0x09, 0x5f, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x42, 0x10, 0x0a, 0x0e, 0x5f,
	0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x6c, 0x69, 0x6e, 0x6b, 0x22, 0x5d, 0x0a,
	0x11, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12,
	0x1e, 0x0a, 0x08, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x48, 0x00, 0x52, 0x07, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x88, 0x01, 0x01, 0x42,
	0x0b, 0x0a, 0x09, 0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x22, 0x3b, 0x0a, 0x12,
	0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x25, 0x0a, 0x06, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x52, 0x06, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x22, 0x31, 0x0a, 0x19, 0x4c, 0x69, 0x73,
	0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0x43, 0x0a, 0x1a,
	0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a, 0x06, 0x73, 0x68,
	0x6f, 0x6f, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x06, 0x73, 0x68, 0x6f, 0x6f, 0x74,
	0x73, 0x22, 0xfe, 0x02, 0x0a, 0x14, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68,
	0x6f, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c,
	0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63,
	0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1e, 0x0a, 0x08, 0x63, 0x79, 0x63, 0x6c, 0x65,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00, 0x52, 0x07, 0x63, 0x79, 0x63,
	0x6c, 0x65, 0x49, 0x64, 0x88, 0x01, 0x01, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x68, 0x6f, 0x6f, 0x74,
	0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x68, 0x6f,
	0x6f, 0x74, 0x44, 0x61, 0x74, 0x65, 0x12, 0x25, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x0e, 0x32, 0x11, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68,
	0x6f, 0x6f, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x22, 0x0a,
	0x0a, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x09, 0x48, 0x01, 0x52, 0x09, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x88, 0x01,
	0x01, 0x12, 0x1f, 0x0a, 0x08, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x09, 0x48, 0x02, 0x52, 0x08, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x88,
	0x01, 0x01, 0x12, 0x28, 0x0a, 0x0d, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x6c,
	0x69, 0x6e, 0x6b, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x48, 0x03, 0x52, 0x0c, 0x63, 0x61, 0x6c,
	0x65, 0x6e, 0x64, 0x61, 0x72, 0x4c, 0x69, 0x6e, 0x6b, 0x88, 0x01, 0x01, 0x12, 0x27, 0x0a, 0x0d,
	0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x5f, 0x69, 0x64, 0x18, 0x08, 0x20,
	0x01, 0x28, 0x09, 0x48, 0x04, 0x52, 0x0b, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x54, 0x61, 0x73, 0x6b,
	0x49, 0x64, 0x88, 0x01, 0x01, 0x42, 0x0b, 0x0a, 0x09, 0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f,
	0x69, 0x64, 0x42, 0x0d, 0x0a, 0x0b, 0x5f, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x5f, 0x74, 0x69, 0x6d,
	0x65, 0x42, 0x0b, 0x0a, 0x09, 0x5f, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x42, 0x10,
	0x0a, 0x0e, 0x5f, 0x63, 0x61, 0x6c, 0x65, 0x6e, 0x64, 0x61, 0x72, 0x5f, 0x6c, 0x69, 0x6e, 0x6b,
	0x42, 0x10, 0x0a, 0x0e, 0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x5f,
	0x69, 0x64, 0x22, 0x61, 0x0a, 0x15, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68,
	0x6f, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x05, 0x73,
	0x68, 0x6f, 0x6f, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x05, 0x73, 0x68, 0x6f, 0x6f, 0x74,
	0x12, 0x23, 0x0a, 0x0d, 0x74, 0x61, 0x73, 0x6b, 0x73, 0x5f, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0c, 0x74, 0x61, 0x73, 0x6b, 0x73, 0x43, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x64, 0x22, 0x52, 0x0a, 0x16, 0x52, 0x65, 0x73, 0x63, 0x68, 0x65, 0x64,
	0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x19, 0x0a, 0x08, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x68,
	0x6f, 0x6f, 0x74, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x73, 0x68, 0x6f, 0x6f, 0x74, 0x44, 0x61, 0x74, 0x65, 0x22, 0x3e, 0x0a, 0x17, 0x52, 0x65, 0x73,
	0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x05, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f,
	0x6f, 0x74, 0x52, 0x05, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x22, 0x62, 0x0a, 0x18, 0x55, 0x70, 0x64,
	0x61, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x5f, 0x69,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x49, 0x64,
	0x12, 0x2b, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x32, 0xa1, 0x03,
	0x0a, 0x0c, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x43,
	0x0a, 0x0a, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x12, 0x19, 0x2e, 0x6f,
	0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d,
	0x69, 0x6e, 0x67, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x12, 0x21, 0x2e, 0x6f, 0x70, 0x73, 0x2e,
	0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x53,
	0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x22, 0x2e, 0x6f,
	0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69,
	0x6e, 0x67, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x4c, 0x0a, 0x0d, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x12, 0x1c, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x68, 0x65, 0x64,
	0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x1d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c,
	0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52,
	0x0a, 0x0f, 0x52, 0x65, 0x73, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x12, 0x1e, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x73, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x1f, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x73, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x4d, 0x0a, 0x11, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x20, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74,
	0x79, 0x42, 0x40, 0x5a, 0x3e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f,
	0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x62, 0x7a, 0x7a, 0x2f, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x6f,
	0x70, 0x73, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73,
	0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x3b, 0x6f, 0x70,
	0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_ops_v1_shoot_proto_rawDescOnce sync.Once
	file_api_proto_ops_v1_shoot_proto_rawDescData = file_api_proto_ops_v1_shoot_proto_rawDesc
)

func file_api_proto_ops_v1_shoot_proto_rawDescGZIP() []byte {
	file_api_proto_ops_v1_shoot_proto_rawDescOnce.Do(func() {
		file_api_proto_ops_v1_shoot_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_ops_v1_shoot_proto_rawDescData)
	})
	return file_api_proto_ops_v1_shoot_proto_rawDescData
}

var file_api_proto_ops_v1_shoot_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_api_proto_ops_v1_shoot_proto_goTypes = []any{
	(*Shoot)(nil),                      // 0: ops.v1.Shoot
	(*ListShootsRequest)(nil),          // 1: ops.v1.ListShootsRequest
	(*ListShootsResponse)(nil),         // 2: ops.v1.ListShootsResponse
	(*ListUpcomingShootsRequest)(nil),  // 3: ops.v1.ListUpcomingShootsRequest
	(*ListUpcomingShootsResponse)(nil), // 4: ops.v1.ListUpcomingShootsResponse
	(*ScheduleShootRequest)(nil),       // 5: ops.v1.ScheduleShootRequest
	(*ScheduleShootResponse)(nil),      // 6: ops.v1.ScheduleShootResponse
	(*RescheduleShootRequest)(nil),     // 7: ops.v1.RescheduleShootRequest
	(*RescheduleShootResponse)(nil),    // 8: ops.v1.RescheduleShootResponse
	(*UpdateShootStatusRequest)(nil),   // 9: ops.v1.UpdateShootStatusRequest
	(ShootStatus)(0),                   // 10: ops.v1.ShootStatus
	(ShootType)(0),                     // 11: ops.v1.ShootType
	(*timestamppb.Timestamp)(nil),      // 12: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),              // 13: google.protobuf.Empty
}
var file_api_proto_ops_v1_shoot_proto_depIdxs = []int32{
	10, // 0: ops.v1.Shoot.status:type_name -> ops.v1.ShootStatus
	11, // 1: ops.v1.Shoot.type:type_name -> ops.v1.ShootType
	12, // 2: ops.v1.Shoot.created_at:type_name -> google.protobuf.Timestamp
	12, // 3: ops.v1.Shoot.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 4: ops.v1.ListShootsResponse.shoots:type_name -> ops.v1.Shoot
	0,  // 5: ops.v1.ListUpcomingShootsResponse.shoots:type_name -> ops.v1.Shoot
	11, // 6: ops.v1.ScheduleShootRequest.type:type_name -> ops.v1.ShootType
	0,  // 7: ops.v1.ScheduleShootResponse.shoot:type_name -> ops.v1.Shoot
	0,  // 8: ops.v1.RescheduleShootResponse.shoot:type_name -> ops.v1.Shoot
	10, // 9: ops.v1.UpdateShootStatusRequest.status:type_name -> ops.v1.ShootStatus
	1,  // 10: ops.v1.ShootService.ListShoots:input_type -> ops.v1.ListShootsRequest
	3,  // 11: ops.v1.ShootService.ListUpcomingShoots:input_type -> ops.v1.ListUpcomingShootsRequest
	5,  // 12: ops.v1.ShootService.ScheduleShoot:input_type -> ops.v1.ScheduleShootRequest
	7,  // 13: ops.v1.ShootService.RescheduleShoot:input_type -> ops.v1.RescheduleShootRequest
	9,  // 14: ops.v1.ShootService.UpdateShootStatus:input_type -> ops.v1.UpdateShootStatusRequest
	2,  // 15: ops.v1.ShootService.ListShoots:output_type -> ops.v1.ListShootsResponse
	4,  // 16: ops.v1.ShootService.ListUpcomingShoots:output_type -> ops.v1.ListUpcomingShootsResponse
	6,  // 17: ops.v1.ShootService.ScheduleShoot:output_type -> ops.v1.ScheduleShootResponse
	8,  // 18: ops.v1.ShootService.RescheduleShoot:output_type -> ops.v1.RescheduleShootResponse
	13, // 19: ops.v1.ShootService.UpdateShootStatus:output_type -> google.protobuf.Empty
	15, // [15:20] is the sub-list for method output_type
	10, // [10:15] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_api_proto_ops_v1_shoot_proto_init() }
func file_api_proto_ops_v1_shoot_proto_init() {
	if File_api_proto_ops_v1_shoot_proto != nil {
		return
	}
	file_api_proto_ops_v1_common_proto_init()
	file_api_proto_ops_v1_shoot_proto_msgTypes[0].OneofWrappers = []any{}
	file_api_proto_ops_v1_shoot_proto_msgTypes[1].OneofWrappers = []any{}
	file_api_proto_ops_v1_shoot_proto_msgTypes[5].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_ops_v1_shoot_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_ops_v1_shoot_proto_goTypes,
		DependencyIndexes: file_api_proto_ops_v1_shoot_proto_depIdxs,
		MessageInfos:      file_api_proto_ops_v1_shoot_proto_msgTypes,
	}.Build()
	File_api_proto_ops_v1_shoot_proto = out.File
	file_api_proto_ops_v1_shoot_proto_rawDesc = nil
	file_api_proto_ops_v1_shoot_proto_goTypes = nil
	file_api_proto_ops_v1_shoot_proto_depIdxs = nil
}
