// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: api/proto/ops/v1/common.proto

package opsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ParentType int32

const (
	ParentType_PARENT_TYPE_UNSPECIFIED ParentType = 0
	ParentType_PARENT_TYPE_CYCLE       ParentType = 1
	ParentType_PARENT_TYPE_SHOOT       ParentType = 2
)

// Enum value maps for ParentType.
var (
	ParentType_name = map[int32]string{
		0: "PARENT_TYPE_UNSPECIFIED",
		1: "PARENT_TYPE_CYCLE",
		2: "PARENT_TYPE_SHOOT",
	}
	ParentType_value = map[string]int32{
		"PARENT_TYPE_UNSPECIFIED": 0,
		"PARENT_TYPE_CYCLE":       1,
		"PARENT_TYPE_SHOOT":       2,
	}
)

func (x ParentType) Enum() *ParentType {
	p := new(ParentType)
	*p = x
	return p
}

func (x ParentType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ParentType) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[0].Descriptor()
}

func (ParentType) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[0]
}

func (x ParentType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ParentType.Descriptor instead.
func (ParentType) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{0}
}

type TaskStatus int32

const (
	TaskStatus_TASK_STATUS_UNSPECIFIED TaskStatus = 0
	TaskStatus_TASK_STATUS_TODO        TaskStatus = 1
	TaskStatus_TASK_STATUS_DONE        TaskStatus = 2
)

// Enum value maps for TaskStatus.
var (
	TaskStatus_name = map[int32]string{
		0: "TASK_STATUS_UNSPECIFIED",
		1: "TASK_STATUS_TODO",
		2: "TASK_STATUS_DONE",
	}
	TaskStatus_value = map[string]int32{
		"TASK_STATUS_UNSPECIFIED": 0,
		"TASK_STATUS_TODO":        1,
		"TASK_STATUS_DONE":        2,
	}
)

func (x TaskStatus) Enum() *TaskStatus {
	p := new(TaskStatus)
	*p = x
	return p
}

func (x TaskStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaskStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[1].Descriptor()
}

func (TaskStatus) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[1]
}

func (x TaskStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaskStatus.Descriptor instead.
func (TaskStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{1}
}

type CycleStatus int32

const (
	CycleStatus_CYCLE_STATUS_UNSPECIFIED CycleStatus = 0
	CycleStatus_CYCLE_STATUS_PLANNING    CycleStatus = 1
	CycleStatus_CYCLE_STATUS_ACTIVE      CycleStatus = 2
	CycleStatus_CYCLE_STATUS_COMPLETED   CycleStatus = 3
)

// Enum value maps for CycleStatus.
var (
	CycleStatus_name = map[int32]string{
		0: "CYCLE_STATUS_UNSPECIFIED",
		1: "CYCLE_STATUS_PLANNING",
		2: "CYCLE_STATUS_ACTIVE",
		3: "CYCLE_STATUS_COMPLETED",
	}
	CycleStatus_value = map[string]int32{
		"CYCLE_STATUS_UNSPECIFIED": 0,
		"CYCLE_STATUS_PLANNING":    1,
		"CYCLE_STATUS_ACTIVE":      2,
		"CYCLE_STATUS_COMPLETED":   3,
	}
)

func (x CycleStatus) Enum() *CycleStatus {
	p := new(CycleStatus)
	*p = x
	return p
}

func (x CycleStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CycleStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[2].Descriptor()
}

func (CycleStatus) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[2]
}

func (x CycleStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CycleStatus.Descriptor instead.
func (CycleStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{2}
}

type ShootStatus int32

const (
	ShootStatus_SHOOT_STATUS_UNSPECIFIED ShootStatus = 0
	ShootStatus_SHOOT_STATUS_PLANNED     ShootStatus = 1
	ShootStatus_SHOOT_STATUS_SHOT        ShootStatus = 2
	ShootStatus_SHOOT_STATUS_EDITED      ShootStatus = 3
	ShootStatus_SHOOT_STATUS_DELIVERED   ShootStatus = 4
)

// Enum value maps for ShootStatus.
var (
	ShootStatus_name = map[int32]string{
		0: "SHOOT_STATUS_UNSPECIFIED",
		1: "SHOOT_STATUS_PLANNED",
		2: "SHOOT_STATUS_SHOT",
		3: "SHOOT_STATUS_EDITED",
		4: "SHOOT_STATUS_DELIVERED",
	}
	ShootStatus_value = map[string]int32{
		"SHOOT_STATUS_UNSPECIFIED": 0,
		"SHOOT_STATUS_PLANNED":     1,
		"SHOOT_STATUS_SHOT":        2,
		"SHOOT_STATUS_EDITED":      3,
		"SHOOT_STATUS_DELIVERED":   4,
	}
)

func (x ShootStatus) Enum() *ShootStatus {
	p := new(ShootStatus)
	*p = x
	return p
}

func (x ShootStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShootStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[3].Descriptor()
}

func (ShootStatus) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[3]
}

func (x ShootStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShootStatus.Descriptor instead.
func (ShootStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{3}
}

type ShootType int32

const (
	ShootType_SHOOT_TYPE_UNSPECIFIED ShootType = 0
	ShootType_SHOOT_TYPE_MONTHLY     ShootType = 1
	ShootType_SHOOT_TYPE_ADHOC       ShootType = 2
)

// Enum value maps for ShootType.
var (
	ShootType_name = map[int32]string{
		0: "SHOOT_TYPE_UNSPECIFIED",
		1: "SHOOT_TYPE_MONTHLY",
		2: "SHOOT_TYPE_ADHOC",
	}
	ShootType_value = map[string]int32{
		"SHOOT_TYPE_UNSPECIFIED": 0,
		"SHOOT_TYPE_MONTHLY":     1,
		"SHOOT_TYPE_ADHOC":       2,
	}
)

func (x ShootType) Enum() *ShootType {
	p := new(ShootType)
	*p = x
	return p
}

func (x ShootType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShootType) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[4].Descriptor()
}

func (ShootType) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[4]
}

func (x ShootType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShootType.Descriptor instead.
func (ShootType) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{4}
}

type ClientStatus int32

const (
	ClientStatus_CLIENT_STATUS_UNSPECIFIED ClientStatus = 0
	ClientStatus_CLIENT_STATUS_ACTIVE      ClientStatus = 1
	ClientStatus_CLIENT_STATUS_ARCHIVED    ClientStatus = 2
)

// Enum value maps for ClientStatus.
var (
	ClientStatus_name = map[int32]string{
		0: "CLIENT_STATUS_UNSPECIFIED",
		1: "CLIENT_STATUS_ACTIVE",
		2: "CLIENT_STATUS_ARCHIVED",
	}
	ClientStatus_value = map[string]int32{
		"CLIENT_STATUS_UNSPECIFIED": 0,
		"CLIENT_STATUS_ACTIVE":      1,
		"CLIENT_STATUS_ARCHIVED":    2,
	}
)

func (x ClientStatus) Enum() *ClientStatus {
	p := new(ClientStatus)
	*p = x
	return p
}

func (x ClientStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ClientStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[5].Descriptor()
}

func (ClientStatus) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[5]
}

func (x ClientStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ClientStatus.Descriptor instead.
func (ClientStatus) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{5}
}

type ContextType int32

const (
	ContextType_CONTEXT_TYPE_UNSPECIFIED ContextType = 0
	ContextType_CONTEXT_TYPE_TRANSCRIPT  ContextType = 1
	ContextType_CONTEXT_TYPE_REPORT      ContextType = 2
	ContextType_CONTEXT_TYPE_NOTE        ContextType = 3
)

// Enum value maps for ContextType.
var (
	ContextType_name = map[int32]string{
		0: "CONTEXT_TYPE_UNSPECIFIED",
		1: "CONTEXT_TYPE_TRANSCRIPT",
		2: "CONTEXT_TYPE_REPORT",
		3: "CONTEXT_TYPE_NOTE",
	}
	ContextType_value = map[string]int32{
		"CONTEXT_TYPE_UNSPECIFIED": 0,
		"CONTEXT_TYPE_TRANSCRIPT":  1,
		"CONTEXT_TYPE_REPORT":      2,
		"CONTEXT_TYPE_NOTE":        3,
	}
)

func (x ContextType) Enum() *ContextType {
	p := new(ContextType)
	*p = x
	return p
}

func (x ContextType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ContextType) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[6].Descriptor()
}

func (ContextType) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[6]
}

func (x ContextType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ContextType.Descriptor instead.
func (ContextType) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{6}
}

type TemplateRole int32

const (
	TemplateRole_TEMPLATE_ROLE_UNSPECIFIED TemplateRole = 0
	TemplateRole_TEMPLATE_ROLE_STRATEGIST  TemplateRole = 1
	TemplateRole_TEMPLATE_ROLE_SCHEDULER   TemplateRole = 2
	TemplateRole_TEMPLATE_ROLE_SHOOTER     TemplateRole = 3
	TemplateRole_TEMPLATE_ROLE_EDITOR      TemplateRole = 4
)

// Enum value maps for TemplateRole.
var (
	TemplateRole_name = map[int32]string{
		0: "TEMPLATE_ROLE_UNSPECIFIED",
		1: "TEMPLATE_ROLE_STRATEGIST",
		2: "TEMPLATE_ROLE_SCHEDULER",
		3: "TEMPLATE_ROLE_SHOOTER",
		4: "TEMPLATE_ROLE_EDITOR",
	}
	TemplateRole_value = map[string]int32{
		"TEMPLATE_ROLE_UNSPECIFIED": 0,
		"TEMPLATE_ROLE_STRATEGIST":  1,
		"TEMPLATE_ROLE_SCHEDULER":   2,
		"TEMPLATE_ROLE_SHOOTER":     3,
		"TEMPLATE_ROLE_EDITOR":      4,
	}
)

func (x TemplateRole) Enum() *TemplateRole {
	p := new(TemplateRole)
	*p = x
	return p
}

func (x TemplateRole) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TemplateRole) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[7].Descriptor()
}

func (TemplateRole) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[7]
}

func (x TemplateRole) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TemplateRole.Descriptor instead.
func (TemplateRole) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{7}
}

type UserRole int32

const (
	UserRole_USER_ROLE_UNSPECIFIED UserRole = 0
	UserRole_USER_ROLE_ADMIN       UserRole = 1
	UserRole_USER_ROLE_CONTRIBUTOR UserRole = 2
)

// Enum value maps for UserRole.
var (
	UserRole_name = map[int32]string{
		0: "USER_ROLE_UNSPECIFIED",
		1: "USER_ROLE_ADMIN",
		2: "USER_ROLE_CONTRIBUTOR",
	}
	UserRole_value = map[string]int32{
		"USER_ROLE_UNSPECIFIED": 0,
		"USER_ROLE_ADMIN":       1,
		"USER_ROLE_CONTRIBUTOR": 2,
	}
)

func (x UserRole) Enum() *UserRole {
	p := new(UserRole)
	*p = x
	return p
}

func (x UserRole) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (UserRole) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_ops_v1_common_proto_enumTypes[8].Descriptor()
}

func (UserRole) Type() protoreflect.EnumType {
	return &file_api_proto_ops_v1_common_proto_enumTypes[8]
}

func (x UserRole) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use UserRole.Descriptor instead.
func (UserRole) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_common_proto_rawDescGZIP(), []int{8}
}

var File_api_proto_ops_v1_common_proto protoreflect.FileDescriptor

var file_api_proto_ops_v1_common_proto_rawDesc = []byte{
	0x0a, 0x1d, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x6f, 0x6e, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x06, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2a, 0x57, 0x0a, 0x0a, 0x50, 0x61, 0x72, 0x65, 0x6e,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1b, 0x0a, 0x17, 0x50, 0x41, 0x52, 0x45, 0x4e, 0x54, 0x5f,
	0x54, 0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44,
	0x10, 0x00, 0x12, 0x15, 0x0a, 0x11, 0x50, 0x41, 0x52, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50,
	0x45, 0x5f, 0x43, 0x59, 0x43, 0x4c, 0x45, 0x10, 0x01, 0x12, 0x15, 0x0a, 0x11, 0x50, 0x41, 0x52,
	0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x10, 0x02,
	0x2a, 0x55, 0x0a, 0x0a, 0x54, 0x61, 0x73, 0x6b, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1b,
	0x0a, 0x17, 0x54, 0x41, 0x53, 0x4b, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x55, 0x4e,
	0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x14, 0x0a, 0x10, 0x54,
	0x41, 0x53, 0x4b, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x54, 0x4f, 0x44, 0x4f, 0x10,
	0x01, 0x12, 0x14, 0x0a, 0x10, 0x54, 0x41, 0x53, 0x4b, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53,
	0x5f, 0x44, 0x4f, 0x4e, 0x45, 0x10, 0x02, 0x2a, 0x7b, 0x0a, 0x0b, 0x43, 0x79, 0x63, 0x6c, 0x65,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1c, 0x0a, 0x18, 0x43, 0x59, 0x43, 0x4c, 0x45, 0x5f,
	0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49,
	0x45, 0x44, 0x10, 0x00, 0x12, 0x19, 0x0a, 0x15, 0x43, 0x59, 0x43, 0x4c, 0x45, 0x5f, 0x53, 0x54,
	0x41, 0x54, 0x55, 0x53, 0x5f, 0x50, 0x4c, 0x41, 0x4e, 0x4e, 0x49, 0x4e, 0x47, 0x10, 0x01, 0x12,
	0x17, 0x0a, 0x13, 0x43, 0x59, 0x43, 0x4c, 0x45, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f,
	0x41, 0x43, 0x54, 0x49, 0x56, 0x45, 0x10, 0x02, 0x12, 0x1a, 0x0a, 0x16, 0x43, 0x59, 0x43, 0x4c,
	0x45, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x43, 0x4f, 0x4d, 0x50, 0x4c, 0x45, 0x54,
	0x45, 0x44, 0x10, 0x03, 0x2a, 0x91, 0x01, 0x0a, 0x0b, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x12, 0x1c, 0x0a, 0x18, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x53, 0x54,
	0x41, 0x54, 0x55, 0x53, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44,
	0x10, 0x00, 0x12, 0x18, 0x0a, 0x14, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54,
	0x55, 0x53, 0x5f, 0x50, 0x4c, 0x41, 0x4e, 0x4e, 0x45, 0x44, 0x10, 0x01, 0x12, 0x15, 0x0a, 0x11,
	0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x53, 0x48, 0x4f,
	0x54, 0x10, 0x02, 0x12, 0x17, 0x0a, 0x13, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x53, 0x54, 0x41,
	0x54, 0x55, 0x53, 0x5f, 0x45, 0x44, 0x49, 0x54, 0x45, 0x44, 0x10, 0x03, 0x12, 0x1a, 0x0a, 0x16,
	0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x44, 0x45, 0x4c,
	0x49, 0x56, 0x45, 0x52, 0x45, 0x44, 0x10, 0x04, 0x2a, 0x55, 0x0a, 0x09, 0x53, 0x68, 0x6f, 0x6f,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1a, 0x0a, 0x16, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x16, 0x0a, 0x12, 0x53, 0x48, 0x4f, 0x4f, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x4d, 0x4f, 0x4e, 0x54, 0x48, 0x4c, 0x59, 0x10, 0x01, 0x12, 0x14, 0x0a, 0x10, 0x53, 0x48, 0x4f,
	0x4f, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x41, 0x44, 0x48, 0x4f, 0x43, 0x10, 0x02, 0x2a,
	0x63, 0x0a, 0x0c, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12,
	0x1d, 0x0a, 0x19, 0x43, 0x4c, 0x49, 0x45, 0x4e, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53,
	0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x18,
	0x0a, 0x14, 0x43, 0x4c, 0x49, 0x45, 0x4e, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f,
	0x41, 0x43, 0x54, 0x49, 0x56, 0x45, 0x10, 0x01, 0x12, 0x1a, 0x0a, 0x16, 0x43, 0x4c, 0x49, 0x45,
	0x4e, 0x54, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x41, 0x52, 0x43, 0x48, 0x49, 0x56,
	0x45, 0x44, 0x10, 0x02, 0x2a, 0x78, 0x0a, 0x0b, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x54,
	0x79, 0x70, 0x65, 0x12, 0x1c, 0x0a, 0x18, 0x43, 0x4f, 0x4e, 0x54, 0x45, 0x58, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x1b, 0x0a, 0x17, 0x43, 0x4f, 0x4e, 0x54, 0x45, 0x58, 0x54, 0x5f, 0x54, 0x59, 0x50,
	0x45, 0x5f, 0x54, 0x52, 0x41, 0x4e, 0x53, 0x43, 0x52, 0x49, 0x50, 0x54, 0x10, 0x01, 0x12, 0x17,
	0x0a, 0x13, 0x43, 0x4f, 0x4e, 0x54, 0x45, 0x58, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x52,
	0x45, 0x50, 0x4f, 0x52, 0x54, 0x10, 0x02, 0x12, 0x15, 0x0a, 0x11, 0x43, 0x4f, 0x4e, 0x54, 0x45,
	0x58, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x4e, 0x4f, 0x54, 0x45, 0x10, 0x03, 0x2a, 0x9d,
	0x01, 0x0a, 0x0c, 0x54, 0x65, 0x6d, 0x70, 0x6c, 0x61, 0x74, 0x65, 0x52, 0x6f, 0x6c, 0x65, 0x12,
	0x1d, 0x0a, 0x19, 0x54, 0x45, 0x4d, 0x50, 0x4c, 0x41, 0x54, 0x45, 0x5f, 0x52, 0x4f, 0x4c, 0x45,
	0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1c,
	0x0a, 0x18, 0x54, 0x45, 0x4d, 0x50, 0x4c, 0x41, 0x54, 0x45, 0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f,
	0x53, 0x54, 0x52, 0x41, 0x54, 0x45, 0x47, 0x49, 0x53, 0x54, 0x10, 0x01, 0x12, 0x1b, 0x0a, 0x17,
	0x54, 0x45, 0x4d, 0x50, 0x4c, 0x41, 0x54, 0x45, 0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f, 0x53, 0x43,
	0x48, 0x45, 0x44, 0x55, 0x4c, 0x45, 0x52, 0x10, 0x02, 0x12, 0x19, 0x0a, 0x15, 0x54, 0x45, 0x4d,
	0x50, 0x4c, 0x41, 0x54, 0x45, 0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f, 0x53, 0x48, 0x4f, 0x4f, 0x54,
	0x45, 0x52, 0x10, 0x03, 0x12, 0x18, 0x0a, 0x14, 0x54, 0x45, 0x4d, 0x50, 0x4c, 0x41, 0x54, 0x45,
	0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f, 0x45, 0x44, 0x49, 0x54, 0x4f, 0x52, 0x10, 0x04, 0x2a, 0x55,
	0x0a, 0x08, 0x55, 0x73, 0x65, 0x72, 0x52, 0x6f, 0x6c, 0x65, 0x12, 0x19, 0x0a, 0x15, 0x55, 0x53,
	0x45, 0x52, 0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46,
	0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x13, 0x0a, 0x0f, 0x55, 0x53, 0x45, 0x52, 0x5f, 0x52, 0x4f,
	0x4c, 0x45, 0x5f, 0x41, 0x44, 0x4d, 0x49, 0x4e, 0x10, 0x01, 0x12, 0x19, 0x0a, 0x15, 0x55, 0x53,
	0x45, 0x52, 0x5f, 0x52, 0x4f, 0x4c, 0x45, 0x5f, 0x43, 0x4f, 0x4e, 0x54, 0x52, 0x49, 0x42, 0x55,
	0x54, 0x4f, 0x52, 0x10, 0x02, 0x42, 0x40, 0x5a, 0x3e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e,
	0x63, 0x6f, 0x6d, 0x2f, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x62, 0x7a, 0x7a, 0x2f, 0x63, 0x6c, 0x69,
	0x65, 0x6e, 0x74, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65,
	0x64, 0x3b, 0x6f, 0x70, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_ops_v1_common_proto_rawDescOnce sync.Once
	file_api_proto_ops_v1_common_proto_rawDescData = file_api_proto_ops_v1_common_proto_rawDesc
)

func file_api_proto_ops_v1_common_proto_rawDescGZIP() []byte {
	file_api_proto_ops_v1_common_proto_rawDescOnce.Do(func() {
		file_api_proto_ops_v1_common_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_ops_v1_common_proto_rawDescData)
	})
	return file_api_proto_ops_v1_common_proto_rawDescData
}

var file_api_proto_ops_v1_common_proto_enumTypes = make([]protoimpl.EnumInfo, 9)
var file_api_proto_ops_v1_common_proto_goTypes = []any{
	(ParentType)(0),   // 0: ops.v1.ParentType
	(TaskStatus)(0),   // 1: ops.v1.TaskStatus
	(CycleStatus)(0),  // 2: ops.v1.CycleStatus
	(ShootStatus)(0),  // 3: ops.v1.ShootStatus
	(ShootType)(0),    // 4: ops.v1.ShootType
	(ClientStatus)(0), // 5: ops.v1.ClientStatus
	(ContextType)(0),  // 6: ops.v1.ContextType
	(TemplateRole)(0), // 7: ops.v1.TemplateRole
	(UserRole)(0),     // 8: ops.v1.UserRole
}
var file_api_proto_ops_v1_common_proto_depIdxs = []int32{
	0, // [0:0] is the sub-list for method output_type
	0, // [0:0] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_api_proto_ops_v1_common_proto_init() }
func file_api_proto_ops_v1_common_proto_init() {
	if File_api_proto_ops_v1_common_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_ops_v1_common_proto_rawDesc,
			NumEnums:      9,
			NumMessages:   0,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_api_proto_ops_v1_common_proto_goTypes,
		DependencyIndexes: file_api_proto_ops_v1_common_proto_depIdxs,
		EnumInfos:         file_api_proto_ops_v1_common_proto_enumTypes,
	}.Build()
	File_api_proto_ops_v1_common_proto = out.File
	file_api_proto_ops_v1_common_proto_rawDesc = nil
	file_api_proto_ops_v1_common_proto_goTypes = nil
	file_api_proto_ops_v1_common_proto_depIdxs = nil
}
