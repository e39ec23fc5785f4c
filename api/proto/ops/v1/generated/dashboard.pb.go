// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: api/proto/ops/v1/dashboard.proto

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

type UpcomingShoot struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Shoot      *Shoot `protobuf:"bytes,1,opt,name=shoot,proto3" json:"shoot,omitempty"`
	ClientName string `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
}

func (x *UpcomingShoot) Reset() {
	*x = UpcomingShoot{}
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpcomingShoot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpcomingShoot) ProtoMessage() {}

func (x *UpcomingShoot) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpcomingShoot.ProtoReflect.Descriptor instead.
func (*UpcomingShoot) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_dashboard_proto_rawDescGZIP(), []int{0}
}

func (x *UpcomingShoot) GetShoot() *Shoot {
	if x != nil {
		return x.Shoot
	}
	return nil
}

func (x *UpcomingShoot) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

type ClientTaskLoad struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId     string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	ClientName   string `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	OpenTasks    int32  `protobuf:"varint,3,opt,name=open_tasks,json=openTasks,proto3" json:"open_tasks,omitempty"`
	OverdueTasks int32  `protobuf:"varint,4,opt,name=overdue_tasks,json=overdueTasks,proto3" json:"overdue_tasks,omitempty"`
}

func (x *ClientTaskLoad) Reset() {
	*x = ClientTaskLoad{}
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientTaskLoad) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientTaskLoad) ProtoMessage() {}

func (x *ClientTaskLoad) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientTaskLoad.ProtoReflect.Descriptor instead.
func (*ClientTaskLoad) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_dashboard_proto_rawDescGZIP(), []int{1}
}

func (x *ClientTaskLoad) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ClientTaskLoad) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *ClientTaskLoad) GetOpenTasks() int32 {
	if x != nil {
		return x.OpenTasks
	}
	return 0
}

func (x *ClientTaskLoad) GetOverdueTasks() int32 {
	if x != nil {
		return x.OverdueTasks
	}
	return 0
}

type GetDashboardRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetDashboardRequest) Reset() {
	*x = GetDashboardRequest{}
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardRequest) ProtoMessage() {}

func (x *GetDashboardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardRequest.ProtoReflect.Descriptor instead.
func (*GetDashboardRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_dashboard_proto_rawDescGZIP(), []int{2}
}

type GetDashboardResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UpcomingShoots []*UpcomingShoot  `protobuf:"bytes,1,rep,name=upcoming_shoots,json=upcomingShoots,proto3" json:"upcoming_shoots,omitempty"`
	TaskLoad       []*ClientTaskLoad `protobuf:"bytes,2,rep,name=task_load,json=taskLoad,proto3" json:"task_load,omitempty"`
	ActiveClients  int32             `protobuf:"varint,3,opt,name=active_clients,json=activeClients,proto3" json:"active_clients,omitempty"`
	OpenTasks      int32             `protobuf:"varint,4,opt,name=open_tasks,json=openTasks,proto3" json:"open_tasks,omitempty"`
	OverdueTasks   int32             `protobuf:"varint,5,opt,name=overdue_tasks,json=overdueTasks,proto3" json:"overdue_tasks,omitempty"`
}

func (x *GetDashboardResponse) Reset() {
	*x = GetDashboardResponse{}
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDashboardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDashboardResponse) ProtoMessage() {}

func (x *GetDashboardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_dashboard_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDashboardResponse.ProtoReflect.Descriptor instead.
func (*GetDashboardResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_dashboard_proto_rawDescGZIP(), []int{3}
}

func (x *GetDashboardResponse) GetUpcomingShoots() []*UpcomingShoot {
	if x != nil {
		return x.UpcomingShoots
	}
	return nil
}

func (x *GetDashboardResponse) GetTaskLoad() []*ClientTaskLoad {
	if x != nil {
		return x.TaskLoad
	}
	return nil
}

func (x *GetDashboardResponse) GetActiveClients() int32 {
	if x != nil {
		return x.ActiveClients
	}
	return 0
}

func (x *GetDashboardResponse) GetOpenTasks() int32 {
	if x != nil {
		return x.OpenTasks
	}
	return 0
}

func (x *GetDashboardResponse) GetOverdueTasks() int32 {
	if x != nil {
		return x.OverdueTasks
	}
	return 0
}

var File_api_proto_ops_v1_dashboard_proto protoreflect.FileDescriptor

var file_api_proto_ops_v1_dashboard_proto_rawDesc = []byte{
	0x0a, 0x20, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x64, 0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x06, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x61, 0x70, 0x69, 0x2f,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x73, 0x68, 0x6f,
	0x6f, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x55, 0x0a, 0x0d, 0x55, 0x70, 0x63, 0x6f,
	0x6d, 0x69, 0x6e, 0x67, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x12, 0x23, 0x0a, 0x05, 0x73, 0x68, 0x6f,
	0x6f, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0d, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x68, 0x6f, 0x6f, 0x74, 0x52, 0x05, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x12, 0x1f,
	0x0a, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x4e, 0x61, 0x6d, 0x65, 0x22,
	0x92, 0x01, 0x0a, 0x0e, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x54, 0x61, 0x73, 0x6b, 0x4c, 0x6f,
	0x61, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12,
	0x1f, 0x0a, 0x0b, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x4e, 0x61, 0x6d, 0x65,
	0x12, 0x1d, 0x0a, 0x0a, 0x6f, 0x70, 0x65, 0x6e, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x73, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x6f, 0x70, 0x65, 0x6e, 0x54, 0x61, 0x73, 0x6b, 0x73, 0x12,
	0x23, 0x0a, 0x0d, 0x6f, 0x76, 0x65, 0x72, 0x64, 0x75, 0x65, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x73,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0c, 0x6f, 0x76, 0x65, 0x72, 0x64, 0x75, 0x65, 0x54,
	0x61, 0x73, 0x6b, 0x73, 0x22, 0x15, 0x0a, 0x13, 0x47, 0x65, 0x74, 0x44, 0x61, 0x73, 0x68, 0x62,
	0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0xf6, 0x01, 0x0a, 0x14,
	0x47, 0x65, 0x74, 0x44, 0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3e, 0x0a, 0x0f, 0x75, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67,
	0x5f, 0x73, 0x68, 0x6f, 0x6f, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x15, 0x2e,
	0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x53,
	0x68, 0x6f, 0x6f, 0x74, 0x52, 0x0e, 0x75, 0x70, 0x63, 0x6f, 0x6d, 0x69, 0x6e, 0x67, 0x53, 0x68,
	0x6f, 0x6f, 0x74, 0x73, 0x12, 0x33, 0x0a, 0x09, 0x74, 0x61, 0x73, 0x6b, 0x5f, 0x6c, 0x6f, 0x61,
	0x64, 0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x54, 0x61, 0x73, 0x6b, 0x4c, 0x6f, 0x61, 0x64, 0x52,
	0x08, 0x74, 0x61, 0x73, 0x6b, 0x4c, 0x6f, 0x61, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x61, 0x63, 0x74,
	0x69, 0x76, 0x65, 0x5f, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x0d, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x73,
	0x12, 0x1d, 0x0a, 0x0a, 0x6f, 0x70, 0x65, 0x6e, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x73, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x6f, 0x70, 0x65, 0x6e, 0x54, 0x61, 0x73, 0x6b, 0x73, 0x12,
	0x23, 0x0a, 0x0d, 0x6f, 0x76, 0x65, 0x72, 0x64, 0x75, 0x65, 0x5f, 0x74, 0x61, 0x73, 0x6b, 0x73,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0c, 0x6f, 0x76, 0x65, 0x72, 0x64, 0x75, 0x65, 0x54,
	0x61, 0x73, 0x6b, 0x73, 0x32, 0x5d, 0x0a, 0x10, 0x44, 0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72,
	0x64, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x49, 0x0a, 0x0c, 0x47, 0x65, 0x74, 0x44,
	0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x12, 0x1b, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x44, 0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x44, 0x61, 0x73, 0x68, 0x62, 0x6f, 0x61, 0x72, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x42, 0x40, 0x5a, 0x3e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f,
	0x6d, 0x2f, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x62, 0x7a, 0x7a, 0x2f, 0x63, 0x6c, 0x69, 0x65, 0x6e,
	0x74, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f,
	0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x3b,
	0x6f, 0x70, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_ops_v1_dashboard_proto_rawDescOnce sync.Once
	file_api_proto_ops_v1_dashboard_proto_rawDescData = file_api_proto_ops_v1_dashboard_proto_rawDesc
)

func file_api_proto_ops_v1_dashboard_proto_rawDescGZIP() []byte {
	file_api_proto_ops_v1_dashboard_proto_rawDescOnce.Do(func() {
		file_api_proto_ops_v1_dashboard_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_ops_v1_dashboard_proto_rawDescData)
	})
	return file_api_proto_ops_v1_dashboard_proto_rawDescData
}

var file_api_proto_ops_v1_dashboard_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_api_proto_ops_v1_dashboard_proto_goTypes = []any{
	(*UpcomingShoot)(nil),        // 0: ops.v1.UpcomingShoot
	(*ClientTaskLoad)(nil),       // 1: ops.v1.ClientTaskLoad
	(*GetDashboardRequest)(nil),  // 2: ops.v1.GetDashboardRequest
	(*GetDashboardResponse)(nil), // 3: ops.v1.GetDashboardResponse
	(*Shoot)(nil),                // 4: ops.v1.Shoot
}
var file_api_proto_ops_v1_dashboard_proto_depIdxs = []int32{
	4, // 0: ops.v1.UpcomingShoot.shoot:type_name -> ops.v1.Shoot
	0, // 1: ops.v1.GetDashboardResponse.upcoming_shoots:type_name -> ops.v1.UpcomingShoot
	1, // 2: ops.v1.GetDashboardResponse.task_load:type_name -> ops.v1.ClientTaskLoad
	2, // 3: ops.v1.DashboardService.GetDashboard:input_type -> ops.v1.GetDashboardRequest
	3, // 4: ops.v1.DashboardService.GetDashboard:output_type -> ops.v1.GetDashboardResponse
	4, // [4:5] is the sub-list for method output_type
	3, // [3:4] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_api_proto_ops_v1_dashboard_proto_init() }
func file_api_proto_ops_v1_dashboard_proto_init() {
	if File_api_proto_ops_v1_dashboard_proto != nil {
		return
	}
	file_api_proto_ops_v1_shoot_proto_init()
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_ops_v1_dashboard_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_ops_v1_dashboard_proto_goTypes,
		DependencyIndexes: file_api_proto_ops_v1_dashboard_proto_depIdxs,
		MessageInfos:      file_api_proto_ops_v1_dashboard_proto_msgTypes,
	}.Build()
	File_api_proto_ops_v1_dashboard_proto = out.File
	file_api_proto_ops_v1_dashboard_proto_rawDesc = nil
	file_api_proto_ops_v1_dashboard_proto_goTypes = nil
	file_api_proto_ops_v1_dashboard_proto_depIdxs = nil
}
