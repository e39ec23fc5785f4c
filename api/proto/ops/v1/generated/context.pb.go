// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: api/proto/ops/v1/context.proto

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

type ContextEntry struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClientId    string                 `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId     *string                `protobuf:"bytes,3,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
	AuthorId    string                 `protobuf:"bytes,4,opt,name=author_id,json=authorId,proto3" json:"author_id,omitempty"`
	AuthorEmail string                 `protobuf:"bytes,5,opt,name=author_email,json=authorEmail,proto3" json:"author_email,omitempty"`
	Type        ContextType            `protobuf:"varint,6,opt,name=type,proto3,enum=ops.v1.ContextType" json:"type,omitempty"`
	Content     string                 `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt   *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *ContextEntry) Reset() {
	*x = ContextEntry{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContextEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContextEntry) ProtoMessage() {}

func (x *ContextEntry) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContextEntry.ProtoReflect.Descriptor instead.
func (*ContextEntry) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{0}
}

func (x *ContextEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ContextEntry) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ContextEntry) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

func (x *ContextEntry) GetAuthorId() string {
	if x != nil {
		return x.AuthorId
	}
	return ""
}

func (x *ContextEntry) GetAuthorEmail() string {
	if x != nil {
		return x.AuthorEmail
	}
	return ""
}

func (x *ContextEntry) GetType() ContextType {
	if x != nil {
		return x.Type
	}
	return ContextType_CONTEXT_TYPE_UNSPECIFIED
}

func (x *ContextEntry) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ContextEntry) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListClientContextRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string  `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId  *string `protobuf:"bytes,2,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
}

func (x *ListClientContextRequest) Reset() {
	*x = ListClientContextRequest{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientContextRequest) ProtoMessage() {}

func (x *ListClientContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientContextRequest.ProtoReflect.Descriptor instead.
func (*ListClientContextRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{1}
}

func (x *ListClientContextRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ListClientContextRequest) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

type ListClientContextResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Entries []*ContextEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"` // created_at descending
}

func (x *ListClientContextResponse) Reset() {
	*x = ListClientContextResponse{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientContextResponse) ProtoMessage() {}

func (x *ListClientContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientContextResponse.ProtoReflect.Descriptor instead.
func (*ListClientContextResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{2}
}

func (x *ListClientContextResponse) GetEntries() []*ContextEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type AddContextEntryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string      `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	CycleId  *string     `protobuf:"bytes,2,opt,name=cycle_id,json=cycleId,proto3,oneof" json:"cycle_id,omitempty"`
	Type     ContextType `protobuf:"varint,3,opt,name=type,proto3,enum=ops.v1.ContextType" json:"type,omitempty"`
	Content  string      `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
}

func (x *AddContextEntryRequest) Reset() {
	*x = AddContextEntryRequest{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddContextEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddContextEntryRequest) ProtoMessage() {}

func (x *AddContextEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddContextEntryRequest.ProtoReflect.Descriptor instead.
func (*AddContextEntryRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{3}
}

func (x *AddContextEntryRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *AddContextEntryRequest) GetCycleId() string {
	if x != nil && x.CycleId != nil {
		return *x.CycleId
	}
	return ""
}

func (x *AddContextEntryRequest) GetType() ContextType {
	if x != nil {
		return x.Type
	}
	return ContextType_CONTEXT_TYPE_UNSPECIFIED
}

func (x *AddContextEntryRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type AddContextEntryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Entry *ContextEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
}

func (x *AddContextEntryResponse) Reset() {
	*x = AddContextEntryResponse{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddContextEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddContextEntryResponse) ProtoMessage() {}

func (x *AddContextEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddContextEntryResponse.ProtoReflect.Descriptor instead.
func (*AddContextEntryResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{4}
}

func (x *AddContextEntryResponse) GetEntry() *ContextEntry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type DeleteContextEntryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EntryId string `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
}

func (x *DeleteContextEntryRequest) Reset() {
	*x = DeleteContextEntryRequest{}
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContextEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContextEntryRequest) ProtoMessage() {}

func (x *DeleteContextEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_ops_v1_context_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContextEntryRequest.ProtoReflect.Descriptor instead.
func (*DeleteContextEntryRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_ops_v1_context_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteContextEntryRequest) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

var File_api_proto_ops_v1_context_proto protoreflect.FileDescriptor

var file_api_proto_ops_v1_context_proto_rawDesc = []byte{
	0x0a, 0x1e, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f,
	0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x12, 0x06, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x1a, 0x1b, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d, 0x70, 0x74, 0x79, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x1d, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x6f, 0x6e, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xa6, 0x02, 0x0a, 0x0c, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e,
	0x74, 0x49, 0x64, 0x12, 0x1e, 0x0a, 0x08, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00, 0x52, 0x07, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x49, 0x64,
	0x88, 0x01, 0x01, 0x12, 0x1b, 0x0a, 0x09, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x5f, 0x69, 0x64,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x49, 0x64,
	0x12, 0x21, 0x0a, 0x0c, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x5f, 0x65, 0x6d, 0x61, 0x69, 0x6c,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x45, 0x6d,
	0x61, 0x69, 0x6c, 0x12, 0x27, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x0e, 0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x74, 0x65,
	0x78, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07,
	0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63,
	0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x64, 0x5f, 0x61, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41,
	0x74, 0x42, 0x0b, 0x0a, 0x09, 0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x22, 0x64,
	0x0a, 0x18, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c,
	0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63,
	0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1e, 0x0a, 0x08, 0x63, 0x79, 0x63, 0x6c, 0x65,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00, 0x52, 0x07, 0x63, 0x79, 0x63,
	0x6c, 0x65, 0x49, 0x64, 0x88, 0x01, 0x01, 0x42, 0x0b, 0x0a, 0x09, 0x5f, 0x63, 0x79, 0x63, 0x6c,
	0x65, 0x5f, 0x69, 0x64, 0x22, 0x4b, 0x0a, 0x19, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x6c, 0x69, 0x65,
	0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x2e, 0x0a, 0x07, 0x65, 0x6e, 0x74, 0x72, 0x69, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x14, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x07, 0x65, 0x6e, 0x74, 0x72, 0x69, 0x65,
	0x73, 0x22, 0xa5, 0x01, 0x0a, 0x16, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74,
	0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09,
	0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1e, 0x0a, 0x08, 0x63, 0x79, 0x63,
	0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00, 0x52, 0x07, 0x63,
	0x79, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x88, 0x01, 0x01, 0x12, 0x27, 0x0a, 0x04, 0x74, 0x79, 0x70,
	0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x13, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79,
	0x70, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x6e, 0x74, 0x42, 0x0b, 0x0a, 0x09,
	0x5f, 0x63, 0x79, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64, 0x22, 0x45, 0x0a, 0x17, 0x41, 0x64, 0x64,
	0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2a, 0x0a, 0x05, 0x65, 0x6e, 0x74, 0x72, 0x79, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6e,
	0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x05, 0x65, 0x6e, 0x74, 0x72, 0x79,
	0x22, 0x36, 0x0a, 0x19, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78,
	0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a,
	0x08, 0x65, 0x6e, 0x74, 0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x65, 0x6e, 0x74, 0x72, 0x79, 0x49, 0x64, 0x32, 0x8f, 0x02, 0x0a, 0x0e, 0x43, 0x6f, 0x6e,
	0x74, 0x65, 0x78, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x58, 0x0a, 0x11, 0x4c,
	0x69, 0x73, 0x74, 0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74,
	0x12, 0x20, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x43, 0x6c,
	0x69, 0x65, 0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x21, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74,
	0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a, 0x0f, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x6e, 0x74,
	0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x1e, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72,
	0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1f, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72,
	0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4f, 0x0a, 0x12, 0x44, 0x65, 0x6c,
	0x65, 0x74, 0x65, 0x43, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12,
	0x21, 0x2e, 0x6f, 0x70, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x43,
	0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x42, 0x40, 0x5a, 0x3e, 0x67, 0x69,
	0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x62, 0x7a,
	0x7a, 0x2f, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x6f, 0x70, 0x73, 0x2f, 0x61, 0x70, 0x69, 0x2f,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x6f, 0x70, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x67, 0x65, 0x6e,
	0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x3b, 0x6f, 0x70, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_ops_v1_context_proto_rawDescOnce sync.Once
	file_api_proto_ops_v1_context_proto_rawDescData = file_api_proto_ops_v1_context_proto_rawDesc
)

func file_api_proto_ops_v1_context_proto_rawDescGZIP() []byte {
	file_api_proto_ops_v1_context_proto_rawDescOnce.Do(func() {
		file_api_proto_ops_v1_context_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_ops_v1_context_proto_rawDescData)
	})
	return file_api_proto_ops_v1_context_proto_rawDescData
}

var file_api_proto_ops_v1_context_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_api_proto_ops_v1_context_proto_goTypes = []any{
	(*ContextEntry)(nil),              // 0: ops.v1.ContextEntry
	(*ListClientContextRequest)(nil),  // 1: ops.v1.ListClientContextRequest
	(*ListClientContextResponse)(nil), // 2: ops.v1.ListClientContextResponse
	(*AddContextEntryRequest)(nil),    // 3: ops.v1.AddContextEntryRequest
	(*AddContextEntryResponse)(nil),   // 4: ops.v1.AddContextEntryResponse
	(*DeleteContextEntryRequest)(nil), // 5: ops.v1.DeleteContextEntryRequest
	(ContextType)(0),                  // 6: ops.v1.ContextType
	(*timestamppb.Timestamp)(nil),     // 7: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),             // 8: google.protobuf.Empty
}
var file_api_proto_ops_v1_context_proto_depIdxs = []int32{
	6, // 0: ops.v1.ContextEntry.type:type_name -> ops.v1.ContextType
	7, // 1: ops.v1.ContextEntry.created_at:type_name -> google.protobuf.Timestamp
	0, // 2: ops.v1.ListClientContextResponse.entries:type_name -> ops.v1.ContextEntry
	6, // 3: ops.v1.AddContextEntryRequest.type:type_name -> ops.v1.ContextType
	0, // 4: ops.v1.AddContextEntryResponse.entry:type_name -> ops.v1.ContextEntry
	1, // 5: ops.v1.ContextService.ListClientContext:input_type -> ops.v1.ListClientContextRequest
	3, // 6: ops.v1.ContextService.AddContextEntry:input_type -> ops.v1.AddContextEntryRequest
	5, // 7: ops.v1.ContextService.DeleteContextEntry:input_type -> ops.v1.DeleteContextEntryRequest
	2, // 8: ops.v1.ContextService.ListClientContext:output_type -> ops.v1.ListClientContextResponse
	4, // 9: ops.v1.ContextService.AddContextEntry:output_type -> ops.v1.AddContextEntryResponse
	8, // 10: ops.v1.ContextService.DeleteContextEntry:output_type -> google.protobuf.Empty
	8, // [8:11] is the sub-list for method output_type
	5, // [5:8] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_api_proto_ops_v1_context_proto_init() }
func file_api_proto_ops_v1_context_proto_init() {
	if File_api_proto_ops_v1_context_proto != nil {
		return
	}
	file_api_proto_ops_v1_common_proto_init()
	file_api_proto_ops_v1_context_proto_msgTypes[0].OneofWrappers = []any{}
	file_api_proto_ops_v1_context_proto_msgTypes[1].OneofWrappers = []any{}
	file_api_proto_ops_v1_context_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_ops_v1_context_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_ops_v1_context_proto_goTypes,
		DependencyIndexes: file_api_proto_ops_v1_context_proto_depIdxs,
		MessageInfos:      file_api_proto_ops_v1_context_proto_msgTypes,
	}.Build()
	File_api_proto_ops_v1_context_proto = out.File
	file_api_proto_ops_v1_context_proto_rawDesc = nil
	file_api_proto_ops_v1_context_proto_goTypes = nil
	file_api_proto_ops_v1_context_proto_depIdxs = nil
}
