// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FieldEntry struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Key   string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	// "extraction" or "manual"; empty when the field is unset.
	Source        string `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldEntry) Reset() {
	*x = FieldEntry{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldEntry) ProtoMessage() {}

func (x *FieldEntry) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldEntry.ProtoReflect.Descriptor instead.
func (*FieldEntry) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *FieldEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *FieldEntry) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *FieldEntry) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type PartnerView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Fields        []*FieldEntry          `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PartnerView) Reset() {
	*x = PartnerView{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PartnerView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PartnerView) ProtoMessage() {}

func (x *PartnerView) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PartnerView.ProtoReflect.Descriptor instead.
func (*PartnerView) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *PartnerView) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *PartnerView) GetFields() []*FieldEntry {
	if x != nil {
		return x.Fields
	}
	return nil
}

type Draft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Partners      []*PartnerView         `protobuf:"bytes,4,rep,name=partners,proto3" json:"partners,omitempty"`
	CompanyFields []*FieldEntry          `protobuf:"bytes,5,rep,name=company_fields,json=companyFields,proto3" json:"company_fields,omitempty"`
	MissingFields []string               `protobuf:"bytes,6,rep,name=missing_fields,json=missingFields,proto3" json:"missing_fields,omitempty"`
	Complete      bool                   `protobuf:"varint,7,opt,name=complete,proto3" json:"complete,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Draft) Reset() {
	*x = Draft{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Draft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Draft) ProtoMessage() {}

func (x *Draft) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Draft.ProtoReflect.Descriptor instead.
func (*Draft) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *Draft) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Draft) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Draft) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Draft) GetPartners() []*PartnerView {
	if x != nil {
		return x.Partners
	}
	return nil
}

func (x *Draft) GetCompanyFields() []*FieldEntry {
	if x != nil {
		return x.CompanyFields
	}
	return nil
}

func (x *Draft) GetMissingFields() []string {
	if x != nil {
		return x.MissingFields
	}
	return nil
}

func (x *Draft) GetComplete() bool {
	if x != nil {
		return x.Complete
	}
	return false
}

func (x *Draft) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Draft) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	PartnerCount  int32                  `protobuf:"varint,2,opt,name=partner_count,json=partnerCount,proto3" json:"partner_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDraftRequest) Reset() {
	*x = CreateDraftRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDraftRequest) ProtoMessage() {}

func (x *CreateDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDraftRequest.ProtoReflect.Descriptor instead.
func (*CreateDraftRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *CreateDraftRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateDraftRequest) GetPartnerCount() int32 {
	if x != nil {
		return x.PartnerCount
	}
	return 0
}

type CreateDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Draft         *Draft                 `protobuf:"bytes,1,opt,name=draft,proto3" json:"draft,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDraftResponse) Reset() {
	*x = CreateDraftResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDraftResponse) ProtoMessage() {}

func (x *CreateDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDraftResponse.ProtoReflect.Descriptor instead.
func (*CreateDraftResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *CreateDraftResponse) GetDraft() *Draft {
	if x != nil {
		return x.Draft
	}
	return nil
}

type GetDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DraftId       string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDraftRequest) Reset() {
	*x = GetDraftRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDraftRequest) ProtoMessage() {}

func (x *GetDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDraftRequest.ProtoReflect.Descriptor instead.
func (*GetDraftRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *GetDraftRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

type GetDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Draft         *Draft                 `protobuf:"bytes,1,opt,name=draft,proto3" json:"draft,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDraftResponse) Reset() {
	*x = GetDraftResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDraftResponse) ProtoMessage() {}

func (x *GetDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDraftResponse.ProtoReflect.Descriptor instead.
func (*GetDraftResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *GetDraftResponse) GetDraft() *Draft {
	if x != nil {
		return x.Draft
	}
	return nil
}

type ListDraftsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDraftsRequest) Reset() {
	*x = ListDraftsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDraftsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDraftsRequest) ProtoMessage() {}

func (x *ListDraftsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDraftsRequest.ProtoReflect.Descriptor instead.
func (*ListDraftsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

type ListDraftsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Drafts        []*Draft               `protobuf:"bytes,1,rep,name=drafts,proto3" json:"drafts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDraftsResponse) Reset() {
	*x = ListDraftsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDraftsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDraftsResponse) ProtoMessage() {}

func (x *ListDraftsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDraftsResponse.ProtoReflect.Descriptor instead.
func (*ListDraftsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *ListDraftsResponse) GetDrafts() []*Draft {
	if x != nil {
		return x.Drafts
	}
	return nil
}

type UpdateFieldRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	DraftId string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	// Partner index, or -1 to address the company section.
	PartnerIndex int32  `protobuf:"varint,2,opt,name=partner_index,json=partnerIndex,proto3" json:"partner_index,omitempty"`
	Key          string `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	// Empty value clears the field.
	Value         string `protobuf:"bytes,4,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldRequest) Reset() {
	*x = UpdateFieldRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldRequest) ProtoMessage() {}

func (x *UpdateFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateFieldRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

func (x *UpdateFieldRequest) GetPartnerIndex() int32 {
	if x != nil {
		return x.PartnerIndex
	}
	return 0
}

func (x *UpdateFieldRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *UpdateFieldRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type UpdateFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Draft         *Draft                 `protobuf:"bytes,1,opt,name=draft,proto3" json:"draft,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldResponse) Reset() {
	*x = UpdateFieldResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldResponse) ProtoMessage() {}

func (x *UpdateFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateFieldResponse) GetDraft() *Draft {
	if x != nil {
		return x.Draft
	}
	return nil
}

type FinalizeDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DraftId       string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeDraftRequest) Reset() {
	*x = FinalizeDraftRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeDraftRequest) ProtoMessage() {}

func (x *FinalizeDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeDraftRequest.ProtoReflect.Descriptor instead.
func (*FinalizeDraftRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *FinalizeDraftRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

type FinalizeDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Draft         *Draft                 `protobuf:"bytes,1,opt,name=draft,proto3" json:"draft,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeDraftResponse) Reset() {
	*x = FinalizeDraftResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeDraftResponse) ProtoMessage() {}

func (x *FinalizeDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeDraftResponse.ProtoReflect.Descriptor instead.
func (*FinalizeDraftResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *FinalizeDraftResponse) GetDraft() *Draft {
	if x != nil {
		return x.Draft
	}
	return nil
}

type ExportDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DraftId       string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDraftRequest) Reset() {
	*x = ExportDraftRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDraftRequest) ProtoMessage() {}

func (x *ExportDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDraftRequest.ProtoReflect.Descriptor instead.
func (*ExportDraftRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{13}
}

func (x *ExportDraftRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

type ExportDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workbook      []byte                 `protobuf:"bytes,1,opt,name=workbook,proto3" json:"workbook,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDraftResponse) Reset() {
	*x = ExportDraftResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDraftResponse) ProtoMessage() {}

func (x *ExportDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDraftResponse.ProtoReflect.Descriptor instead.
func (*ExportDraftResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{14}
}

func (x *ExportDraftResponse) GetWorkbook() []byte {
	if x != nil {
		return x.Workbook
	}
	return nil
}

func (x *ExportDraftResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type DeleteDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DraftId       string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDraftRequest) Reset() {
	*x = DeleteDraftRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDraftRequest) ProtoMessage() {}

func (x *DeleteDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDraftRequest.ProtoReflect.Descriptor instead.
func (*DeleteDraftRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteDraftRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

type DeleteDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDraftResponse) Reset() {
	*x = DeleteDraftResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDraftResponse) ProtoMessage() {}

func (x *DeleteDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDraftResponse.ProtoReflect.Descriptor instead.
func (*DeleteDraftResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{16}
}

type UploadDocumentRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	DraftId string                 `protobuf:"bytes,1,opt,name=draft_id,json=draftId,proto3" json:"draft_id,omitempty"`
	// Partner index, or -1 for a company document.
	PartnerIndex int32 `protobuf:"varint,2,opt,name=partner_index,json=partnerIndex,proto3" json:"partner_index,omitempty"`
	// IDENTITY, ADDRESS_PROOF or COMPANY.
	Role     string `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Filename string `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	// Inline document bytes. When empty, source_path must name a file
	// reachable by the server.
	Content       []byte `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	SourcePath    string `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{17}
}

func (x *UploadDocumentRequest) GetDraftId() string {
	if x != nil {
		return x.DraftId
	}
	return ""
}

func (x *UploadDocumentRequest) GetPartnerIndex() int32 {
	if x != nil {
		return x.PartnerIndex
	}
	return 0
}

func (x *UploadDocumentRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadDocumentRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

type UploadDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FileExt        string                 `protobuf:"bytes,2,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Queued         bool                   `protobuf:"varint,6,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{18}
}

func (x *UploadDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UploadDocumentResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *UploadDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *UploadDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"L\n" +
	"\n" +
	"FieldEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"U\n" +
	"\vPartnerView\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x120\n" +
	"\x06fields\x18\x02 \x03(\v2\x18.contracts.v1.FieldEntryR\x06fields\"\xbc\x02\n" +
	"\x05Draft\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x125\n" +
	"\bpartners\x18\x04 \x03(\v2\x19.contracts.v1.PartnerViewR\bpartners\x12?\n" +
	"\x0ecompany_fields\x18\x05 \x03(\v2\x18.contracts.v1.FieldEntryR\rcompanyFields\x12%\n" +
	"\x0emissing_fields\x18\x06 \x03(\tR\rmissingFields\x12\x1a\n" +
	"\bcomplete\x18\a \x01(\bR\bcomplete\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"M\n" +
	"\x12CreateDraftRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rpartner_count\x18\x02 \x01(\x05R\fpartnerCount\"@\n" +
	"\x13CreateDraftResponse\x12)\n" +
	"\x05draft\x18\x01 \x01(\v2\x13.contracts.v1.DraftR\x05draft\",\n" +
	"\x0fGetDraftRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\"=\n" +
	"\x10GetDraftResponse\x12)\n" +
	"\x05draft\x18\x01 \x01(\v2\x13.contracts.v1.DraftR\x05draft\"\x13\n" +
	"\x11ListDraftsRequest\"A\n" +
	"\x12ListDraftsResponse\x12+\n" +
	"\x06drafts\x18\x01 \x03(\v2\x13.contracts.v1.DraftR\x06drafts\"|\n" +
	"\x12UpdateFieldRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\x12#\n" +
	"\rpartner_index\x18\x02 \x01(\x05R\fpartnerIndex\x12\x10\n" +
	"\x03key\x18\x03 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x04 \x01(\tR\x05value\"@\n" +
	"\x13UpdateFieldResponse\x12)\n" +
	"\x05draft\x18\x01 \x01(\v2\x13.contracts.v1.DraftR\x05draft\"1\n" +
	"\x14FinalizeDraftRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\"B\n" +
	"\x15FinalizeDraftResponse\x12)\n" +
	"\x05draft\x18\x01 \x01(\v2\x13.contracts.v1.DraftR\x05draft\"/\n" +
	"\x12ExportDraftRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\"M\n" +
	"\x13ExportDraftResponse\x12\x1a\n" +
	"\bworkbook\x18\x01 \x01(\fR\bworkbook\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"/\n" +
	"\x12DeleteDraftRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\"\x15\n" +
	"\x13DeleteDraftResponse\"\xc2\x01\n" +
	"\x15UploadDocumentRequest\x12\x19\n" +
	"\bdraft_id\x18\x01 \x01(\tR\adraftId\x12#\n" +
	"\rpartner_index\x18\x02 \x01(\x05R\fpartnerIndex\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\"\xdb\x01\n" +
	"\x16UploadDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bfile_ext\x18\x02 \x01(\tR\afileExt\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\bR\fdeduplicated\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x16\n" +
	"\x06queued\x18\x06 \x01(\bR\x06queued2\xd5\x04\n" +
	"\rDraftsService\x12R\n" +
	"\vCreateDraft\x12 .contracts.v1.CreateDraftRequest\x1a!.contracts.v1.CreateDraftResponse\x12I\n" +
	"\bGetDraft\x12\x1d.contracts.v1.GetDraftRequest\x1a\x1e.contracts.v1.GetDraftResponse\x12O\n" +
	"\n" +
	"ListDrafts\x12\x1f.contracts.v1.ListDraftsRequest\x1a .contracts.v1.ListDraftsResponse\x12R\n" +
	"\vUpdateField\x12 .contracts.v1.UpdateFieldRequest\x1a!.contracts.v1.UpdateFieldResponse\x12X\n" +
	"\rFinalizeDraft\x12\".contracts.v1.FinalizeDraftRequest\x1a#.contracts.v1.FinalizeDraftResponse\x12R\n" +
	"\vExportDraft\x12 .contracts.v1.ExportDraftRequest\x1a!.contracts.v1.ExportDraftResponse\x12R\n" +
	"\vDeleteDraft\x12 .contracts.v1.DeleteDraftRequest\x1a!.contracts.v1.DeleteDraftResponse2o\n" +
	"\x10IngestionService\x12[\n" +
	"\x0eUploadDocument\x12#.contracts.v1.UploadDocumentRequest\x1a$.contracts.v1.UploadDocumentResponseBGZEgithub.com/pcaldeira/contractdraft/gen/proto/contracts/v1;contractsv1b\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*FieldEntry)(nil),             // 0: contracts.v1.FieldEntry
	(*PartnerView)(nil),            // 1: contracts.v1.PartnerView
	(*Draft)(nil),                  // 2: contracts.v1.Draft
	(*CreateDraftRequest)(nil),     // 3: contracts.v1.CreateDraftRequest
	(*CreateDraftResponse)(nil),    // 4: contracts.v1.CreateDraftResponse
	(*GetDraftRequest)(nil),        // 5: contracts.v1.GetDraftRequest
	(*GetDraftResponse)(nil),       // 6: contracts.v1.GetDraftResponse
	(*ListDraftsRequest)(nil),      // 7: contracts.v1.ListDraftsRequest
	(*ListDraftsResponse)(nil),     // 8: contracts.v1.ListDraftsResponse
	(*UpdateFieldRequest)(nil),     // 9: contracts.v1.UpdateFieldRequest
	(*UpdateFieldResponse)(nil),    // 10: contracts.v1.UpdateFieldResponse
	(*FinalizeDraftRequest)(nil),   // 11: contracts.v1.FinalizeDraftRequest
	(*FinalizeDraftResponse)(nil),  // 12: contracts.v1.FinalizeDraftResponse
	(*ExportDraftRequest)(nil),     // 13: contracts.v1.ExportDraftRequest
	(*ExportDraftResponse)(nil),    // 14: contracts.v1.ExportDraftResponse
	(*DeleteDraftRequest)(nil),     // 15: contracts.v1.DeleteDraftRequest
	(*DeleteDraftResponse)(nil),    // 16: contracts.v1.DeleteDraftResponse
	(*UploadDocumentRequest)(nil),  // 17: contracts.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil), // 18: contracts.v1.UploadDocumentResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	0,  // 0: contracts.v1.PartnerView.fields:type_name -> contracts.v1.FieldEntry
	1,  // 1: contracts.v1.Draft.partners:type_name -> contracts.v1.PartnerView
	0,  // 2: contracts.v1.Draft.company_fields:type_name -> contracts.v1.FieldEntry
	2,  // 3: contracts.v1.CreateDraftResponse.draft:type_name -> contracts.v1.Draft
	2,  // 4: contracts.v1.GetDraftResponse.draft:type_name -> contracts.v1.Draft
	2,  // 5: contracts.v1.ListDraftsResponse.drafts:type_name -> contracts.v1.Draft
	2,  // 6: contracts.v1.UpdateFieldResponse.draft:type_name -> contracts.v1.Draft
	2,  // 7: contracts.v1.FinalizeDraftResponse.draft:type_name -> contracts.v1.Draft
	3,  // 8: contracts.v1.DraftsService.CreateDraft:input_type -> contracts.v1.CreateDraftRequest
	5,  // 9: contracts.v1.DraftsService.GetDraft:input_type -> contracts.v1.GetDraftRequest
	7,  // 10: contracts.v1.DraftsService.ListDrafts:input_type -> contracts.v1.ListDraftsRequest
	9,  // 11: contracts.v1.DraftsService.UpdateField:input_type -> contracts.v1.UpdateFieldRequest
	11, // 12: contracts.v1.DraftsService.FinalizeDraft:input_type -> contracts.v1.FinalizeDraftRequest
	13, // 13: contracts.v1.DraftsService.ExportDraft:input_type -> contracts.v1.ExportDraftRequest
	15, // 14: contracts.v1.DraftsService.DeleteDraft:input_type -> contracts.v1.DeleteDraftRequest
	17, // 15: contracts.v1.IngestionService.UploadDocument:input_type -> contracts.v1.UploadDocumentRequest
	4,  // 16: contracts.v1.DraftsService.CreateDraft:output_type -> contracts.v1.CreateDraftResponse
	6,  // 17: contracts.v1.DraftsService.GetDraft:output_type -> contracts.v1.GetDraftResponse
	8,  // 18: contracts.v1.DraftsService.ListDrafts:output_type -> contracts.v1.ListDraftsResponse
	10, // 19: contracts.v1.DraftsService.UpdateField:output_type -> contracts.v1.UpdateFieldResponse
	12, // 20: contracts.v1.DraftsService.FinalizeDraft:output_type -> contracts.v1.FinalizeDraftResponse
	14, // 21: contracts.v1.DraftsService.ExportDraft:output_type -> contracts.v1.ExportDraftResponse
	16, // 22: contracts.v1.DraftsService.DeleteDraft:output_type -> contracts.v1.DeleteDraftResponse
	18, // 23: contracts.v1.IngestionService.UploadDocument:output_type -> contracts.v1.UploadDocumentResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
