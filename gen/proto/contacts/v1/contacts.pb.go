// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contacts/v1/contacts.proto

package contactsv1

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

type ExportFormat int32

const (
	ExportFormat_EXPORT_FORMAT_UNSPECIFIED ExportFormat = 0
	ExportFormat_EXPORT_FORMAT_XLSX        ExportFormat = 1
	ExportFormat_EXPORT_FORMAT_VCARD       ExportFormat = 2
)

// Enum value maps for ExportFormat.
var (
	ExportFormat_name = map[int32]string{
		0: "EXPORT_FORMAT_UNSPECIFIED",
		1: "EXPORT_FORMAT_XLSX",
		2: "EXPORT_FORMAT_VCARD",
	}
	ExportFormat_value = map[string]int32{
		"EXPORT_FORMAT_UNSPECIFIED": 0,
		"EXPORT_FORMAT_XLSX":        1,
		"EXPORT_FORMAT_VCARD":       2,
	}
)

func (x ExportFormat) Enum() *ExportFormat {
	p := new(ExportFormat)
	*p = x
	return p
}

func (x ExportFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExportFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_contacts_v1_contacts_proto_enumTypes[0].Descriptor()
}

func (ExportFormat) Type() protoreflect.EnumType {
	return &file_contacts_v1_contacts_proto_enumTypes[0]
}

func (x ExportFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExportFormat.Descriptor instead.
func (ExportFormat) EnumDescriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{0}
}

// One detected field with its heuristic confidence (0 = not found).
type ExtractedField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SourceText    string                 `protobuf:"bytes,3,opt,name=source_text,json=sourceText,proto3" json:"source_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ExtractedField) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedField) GetSourceText() string {
	if x != nil {
		return x.SourceText
	}
	return ""
}

// Fixed-shape extraction result; all six fields are always present.
type ExtractedContact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          *ExtractedField        `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Company       *ExtractedField        `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Phone         *ExtractedField        `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         *ExtractedField        `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Address       *ExtractedField        `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	Website       *ExtractedField        `protobuf:"bytes,6,opt,name=website,proto3" json:"website,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedContact) Reset() {
	*x = ExtractedContact{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedContact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedContact) ProtoMessage() {}

func (x *ExtractedContact) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedContact.ProtoReflect.Descriptor instead.
func (*ExtractedContact) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractedContact) GetName() *ExtractedField {
	if x != nil {
		return x.Name
	}
	return nil
}

func (x *ExtractedContact) GetCompany() *ExtractedField {
	if x != nil {
		return x.Company
	}
	return nil
}

func (x *ExtractedContact) GetPhone() *ExtractedField {
	if x != nil {
		return x.Phone
	}
	return nil
}

func (x *ExtractedContact) GetEmail() *ExtractedField {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *ExtractedContact) GetAddress() *ExtractedField {
	if x != nil {
		return x.Address
	}
	return nil
}

func (x *ExtractedContact) GetWebsite() *ExtractedField {
	if x != nil {
		return x.Website
	}
	return nil
}

type FieldConfidence struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          float32                `protobuf:"fixed32,1,opt,name=name,proto3" json:"name,omitempty"`
	Company       float32                `protobuf:"fixed32,2,opt,name=company,proto3" json:"company,omitempty"`
	Phone         float32                `protobuf:"fixed32,3,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         float32                `protobuf:"fixed32,4,opt,name=email,proto3" json:"email,omitempty"`
	Address       float32                `protobuf:"fixed32,5,opt,name=address,proto3" json:"address,omitempty"`
	Website       float32                `protobuf:"fixed32,6,opt,name=website,proto3" json:"website,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldConfidence) Reset() {
	*x = FieldConfidence{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldConfidence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldConfidence) ProtoMessage() {}

func (x *FieldConfidence) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldConfidence.ProtoReflect.Descriptor instead.
func (*FieldConfidence) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{2}
}

func (x *FieldConfidence) GetName() float32 {
	if x != nil {
		return x.Name
	}
	return 0
}

func (x *FieldConfidence) GetCompany() float32 {
	if x != nil {
		return x.Company
	}
	return 0
}

func (x *FieldConfidence) GetPhone() float32 {
	if x != nil {
		return x.Phone
	}
	return 0
}

func (x *FieldConfidence) GetEmail() float32 {
	if x != nil {
		return x.Email
	}
	return 0
}

func (x *FieldConfidence) GetAddress() float32 {
	if x != nil {
		return x.Address
	}
	return 0
}

func (x *FieldConfidence) GetWebsite() float32 {
	if x != nil {
		return x.Website
	}
	return 0
}

type Contact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,4,opt,name=company,proto3" json:"company,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         string                 `protobuf:"bytes,6,opt,name=email,proto3" json:"email,omitempty"`
	Address       string                 `protobuf:"bytes,7,opt,name=address,proto3" json:"address,omitempty"`
	Website       string                 `protobuf:"bytes,8,opt,name=website,proto3" json:"website,omitempty"`
	Tags          []string               `protobuf:"bytes,9,rep,name=tags,proto3" json:"tags,omitempty"`
	Notes         string                 `protobuf:"bytes,10,opt,name=notes,proto3" json:"notes,omitempty"`
	OcrConfidence *FieldConfidence       `protobuf:"bytes,11,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ScanSource    string                 `protobuf:"bytes,12,opt,name=scan_source,json=scanSource,proto3" json:"scan_source,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contact) Reset() {
	*x = Contact{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contact) ProtoMessage() {}

func (x *Contact) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contact.ProtoReflect.Descriptor instead.
func (*Contact) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{3}
}

func (x *Contact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contact) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Contact) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Contact) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Contact) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Contact) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Contact) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Contact) GetWebsite() string {
	if x != nil {
		return x.Website
	}
	return ""
}

func (x *Contact) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Contact) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Contact) GetOcrConfidence() *FieldConfidence {
	if x != nil {
		return x.OcrConfidence
	}
	return nil
}

func (x *Contact) GetScanSource() string {
	if x != nil {
		return x.ScanSource
	}
	return ""
}

func (x *Contact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contact) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type DuplicateMatch struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	IsDuplicate    bool                   `protobuf:"varint,1,opt,name=is_duplicate,json=isDuplicate,proto3" json:"is_duplicate,omitempty"`
	MatchedContact *Contact               `protobuf:"bytes,2,opt,name=matched_contact,json=matchedContact,proto3" json:"matched_contact,omitempty"`
	MatchScore     int32                  `protobuf:"varint,3,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	MatchReasons   []string               `protobuf:"bytes,4,rep,name=match_reasons,json=matchReasons,proto3" json:"match_reasons,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DuplicateMatch) Reset() {
	*x = DuplicateMatch{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DuplicateMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DuplicateMatch) ProtoMessage() {}

func (x *DuplicateMatch) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DuplicateMatch.ProtoReflect.Descriptor instead.
func (*DuplicateMatch) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{4}
}

func (x *DuplicateMatch) GetIsDuplicate() bool {
	if x != nil {
		return x.IsDuplicate
	}
	return false
}

func (x *DuplicateMatch) GetMatchedContact() *Contact {
	if x != nil {
		return x.MatchedContact
	}
	return nil
}

func (x *DuplicateMatch) GetMatchScore() int32 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *DuplicateMatch) GetMatchReasons() []string {
	if x != nil {
		return x.MatchReasons
	}
	return nil
}

type ScanJob struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId          string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ContactId        string                 `protobuf:"bytes,3,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	RawText          string                 `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Source           string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Status           string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt        string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt       string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Extracted        *ExtractedContact      `protobuf:"bytes,10,opt,name=extracted,proto3" json:"extracted,omitempty"`
	IsDuplicate      bool                   `protobuf:"varint,11,opt,name=is_duplicate,json=isDuplicate,proto3" json:"is_duplicate,omitempty"`
	MatchScore       int32                  `protobuf:"varint,12,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	MatchedContactId string                 `protobuf:"bytes,13,opt,name=matched_contact_id,json=matchedContactId,proto3" json:"matched_contact_id,omitempty"`
	MatchReasons     []string               `protobuf:"bytes,14,rep,name=match_reasons,json=matchReasons,proto3" json:"match_reasons,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ScanJob) Reset() {
	*x = ScanJob{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanJob) ProtoMessage() {}

func (x *ScanJob) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanJob.ProtoReflect.Descriptor instead.
func (*ScanJob) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{5}
}

func (x *ScanJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanJob) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ScanJob) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

func (x *ScanJob) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ScanJob) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ScanJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ScanJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ScanJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ScanJob) GetExtracted() *ExtractedContact {
	if x != nil {
		return x.Extracted
	}
	return nil
}

func (x *ScanJob) GetIsDuplicate() bool {
	if x != nil {
		return x.IsDuplicate
	}
	return false
}

func (x *ScanJob) GetMatchScore() int32 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *ScanJob) GetMatchedContactId() string {
	if x != nil {
		return x.MatchedContactId
	}
	return ""
}

func (x *ScanJob) GetMatchReasons() []string {
	if x != nil {
		return x.MatchReasons
	}
	return nil
}

type ExtractFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFieldsRequest) Reset() {
	*x = ExtractFieldsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFieldsRequest) ProtoMessage() {}

func (x *ExtractFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFieldsRequest.ProtoReflect.Descriptor instead.
func (*ExtractFieldsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractFieldsRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ExtractFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *ExtractedContact      `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFieldsResponse) Reset() {
	*x = ExtractFieldsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFieldsResponse) ProtoMessage() {}

func (x *ExtractFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFieldsResponse.ProtoReflect.Descriptor instead.
func (*ExtractFieldsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{7}
}

func (x *ExtractFieldsResponse) GetContact() *ExtractedContact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type CheckDuplicateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckDuplicateRequest) Reset() {
	*x = CheckDuplicateRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckDuplicateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckDuplicateRequest) ProtoMessage() {}

func (x *CheckDuplicateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckDuplicateRequest.ProtoReflect.Descriptor instead.
func (*CheckDuplicateRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{8}
}

func (x *CheckDuplicateRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CheckDuplicateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CheckDuplicateRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *CheckDuplicateRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CheckDuplicateRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CheckDuplicateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Match         *DuplicateMatch        `protobuf:"bytes,1,opt,name=match,proto3" json:"match,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckDuplicateResponse) Reset() {
	*x = CheckDuplicateResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckDuplicateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckDuplicateResponse) ProtoMessage() {}

func (x *CheckDuplicateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckDuplicateResponse.ProtoReflect.Descriptor instead.
func (*CheckDuplicateResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{9}
}

func (x *CheckDuplicateResponse) GetMatch() *DuplicateMatch {
	if x != nil {
		return x.Match
	}
	return nil
}

type SubmitScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"` // CAMERA | UPLOAD | MANUAL
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScanRequest) Reset() {
	*x = SubmitScanRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScanRequest) ProtoMessage() {}

func (x *SubmitScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScanRequest.ProtoReflect.Descriptor instead.
func (*SubmitScanRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{10}
}

func (x *SubmitScanRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SubmitScanRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *SubmitScanRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type SubmitScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScanResponse) Reset() {
	*x = SubmitScanResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScanResponse) ProtoMessage() {}

func (x *SubmitScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScanResponse.ProtoReflect.Descriptor instead.
func (*SubmitScanResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{11}
}

func (x *SubmitScanResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetScanJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobRequest) Reset() {
	*x = GetScanJobRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobRequest) ProtoMessage() {}

func (x *GetScanJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobRequest.ProtoReflect.Descriptor instead.
func (*GetScanJobRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{12}
}

func (x *GetScanJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetScanJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetScanJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobResponse) Reset() {
	*x = GetScanJobResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobResponse) ProtoMessage() {}

func (x *GetScanJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobResponse.ProtoReflect.Descriptor instead.
func (*GetScanJobResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{13}
}

func (x *GetScanJobResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type CreateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Address       string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	Website       string                 `protobuf:"bytes,7,opt,name=website,proto3" json:"website,omitempty"`
	Tags          []string               `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	Notes         string                 `protobuf:"bytes,9,opt,name=notes,proto3" json:"notes,omitempty"`
	OcrConfidence *FieldConfidence       `protobuf:"bytes,10,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ScanSource    string                 `protobuf:"bytes,11,opt,name=scan_source,json=scanSource,proto3" json:"scan_source,omitempty"`
	// optional link back to the scan job this contact came from
	ScanJobId     string `protobuf:"bytes,12,opt,name=scan_job_id,json=scanJobId,proto3" json:"scan_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactRequest) Reset() {
	*x = CreateContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactRequest) ProtoMessage() {}

func (x *CreateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactRequest.ProtoReflect.Descriptor instead.
func (*CreateContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{14}
}

func (x *CreateContactRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateContactRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateContactRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *CreateContactRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateContactRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateContactRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreateContactRequest) GetWebsite() string {
	if x != nil {
		return x.Website
	}
	return ""
}

func (x *CreateContactRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *CreateContactRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *CreateContactRequest) GetOcrConfidence() *FieldConfidence {
	if x != nil {
		return x.OcrConfidence
	}
	return nil
}

func (x *CreateContactRequest) GetScanSource() string {
	if x != nil {
		return x.ScanSource
	}
	return ""
}

func (x *CreateContactRequest) GetScanJobId() string {
	if x != nil {
		return x.ScanJobId
	}
	return ""
}

type CreateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactResponse) Reset() {
	*x = CreateContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactResponse) ProtoMessage() {}

func (x *CreateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactResponse.ProtoReflect.Descriptor instead.
func (*CreateContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{15}
}

func (x *CreateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type GetContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ContactId     string                 `protobuf:"bytes,2,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactRequest) Reset() {
	*x = GetContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactRequest) ProtoMessage() {}

func (x *GetContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactRequest.ProtoReflect.Descriptor instead.
func (*GetContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{16}
}

func (x *GetContactRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

type GetContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactResponse) Reset() {
	*x = GetContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactResponse) ProtoMessage() {}

func (x *GetContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactResponse.ProtoReflect.Descriptor instead.
func (*GetContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{17}
}

func (x *GetContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type UpdateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ContactId     string                 `protobuf:"bytes,2,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	Name          *string                `protobuf:"bytes,3,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Company       *string                `protobuf:"bytes,4,opt,name=company,proto3,oneof" json:"company,omitempty"`
	Phone         *string                `protobuf:"bytes,5,opt,name=phone,proto3,oneof" json:"phone,omitempty"`
	Email         *string                `protobuf:"bytes,6,opt,name=email,proto3,oneof" json:"email,omitempty"`
	Address       *string                `protobuf:"bytes,7,opt,name=address,proto3,oneof" json:"address,omitempty"`
	Website       *string                `protobuf:"bytes,8,opt,name=website,proto3,oneof" json:"website,omitempty"`
	Tags          []string               `protobuf:"bytes,9,rep,name=tags,proto3" json:"tags,omitempty"`
	UpdateTags    bool                   `protobuf:"varint,10,opt,name=update_tags,json=updateTags,proto3" json:"update_tags,omitempty"`
	Notes         *string                `protobuf:"bytes,11,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactRequest) Reset() {
	*x = UpdateContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactRequest) ProtoMessage() {}

func (x *UpdateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactRequest.ProtoReflect.Descriptor instead.
func (*UpdateContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{18}
}

func (x *UpdateContactRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *UpdateContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

func (x *UpdateContactRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateContactRequest) GetCompany() string {
	if x != nil && x.Company != nil {
		return *x.Company
	}
	return ""
}

func (x *UpdateContactRequest) GetPhone() string {
	if x != nil && x.Phone != nil {
		return *x.Phone
	}
	return ""
}

func (x *UpdateContactRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpdateContactRequest) GetAddress() string {
	if x != nil && x.Address != nil {
		return *x.Address
	}
	return ""
}

func (x *UpdateContactRequest) GetWebsite() string {
	if x != nil && x.Website != nil {
		return *x.Website
	}
	return ""
}

func (x *UpdateContactRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *UpdateContactRequest) GetUpdateTags() bool {
	if x != nil {
		return x.UpdateTags
	}
	return false
}

func (x *UpdateContactRequest) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

type UpdateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactResponse) Reset() {
	*x = UpdateContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactResponse) ProtoMessage() {}

func (x *UpdateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactResponse.ProtoReflect.Descriptor instead.
func (*UpdateContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{19}
}

func (x *UpdateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type DeleteContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ContactId     string                 `protobuf:"bytes,2,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactRequest) Reset() {
	*x = DeleteContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactRequest) ProtoMessage() {}

func (x *DeleteContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactRequest.ProtoReflect.Descriptor instead.
func (*DeleteContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{20}
}

func (x *DeleteContactRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *DeleteContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

type DeleteContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactResponse) Reset() {
	*x = DeleteContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactResponse) ProtoMessage() {}

func (x *DeleteContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactResponse.ProtoReflect.Descriptor instead.
func (*DeleteContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{21}
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Tags          []string               `protobuf:"bytes,2,rep,name=tags,proto3" json:"tags,omitempty"`
	Search        string                 `protobuf:"bytes,3,opt,name=search,proto3" json:"search,omitempty"`
	SortBy        string                 `protobuf:"bytes,4,opt,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"` // name | company | created_at
	SortDesc      bool                   `protobuf:"varint,5,opt,name=sort_desc,json=sortDesc,proto3" json:"sort_desc,omitempty"`
	FromDate      string                 `protobuf:"bytes,6,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,7,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{22}
}

func (x *ListContactsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListContactsRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *ListContactsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *ListContactsRequest) GetSortBy() string {
	if x != nil {
		return x.SortBy
	}
	return ""
}

func (x *ListContactsRequest) GetSortDesc() bool {
	if x != nil {
		return x.SortDesc
	}
	return false
}

func (x *ListContactsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListContactsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*Contact             `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{23}
}

func (x *ListContactsResponse) GetContacts() []*Contact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

type ImportContactsRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	// JSON array of contacts, validated against the backup schema
	Payload       []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportContactsRequest) Reset() {
	*x = ImportContactsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportContactsRequest) ProtoMessage() {}

func (x *ImportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportContactsRequest.ProtoReflect.Descriptor instead.
func (*ImportContactsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{24}
}

func (x *ImportContactsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ImportContactsRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type ImportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imported      int32                  `protobuf:"varint,1,opt,name=imported,proto3" json:"imported,omitempty"`
	Skipped       int32                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Errors        []string               `protobuf:"bytes,3,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportContactsResponse) Reset() {
	*x = ImportContactsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportContactsResponse) ProtoMessage() {}

func (x *ImportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportContactsResponse.ProtoReflect.Descriptor instead.
func (*ImportContactsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{25}
}

func (x *ImportContactsResponse) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

func (x *ImportContactsResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ImportContactsResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ExportContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Format        ExportFormat           `protobuf:"varint,2,opt,name=format,proto3,enum=contacts.v1.ExportFormat" json:"format,omitempty"`
	Tags          []string               `protobuf:"bytes,3,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsRequest) Reset() {
	*x = ExportContactsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsRequest) ProtoMessage() {}

func (x *ExportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsRequest.ProtoReflect.Descriptor instead.
func (*ExportContactsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{26}
}

func (x *ExportContactsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExportContactsRequest) GetFormat() ExportFormat {
	if x != nil {
		return x.Format
	}
	return ExportFormat_EXPORT_FORMAT_UNSPECIFIED
}

func (x *ExportContactsRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type ExportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsResponse) Reset() {
	*x = ExportContactsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsResponse) ProtoMessage() {}

func (x *ExportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsResponse.ProtoReflect.Descriptor instead.
func (*ExportContactsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{27}
}

func (x *ExportContactsResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExportContactsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_contacts_v1_contacts_proto protoreflect.FileDescriptor

const file_contacts_v1_contacts_proto_rawDesc = "" +
	"\n" +
	"\x1acontacts/v1/contacts.proto\x12\vcontacts.v1\"g\n" +
	"\x0eExtractedField\x12\x14\n" +
	"\x05value\x18\x01 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vsource_text\x18\x03 \x01(\tR\n" +
	"sourceText\"\xce\x02\n" +
	"\x10ExtractedContact\x12/\n" +
	"\x04name\x18\x01 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\x04name\x125\n" +
	"\acompany\x18\x02 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\acompany\x121\n" +
	"\x05phone\x18\x03 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\x05phone\x121\n" +
	"\x05email\x18\x04 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\x05email\x125\n" +
	"\aaddress\x18\x05 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\aaddress\x125\n" +
	"\awebsite\x18\x06 \x01(\v2\x1b.contacts.v1.ExtractedFieldR\awebsite\"\x9f\x01\n" +
	"\x0fFieldConfidence\x12\x12\n" +
	"\x04name\x18\x01 \x01(\x02R\x04name\x12\x18\n" +
	"\acompany\x18\x02 \x01(\x02R\acompany\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\x02R\x05phone\x12\x14\n" +
	"\x05email\x18\x04 \x01(\x02R\x05email\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\x02R\aaddress\x12\x18\n" +
	"\awebsite\x18\x06 \x01(\x02R\awebsite\"\x90\x03\n" +
	"\aContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x04 \x01(\tR\acompany\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x14\n" +
	"\x05email\x18\x06 \x01(\tR\x05email\x12\x18\n" +
	"\aaddress\x18\a \x01(\tR\aaddress\x12\x18\n" +
	"\awebsite\x18\b \x01(\tR\awebsite\x12\x12\n" +
	"\x04tags\x18\t \x03(\tR\x04tags\x12\x14\n" +
	"\x05notes\x18\n" +
	" \x01(\tR\x05notes\x12C\n" +
	"\x0eocr_confidence\x18\v \x01(\v2\x1c.contacts.v1.FieldConfidenceR\rocrConfidence\x12\x1f\n" +
	"\vscan_source\x18\f \x01(\tR\n" +
	"scanSource\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xb8\x01\n" +
	"\x0eDuplicateMatch\x12!\n" +
	"\fis_duplicate\x18\x01 \x01(\bR\visDuplicate\x12=\n" +
	"\x0fmatched_contact\x18\x02 \x01(\v2\x14.contacts.v1.ContactR\x0ematchedContact\x12\x1f\n" +
	"\vmatch_score\x18\x03 \x01(\x05R\n" +
	"matchScore\x12#\n" +
	"\rmatch_reasons\x18\x04 \x03(\tR\fmatchReasons\"\xd7\x03\n" +
	"\aScanJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x03 \x01(\tR\tcontactId\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12;\n" +
	"\textracted\x18\n" +
	" \x01(\v2\x1d.contacts.v1.ExtractedContactR\textracted\x12!\n" +
	"\fis_duplicate\x18\v \x01(\bR\visDuplicate\x12\x1f\n" +
	"\vmatch_score\x18\f \x01(\x05R\n" +
	"matchScore\x12,\n" +
	"\x12matched_contact_id\x18\r \x01(\tR\x10matchedContactId\x12#\n" +
	"\rmatch_reasons\x18\x0e \x03(\tR\fmatchReasons\"1\n" +
	"\x14ExtractFieldsRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\"P\n" +
	"\x15ExtractFieldsResponse\x127\n" +
	"\acontact\x18\x01 \x01(\v2\x1d.contacts.v1.ExtractedContactR\acontact\"\x8c\x01\n" +
	"\x15CheckDuplicateRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\"K\n" +
	"\x16CheckDuplicateResponse\x121\n" +
	"\x05match\x18\x01 \x01(\v2\x1b.contacts.v1.DuplicateMatchR\x05match\"a\n" +
	"\x11SubmitScanRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"<\n" +
	"\x12SubmitScanResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.contacts.v1.ScanJobR\x03job\"E\n" +
	"\x11GetScanJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"<\n" +
	"\x12GetScanJobResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.contacts.v1.ScanJobR\x03job\"\xef\x02\n" +
	"\x14CreateContactRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\x12\x18\n" +
	"\awebsite\x18\a \x01(\tR\awebsite\x12\x12\n" +
	"\x04tags\x18\b \x03(\tR\x04tags\x12\x14\n" +
	"\x05notes\x18\t \x01(\tR\x05notes\x12C\n" +
	"\x0eocr_confidence\x18\n" +
	" \x01(\v2\x1c.contacts.v1.FieldConfidenceR\rocrConfidence\x12\x1f\n" +
	"\vscan_source\x18\v \x01(\tR\n" +
	"scanSource\x12\x1e\n" +
	"\vscan_job_id\x18\f \x01(\tR\tscanJobId\"G\n" +
	"\x15CreateContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"M\n" +
	"\x11GetContactRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x02 \x01(\tR\tcontactId\"D\n" +
	"\x12GetContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"\x97\x03\n" +
	"\x14UpdateContactRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x02 \x01(\tR\tcontactId\x12\x17\n" +
	"\x04name\x18\x03 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x1d\n" +
	"\acompany\x18\x04 \x01(\tH\x01R\acompany\x88\x01\x01\x12\x19\n" +
	"\x05phone\x18\x05 \x01(\tH\x02R\x05phone\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x06 \x01(\tH\x03R\x05email\x88\x01\x01\x12\x1d\n" +
	"\aaddress\x18\a \x01(\tH\x04R\aaddress\x88\x01\x01\x12\x1d\n" +
	"\awebsite\x18\b \x01(\tH\x05R\awebsite\x88\x01\x01\x12\x12\n" +
	"\x04tags\x18\t \x03(\tR\x04tags\x12\x1f\n" +
	"\vupdate_tags\x18\n" +
	" \x01(\bR\n" +
	"updateTags\x12\x19\n" +
	"\x05notes\x18\v \x01(\tH\x06R\x05notes\x88\x01\x01B\a\n" +
	"\x05_nameB\n" +
	"\n" +
	"\b_companyB\b\n" +
	"\x06_phoneB\b\n" +
	"\x06_emailB\n" +
	"\n" +
	"\b_addressB\n" +
	"\n" +
	"\b_websiteB\b\n" +
	"\x06_notes\"G\n" +
	"\x15UpdateContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"P\n" +
	"\x14DeleteContactRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x02 \x01(\tR\tcontactId\"\x17\n" +
	"\x15DeleteContactResponse\"\xc8\x01\n" +
	"\x13ListContactsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04tags\x18\x02 \x03(\tR\x04tags\x12\x16\n" +
	"\x06search\x18\x03 \x01(\tR\x06search\x12\x17\n" +
	"\asort_by\x18\x04 \x01(\tR\x06sortBy\x12\x1b\n" +
	"\tsort_desc\x18\x05 \x01(\bR\bsortDesc\x12\x1b\n" +
	"\tfrom_date\x18\x06 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\a \x01(\tR\x06toDate\"H\n" +
	"\x14ListContactsResponse\x120\n" +
	"\bcontacts\x18\x01 \x03(\v2\x14.contacts.v1.ContactR\bcontacts\"L\n" +
	"\x15ImportContactsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\"f\n" +
	"\x16ImportContactsResponse\x12\x1a\n" +
	"\bimported\x18\x01 \x01(\x05R\bimported\x12\x18\n" +
	"\askipped\x18\x02 \x01(\x05R\askipped\x12\x16\n" +
	"\x06errors\x18\x03 \x03(\tR\x06errors\"y\n" +
	"\x15ExportContactsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x121\n" +
	"\x06format\x18\x02 \x01(\x0e2\x19.contacts.v1.ExportFormatR\x06format\x12\x12\n" +
	"\x04tags\x18\x03 \x03(\tR\x04tags\"H\n" +
	"\x16ExportContactsResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename*^\n" +
	"\fExportFormat\x12\x1d\n" +
	"\x19EXPORT_FORMAT_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12EXPORT_FORMAT_XLSX\x10\x01\x12\x17\n" +
	"\x13EXPORT_FORMAT_VCARD\x10\x022\xc4\a\n" +
	"\x0fContactsService\x12V\n" +
	"\rExtractFields\x12!.contacts.v1.ExtractFieldsRequest\x1a\".contacts.v1.ExtractFieldsResponse\x12Y\n" +
	"\x0eCheckDuplicate\x12\".contacts.v1.CheckDuplicateRequest\x1a#.contacts.v1.CheckDuplicateResponse\x12M\n" +
	"\n" +
	"SubmitScan\x12\x1e.contacts.v1.SubmitScanRequest\x1a\x1f.contacts.v1.SubmitScanResponse\x12M\n" +
	"\n" +
	"GetScanJob\x12\x1e.contacts.v1.GetScanJobRequest\x1a\x1f.contacts.v1.GetScanJobResponse\x12V\n" +
	"\rCreateContact\x12!.contacts.v1.CreateContactRequest\x1a\".contacts.v1.CreateContactResponse\x12M\n" +
	"\n" +
	"GetContact\x12\x1e.contacts.v1.GetContactRequest\x1a\x1f.contacts.v1.GetContactResponse\x12V\n" +
	"\rUpdateContact\x12!.contacts.v1.UpdateContactRequest\x1a\".contacts.v1.UpdateContactResponse\x12V\n" +
	"\rDeleteContact\x12!.contacts.v1.DeleteContactRequest\x1a\".contacts.v1.DeleteContactResponse\x12S\n" +
	"\fListContacts\x12 .contacts.v1.ListContactsRequest\x1a!.contacts.v1.ListContactsResponse\x12Y\n" +
	"\x0eImportContacts\x12\".contacts.v1.ImportContactsRequest\x1a#.contacts.v1.ImportContactsResponse\x12Y\n" +
	"\x0eExportContacts\x12\".contacts.v1.ExportContactsRequest\x1a#.contacts.v1.ExportContactsResponseBAZ?github.com/cardvault/cardvault/gen/proto/contacts/v1;contactsv1b\x06proto3"

var (
	file_contacts_v1_contacts_proto_rawDescOnce sync.Once
	file_contacts_v1_contacts_proto_rawDescData []byte
)

func file_contacts_v1_contacts_proto_rawDescGZIP() []byte {
	file_contacts_v1_contacts_proto_rawDescOnce.Do(func() {
		file_contacts_v1_contacts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contacts_v1_contacts_proto_rawDesc), len(file_contacts_v1_contacts_proto_rawDesc)))
	})
	return file_contacts_v1_contacts_proto_rawDescData
}

var file_contacts_v1_contacts_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_contacts_v1_contacts_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_contacts_v1_contacts_proto_goTypes = []any{
	(ExportFormat)(0),              // 0: contacts.v1.ExportFormat
	(*ExtractedField)(nil),         // 1: contacts.v1.ExtractedField
	(*ExtractedContact)(nil),       // 2: contacts.v1.ExtractedContact
	(*FieldConfidence)(nil),        // 3: contacts.v1.FieldConfidence
	(*Contact)(nil),                // 4: contacts.v1.Contact
	(*DuplicateMatch)(nil),         // 5: contacts.v1.DuplicateMatch
	(*ScanJob)(nil),                // 6: contacts.v1.ScanJob
	(*ExtractFieldsRequest)(nil),   // 7: contacts.v1.ExtractFieldsRequest
	(*ExtractFieldsResponse)(nil),  // 8: contacts.v1.ExtractFieldsResponse
	(*CheckDuplicateRequest)(nil),  // 9: contacts.v1.CheckDuplicateRequest
	(*CheckDuplicateResponse)(nil), // 10: contacts.v1.CheckDuplicateResponse
	(*SubmitScanRequest)(nil),      // 11: contacts.v1.SubmitScanRequest
	(*SubmitScanResponse)(nil),     // 12: contacts.v1.SubmitScanResponse
	(*GetScanJobRequest)(nil),      // 13: contacts.v1.GetScanJobRequest
	(*GetScanJobResponse)(nil),     // 14: contacts.v1.GetScanJobResponse
	(*CreateContactRequest)(nil),   // 15: contacts.v1.CreateContactRequest
	(*CreateContactResponse)(nil),  // 16: contacts.v1.CreateContactResponse
	(*GetContactRequest)(nil),      // 17: contacts.v1.GetContactRequest
	(*GetContactResponse)(nil),     // 18: contacts.v1.GetContactResponse
	(*UpdateContactRequest)(nil),   // 19: contacts.v1.UpdateContactRequest
	(*UpdateContactResponse)(nil),  // 20: contacts.v1.UpdateContactResponse
	(*DeleteContactRequest)(nil),   // 21: contacts.v1.DeleteContactRequest
	(*DeleteContactResponse)(nil),  // 22: contacts.v1.DeleteContactResponse
	(*ListContactsRequest)(nil),    // 23: contacts.v1.ListContactsRequest
	(*ListContactsResponse)(nil),   // 24: contacts.v1.ListContactsResponse
	(*ImportContactsRequest)(nil),  // 25: contacts.v1.ImportContactsRequest
	(*ImportContactsResponse)(nil), // 26: contacts.v1.ImportContactsResponse
	(*ExportContactsRequest)(nil),  // 27: contacts.v1.ExportContactsRequest
	(*ExportContactsResponse)(nil), // 28: contacts.v1.ExportContactsResponse
}
var file_contacts_v1_contacts_proto_depIdxs = []int32{
	1,  // 0: contacts.v1.ExtractedContact.name:type_name -> contacts.v1.ExtractedField
	1,  // 1: contacts.v1.ExtractedContact.company:type_name -> contacts.v1.ExtractedField
	1,  // 2: contacts.v1.ExtractedContact.phone:type_name -> contacts.v1.ExtractedField
	1,  // 3: contacts.v1.ExtractedContact.email:type_name -> contacts.v1.ExtractedField
	1,  // 4: contacts.v1.ExtractedContact.address:type_name -> contacts.v1.ExtractedField
	1,  // 5: contacts.v1.ExtractedContact.website:type_name -> contacts.v1.ExtractedField
	3,  // 6: contacts.v1.Contact.ocr_confidence:type_name -> contacts.v1.FieldConfidence
	4,  // 7: contacts.v1.DuplicateMatch.matched_contact:type_name -> contacts.v1.Contact
	2,  // 8: contacts.v1.ScanJob.extracted:type_name -> contacts.v1.ExtractedContact
	2,  // 9: contacts.v1.ExtractFieldsResponse.contact:type_name -> contacts.v1.ExtractedContact
	5,  // 10: contacts.v1.CheckDuplicateResponse.match:type_name -> contacts.v1.DuplicateMatch
	6,  // 11: contacts.v1.SubmitScanResponse.job:type_name -> contacts.v1.ScanJob
	6,  // 12: contacts.v1.GetScanJobResponse.job:type_name -> contacts.v1.ScanJob
	3,  // 13: contacts.v1.CreateContactRequest.ocr_confidence:type_name -> contacts.v1.FieldConfidence
	4,  // 14: contacts.v1.CreateContactResponse.contact:type_name -> contacts.v1.Contact
	4,  // 15: contacts.v1.GetContactResponse.contact:type_name -> contacts.v1.Contact
	4,  // 16: contacts.v1.UpdateContactResponse.contact:type_name -> contacts.v1.Contact
	4,  // 17: contacts.v1.ListContactsResponse.contacts:type_name -> contacts.v1.Contact
	0,  // 18: contacts.v1.ExportContactsRequest.format:type_name -> contacts.v1.ExportFormat
	7,  // 19: contacts.v1.ContactsService.ExtractFields:input_type -> contacts.v1.ExtractFieldsRequest
	9,  // 20: contacts.v1.ContactsService.CheckDuplicate:input_type -> contacts.v1.CheckDuplicateRequest
	11, // 21: contacts.v1.ContactsService.SubmitScan:input_type -> contacts.v1.SubmitScanRequest
	13, // 22: contacts.v1.ContactsService.GetScanJob:input_type -> contacts.v1.GetScanJobRequest
	15, // 23: contacts.v1.ContactsService.CreateContact:input_type -> contacts.v1.CreateContactRequest
	17, // 24: contacts.v1.ContactsService.GetContact:input_type -> contacts.v1.GetContactRequest
	19, // 25: contacts.v1.ContactsService.UpdateContact:input_type -> contacts.v1.UpdateContactRequest
	21, // 26: contacts.v1.ContactsService.DeleteContact:input_type -> contacts.v1.DeleteContactRequest
	23, // 27: contacts.v1.ContactsService.ListContacts:input_type -> contacts.v1.ListContactsRequest
	25, // 28: contacts.v1.ContactsService.ImportContacts:input_type -> contacts.v1.ImportContactsRequest
	27, // 29: contacts.v1.ContactsService.ExportContacts:input_type -> contacts.v1.ExportContactsRequest
	8,  // 30: contacts.v1.ContactsService.ExtractFields:output_type -> contacts.v1.ExtractFieldsResponse
	10, // 31: contacts.v1.ContactsService.CheckDuplicate:output_type -> contacts.v1.CheckDuplicateResponse
	12, // 32: contacts.v1.ContactsService.SubmitScan:output_type -> contacts.v1.SubmitScanResponse
	14, // 33: contacts.v1.ContactsService.GetScanJob:output_type -> contacts.v1.GetScanJobResponse
	16, // 34: contacts.v1.ContactsService.CreateContact:output_type -> contacts.v1.CreateContactResponse
	18, // 35: contacts.v1.ContactsService.GetContact:output_type -> contacts.v1.GetContactResponse
	20, // 36: contacts.v1.ContactsService.UpdateContact:output_type -> contacts.v1.UpdateContactResponse
	22, // 37: contacts.v1.ContactsService.DeleteContact:output_type -> contacts.v1.DeleteContactResponse
	24, // 38: contacts.v1.ContactsService.ListContacts:output_type -> contacts.v1.ListContactsResponse
	26, // 39: contacts.v1.ContactsService.ImportContacts:output_type -> contacts.v1.ImportContactsResponse
	28, // 40: contacts.v1.ContactsService.ExportContacts:output_type -> contacts.v1.ExportContactsResponse
	30, // [30:41] is the sub-list for method output_type
	19, // [19:30] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_contacts_v1_contacts_proto_init() }
func file_contacts_v1_contacts_proto_init() {
	if File_contacts_v1_contacts_proto != nil {
		return
	}
	file_contacts_v1_contacts_proto_msgTypes[18].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contacts_v1_contacts_proto_rawDesc), len(file_contacts_v1_contacts_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_contacts_v1_contacts_proto_goTypes,
		DependencyIndexes: file_contacts_v1_contacts_proto_depIdxs,
		EnumInfos:         file_contacts_v1_contacts_proto_enumTypes,
		MessageInfos:      file_contacts_v1_contacts_proto_msgTypes,
	}.Build()
	File_contacts_v1_contacts_proto = out.File
	file_contacts_v1_contacts_proto_goTypes = nil
	file_contacts_v1_contacts_proto_depIdxs = nil
}
