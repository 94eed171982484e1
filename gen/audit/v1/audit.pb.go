// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: audit/v1/audit.proto

package auditv1

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

type AuditMode int32

const (
	AuditMode_AUDIT_MODE_UNSPECIFIED AuditMode = 0
	AuditMode_AUDIT_MODE_STANDARD    AuditMode = 1
	AuditMode_AUDIT_MODE_CHAPTERS    AuditMode = 2
)

// Enum value maps for AuditMode.
var (
	AuditMode_name = map[int32]string{
		0: "AUDIT_MODE_UNSPECIFIED",
		1: "AUDIT_MODE_STANDARD",
		2: "AUDIT_MODE_CHAPTERS",
	}
	AuditMode_value = map[string]int32{
		"AUDIT_MODE_UNSPECIFIED": 0,
		"AUDIT_MODE_STANDARD":    1,
		"AUDIT_MODE_CHAPTERS":    2,
	}
)

func (x AuditMode) Enum() *AuditMode {
	p := new(AuditMode)
	*p = x
	return p
}

func (x AuditMode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AuditMode) Descriptor() protoreflect.EnumDescriptor {
	return file_audit_v1_audit_proto_enumTypes[0].Descriptor()
}

func (AuditMode) Type() protoreflect.EnumType {
	return &file_audit_v1_audit_proto_enumTypes[0]
}

func (x AuditMode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AuditMode.Descriptor instead.
func (AuditMode) EnumDescriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

type RunAuditRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Path        string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	DisplayName string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Subject     string                 `protobuf:"bytes,3,opt,name=subject,proto3" json:"subject,omitempty"`
	Mode        AuditMode              `protobuf:"varint,4,opt,name=mode,proto3,enum=audit.v1.AuditMode" json:"mode,omitempty"`
	// Optional complementary support document (standard mode only).
	SupportPath   string `protobuf:"bytes,5,opt,name=support_path,json=supportPath,proto3" json:"support_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAuditRequest) Reset() {
	*x = RunAuditRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAuditRequest) ProtoMessage() {}

func (x *RunAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAuditRequest.ProtoReflect.Descriptor instead.
func (*RunAuditRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

func (x *RunAuditRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *RunAuditRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *RunAuditRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *RunAuditRequest) GetMode() AuditMode {
	if x != nil {
		return x.Mode
	}
	return AuditMode_AUDIT_MODE_UNSPECIFIED
}

func (x *RunAuditRequest) GetSupportPath() string {
	if x != nil {
		return x.SupportPath
	}
	return ""
}

type RunAuditResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	StorageKey string                 `protobuf:"bytes,1,opt,name=storage_key,json=storageKey,proto3" json:"storage_key,omitempty"`
	// Full report document, JSON-encoded.
	ReportJson string  `protobuf:"bytes,2,opt,name=report_json,json=reportJson,proto3" json:"report_json,omitempty"`
	FinalScore float64 `protobuf:"fixed64,3,opt,name=final_score,json=finalScore,proto3" json:"final_score,omitempty"`
	Grade      string  `protobuf:"bytes,4,opt,name=grade,proto3" json:"grade,omitempty"`
	// Set when the document could not be extracted; the report is not saved.
	Error         string `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAuditResponse) Reset() {
	*x = RunAuditResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAuditResponse) ProtoMessage() {}

func (x *RunAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAuditResponse.ProtoReflect.Descriptor instead.
func (*RunAuditResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{1}
}

func (x *RunAuditResponse) GetStorageKey() string {
	if x != nil {
		return x.StorageKey
	}
	return ""
}

func (x *RunAuditResponse) GetReportJson() string {
	if x != nil {
		return x.ReportJson
	}
	return ""
}

func (x *RunAuditResponse) GetFinalScore() float64 {
	if x != nil {
		return x.FinalScore
	}
	return 0
}

func (x *RunAuditResponse) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *RunAuditResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type HistoryEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	AuditDate     string                 `protobuf:"bytes,3,opt,name=audit_date,json=auditDate,proto3" json:"audit_date,omitempty"`
	FinalScore    float64                `protobuf:"fixed64,4,opt,name=final_score,json=finalScore,proto3" json:"final_score,omitempty"`
	Grade         string                 `protobuf:"bytes,5,opt,name=grade,proto3" json:"grade,omitempty"`
	JsonFile      string                 `protobuf:"bytes,6,opt,name=json_file,json=jsonFile,proto3" json:"json_file,omitempty"`
	WordCount     int32                  `protobuf:"varint,7,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryEntry) Reset() {
	*x = HistoryEntry{}
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryEntry) ProtoMessage() {}

func (x *HistoryEntry) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryEntry.ProtoReflect.Descriptor instead.
func (*HistoryEntry) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{2}
}

func (x *HistoryEntry) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *HistoryEntry) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *HistoryEntry) GetAuditDate() string {
	if x != nil {
		return x.AuditDate
	}
	return ""
}

func (x *HistoryEntry) GetFinalScore() float64 {
	if x != nil {
		return x.FinalScore
	}
	return 0
}

func (x *HistoryEntry) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *HistoryEntry) GetJsonFile() string {
	if x != nil {
		return x.JsonFile
	}
	return ""
}

func (x *HistoryEntry) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

type GetHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryRequest) Reset() {
	*x = GetHistoryRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryRequest) ProtoMessage() {}

func (x *GetHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetHistoryRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{3}
}

type GetHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalAudits   int32                  `protobuf:"varint,1,opt,name=total_audits,json=totalAudits,proto3" json:"total_audits,omitempty"`
	LastUpdated   string                 `protobuf:"bytes,2,opt,name=last_updated,json=lastUpdated,proto3" json:"last_updated,omitempty"`
	Audits        []*HistoryEntry        `protobuf:"bytes,3,rep,name=audits,proto3" json:"audits,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryResponse) Reset() {
	*x = GetHistoryResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryResponse) ProtoMessage() {}

func (x *GetHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetHistoryResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{4}
}

func (x *GetHistoryResponse) GetTotalAudits() int32 {
	if x != nil {
		return x.TotalAudits
	}
	return 0
}

func (x *GetHistoryResponse) GetLastUpdated() string {
	if x != nil {
		return x.LastUpdated
	}
	return ""
}

func (x *GetHistoryResponse) GetAudits() []*HistoryEntry {
	if x != nil {
		return x.Audits
	}
	return nil
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JsonFile      string                 `protobuf:"bytes,1,opt,name=json_file,json=jsonFile,proto3" json:"json_file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{5}
}

func (x *GetReportRequest) GetJsonFile() string {
	if x != nil {
		return x.JsonFile
	}
	return ""
}

type GetReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportJson    string                 `protobuf:"bytes,1,opt,name=report_json,json=reportJson,proto3" json:"report_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{6}
}

func (x *GetReportResponse) GetReportJson() string {
	if x != nil {
		return x.ReportJson
	}
	return ""
}

type ListSubjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubjectsRequest) Reset() {
	*x = ListSubjectsRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubjectsRequest) ProtoMessage() {}

func (x *ListSubjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubjectsRequest.ProtoReflect.Descriptor instead.
func (*ListSubjectsRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{7}
}

type Subject struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Subject) Reset() {
	*x = Subject{}
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subject) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subject) ProtoMessage() {}

func (x *Subject) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subject.ProtoReflect.Descriptor instead.
func (*Subject) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{8}
}

func (x *Subject) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Subject) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ListSubjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subjects      []*Subject             `protobuf:"bytes,1,rep,name=subjects,proto3" json:"subjects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubjectsResponse) Reset() {
	*x = ListSubjectsResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubjectsResponse) ProtoMessage() {}

func (x *ListSubjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubjectsResponse.ProtoReflect.Descriptor instead.
func (*ListSubjectsResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{9}
}

func (x *ListSubjectsResponse) GetSubjects() []*Subject {
	if x != nil {
		return x.Subjects
	}
	return nil
}

type ExportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryRequest) Reset() {
	*x = ExportHistoryRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryRequest) ProtoMessage() {}

func (x *ExportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryRequest.ProtoReflect.Descriptor instead.
func (*ExportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{10}
}

type ExportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryResponse) Reset() {
	*x = ExportHistoryResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryResponse) ProtoMessage() {}

func (x *ExportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryResponse.ProtoReflect.Descriptor instead.
func (*ExportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{11}
}

func (x *ExportHistoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportCriteriaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JsonFile      string                 `protobuf:"bytes,1,opt,name=json_file,json=jsonFile,proto3" json:"json_file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCriteriaRequest) Reset() {
	*x = ExportCriteriaRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCriteriaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCriteriaRequest) ProtoMessage() {}

func (x *ExportCriteriaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCriteriaRequest.ProtoReflect.Descriptor instead.
func (*ExportCriteriaRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{12}
}

func (x *ExportCriteriaRequest) GetJsonFile() string {
	if x != nil {
		return x.JsonFile
	}
	return ""
}

type ExportCriteriaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCriteriaResponse) Reset() {
	*x = ExportCriteriaResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCriteriaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCriteriaResponse) ProtoMessage() {}

func (x *ExportCriteriaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCriteriaResponse.ProtoReflect.Descriptor instead.
func (*ExportCriteriaResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{13}
}

func (x *ExportCriteriaResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_audit_v1_audit_proto protoreflect.FileDescriptor

const file_audit_v1_audit_proto_rawDesc = "" +
	"\n" +
	"\x14audit/v1/audit.proto\x12\baudit.v1\"\xae\x01\n" +
	"\x0fRunAuditRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x18\n" +
	"\asubject\x18\x03 \x01(\tR\asubject\x12'\n" +
	"\x04mode\x18\x04 \x01(\x0e2\x13.audit.v1.AuditModeR\x04mode\x12!\n" +
	"\fsupport_path\x18\x05 \x01(\tR\vsupportPath\"\xa1\x01\n" +
	"\x10RunAuditResponse\x12\x1f\n" +
	"\vstorage_key\x18\x01 \x01(\tR\n" +
	"storageKey\x12\x1f\n" +
	"\vreport_json\x18\x02 \x01(\tR\n" +
	"reportJson\x12\x1f\n" +
	"\vfinal_score\x18\x03 \x01(\x01R\n" +
	"finalScore\x12\x14\n" +
	"\x05grade\x18\x04 \x01(\tR\x05grade\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"\xcc\x01\n" +
	"\fHistoryEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1d\n" +
	"\n" +
	"audit_date\x18\x03 \x01(\tR\tauditDate\x12\x1f\n" +
	"\vfinal_score\x18\x04 \x01(\x01R\n" +
	"finalScore\x12\x14\n" +
	"\x05grade\x18\x05 \x01(\tR\x05grade\x12\x1b\n" +
	"\tjson_file\x18\x06 \x01(\tR\bjsonFile\x12\x1d\n" +
	"\n" +
	"word_count\x18\a \x01(\x05R\twordCount\"\x13\n" +
	"\x11GetHistoryRequest\"\x8a\x01\n" +
	"\x12GetHistoryResponse\x12!\n" +
	"\ftotal_audits\x18\x01 \x01(\x05R\vtotalAudits\x12!\n" +
	"\flast_updated\x18\x02 \x01(\tR\vlastUpdated\x12.\n" +
	"\x06audits\x18\x03 \x03(\v2\x16.audit.v1.HistoryEntryR\x06audits\"/\n" +
	"\x10GetReportRequest\x12\x1b\n" +
	"\tjson_file\x18\x01 \x01(\tR\bjsonFile\"4\n" +
	"\x11GetReportResponse\x12\x1f\n" +
	"\vreport_json\x18\x01 \x01(\tR\n" +
	"reportJson\"\x15\n" +
	"\x13ListSubjectsRequest\"/\n" +
	"\aSubject\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"E\n" +
	"\x14ListSubjectsResponse\x12-\n" +
	"\bsubjects\x18\x01 \x03(\v2\x11.audit.v1.SubjectR\bsubjects\"\x16\n" +
	"\x14ExportHistoryRequest\"+\n" +
	"\x15ExportHistoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"4\n" +
	"\x15ExportCriteriaRequest\x12\x1b\n" +
	"\tjson_file\x18\x01 \x01(\tR\bjsonFile\",\n" +
	"\x16ExportCriteriaResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx*Y\n" +
	"\tAuditMode\x12\x1a\n" +
	"\x16AUDIT_MODE_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13AUDIT_MODE_STANDARD\x10\x01\x12\x17\n" +
	"\x13AUDIT_MODE_CHAPTERS\x10\x022\xd6\x03\n" +
	"\fAuditService\x12A\n" +
	"\bRunAudit\x12\x19.audit.v1.RunAuditRequest\x1a\x1a.audit.v1.RunAuditResponse\x12G\n" +
	"\n" +
	"GetHistory\x12\x1b.audit.v1.GetHistoryRequest\x1a\x1c.audit.v1.GetHistoryResponse\x12D\n" +
	"\tGetReport\x12\x1a.audit.v1.GetReportRequest\x1a\x1b.audit.v1.GetReportResponse\x12M\n" +
	"\fListSubjects\x12\x1d.audit.v1.ListSubjectsRequest\x1a\x1e.audit.v1.ListSubjectsResponse\x12P\n" +
	"\rExportHistory\x12\x1e.audit.v1.ExportHistoryRequest\x1a\x1f.audit.v1.ExportHistoryResponse\x12S\n" +
	"\x0eExportCriteria\x12\x1f.audit.v1.ExportCriteriaRequest\x1a .audit.v1.ExportCriteriaResponseB8Z6github.com/edaudit/course-auditor/gen/audit/v1;auditv1b\x06proto3"

var (
	file_audit_v1_audit_proto_rawDescOnce sync.Once
	file_audit_v1_audit_proto_rawDescData []byte
)

func file_audit_v1_audit_proto_rawDescGZIP() []byte {
	file_audit_v1_audit_proto_rawDescOnce.Do(func() {
		file_audit_v1_audit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)))
	})
	return file_audit_v1_audit_proto_rawDescData
}

var file_audit_v1_audit_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_audit_v1_audit_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_audit_v1_audit_proto_goTypes = []any{
	(AuditMode)(0),                 // 0: audit.v1.AuditMode
	(*RunAuditRequest)(nil),        // 1: audit.v1.RunAuditRequest
	(*RunAuditResponse)(nil),       // 2: audit.v1.RunAuditResponse
	(*HistoryEntry)(nil),           // 3: audit.v1.HistoryEntry
	(*GetHistoryRequest)(nil),      // 4: audit.v1.GetHistoryRequest
	(*GetHistoryResponse)(nil),     // 5: audit.v1.GetHistoryResponse
	(*GetReportRequest)(nil),       // 6: audit.v1.GetReportRequest
	(*GetReportResponse)(nil),      // 7: audit.v1.GetReportResponse
	(*ListSubjectsRequest)(nil),    // 8: audit.v1.ListSubjectsRequest
	(*Subject)(nil),                // 9: audit.v1.Subject
	(*ListSubjectsResponse)(nil),   // 10: audit.v1.ListSubjectsResponse
	(*ExportHistoryRequest)(nil),   // 11: audit.v1.ExportHistoryRequest
	(*ExportHistoryResponse)(nil),  // 12: audit.v1.ExportHistoryResponse
	(*ExportCriteriaRequest)(nil),  // 13: audit.v1.ExportCriteriaRequest
	(*ExportCriteriaResponse)(nil), // 14: audit.v1.ExportCriteriaResponse
}
var file_audit_v1_audit_proto_depIdxs = []int32{
	0,  // 0: audit.v1.RunAuditRequest.mode:type_name -> audit.v1.AuditMode
	3,  // 1: audit.v1.GetHistoryResponse.audits:type_name -> audit.v1.HistoryEntry
	9,  // 2: audit.v1.ListSubjectsResponse.subjects:type_name -> audit.v1.Subject
	1,  // 3: audit.v1.AuditService.RunAudit:input_type -> audit.v1.RunAuditRequest
	4,  // 4: audit.v1.AuditService.GetHistory:input_type -> audit.v1.GetHistoryRequest
	6,  // 5: audit.v1.AuditService.GetReport:input_type -> audit.v1.GetReportRequest
	8,  // 6: audit.v1.AuditService.ListSubjects:input_type -> audit.v1.ListSubjectsRequest
	11, // 7: audit.v1.AuditService.ExportHistory:input_type -> audit.v1.ExportHistoryRequest
	13, // 8: audit.v1.AuditService.ExportCriteria:input_type -> audit.v1.ExportCriteriaRequest
	2,  // 9: audit.v1.AuditService.RunAudit:output_type -> audit.v1.RunAuditResponse
	5,  // 10: audit.v1.AuditService.GetHistory:output_type -> audit.v1.GetHistoryResponse
	7,  // 11: audit.v1.AuditService.GetReport:output_type -> audit.v1.GetReportResponse
	10, // 12: audit.v1.AuditService.ListSubjects:output_type -> audit.v1.ListSubjectsResponse
	12, // 13: audit.v1.AuditService.ExportHistory:output_type -> audit.v1.ExportHistoryResponse
	14, // 14: audit.v1.AuditService.ExportCriteria:output_type -> audit.v1.ExportCriteriaResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_audit_v1_audit_proto_init() }
func file_audit_v1_audit_proto_init() {
	if File_audit_v1_audit_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_audit_v1_audit_proto_goTypes,
		DependencyIndexes: file_audit_v1_audit_proto_depIdxs,
		EnumInfos:         file_audit_v1_audit_proto_enumTypes,
		MessageInfos:      file_audit_v1_audit_proto_msgTypes,
	}.Build()
	File_audit_v1_audit_proto = out.File
	file_audit_v1_audit_proto_goTypes = nil
	file_audit_v1_audit_proto_depIdxs = nil
}
