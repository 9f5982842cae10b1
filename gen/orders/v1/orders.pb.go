// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: orders/v1/orders.proto

package ordersv1

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

type IngestWebhookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestWebhookRequest) Reset() {
	*x = IngestWebhookRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestWebhookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestWebhookRequest) ProtoMessage() {}

func (x *IngestWebhookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestWebhookRequest.ProtoReflect.Descriptor instead.
func (*IngestWebhookRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{0}
}

func (x *IngestWebhookRequest) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *IngestWebhookRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type IngestWebhookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WebhookId     string                 `protobuf:"bytes,1,opt,name=webhook_id,json=webhookId,proto3" json:"webhook_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestWebhookResponse) Reset() {
	*x = IngestWebhookResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestWebhookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestWebhookResponse) ProtoMessage() {}

func (x *IngestWebhookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestWebhookResponse.ProtoReflect.Descriptor instead.
func (*IngestWebhookResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{1}
}

func (x *IngestWebhookResponse) GetWebhookId() string {
	if x != nil {
		return x.WebhookId
	}
	return ""
}

type ProcessWebhookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	WebhookId     string                 `protobuf:"bytes,2,opt,name=webhook_id,json=webhookId,proto3" json:"webhook_id,omitempty"`
	Method        string                 `protobuf:"bytes,3,opt,name=method,proto3" json:"method,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessWebhookRequest) Reset() {
	*x = ProcessWebhookRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessWebhookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessWebhookRequest) ProtoMessage() {}

func (x *ProcessWebhookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessWebhookRequest.ProtoReflect.Descriptor instead.
func (*ProcessWebhookRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessWebhookRequest) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *ProcessWebhookRequest) GetWebhookId() string {
	if x != nil {
		return x.WebhookId
	}
	return ""
}

func (x *ProcessWebhookRequest) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

type OrderItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Variant       string                 `protobuf:"bytes,3,opt,name=variant,proto3" json:"variant,omitempty"`
	Quantity      int32                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price         string                 `protobuf:"bytes,5,opt,name=price,proto3" json:"price,omitempty"`
	Annotations   []string               `protobuf:"bytes,6,rep,name=annotations,proto3" json:"annotations,omitempty"`
	Properties    map[string]string      `protobuf:"bytes,7,rep,name=properties,proto3" json:"properties,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderItem) Reset() {
	*x = OrderItem{}
	mi := &file_orders_v1_orders_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItem) ProtoMessage() {}

func (x *OrderItem) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItem.ProtoReflect.Descriptor instead.
func (*OrderItem) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{3}
}

func (x *OrderItem) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *OrderItem) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *OrderItem) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *OrderItem) GetAnnotations() []string {
	if x != nil {
		return x.Annotations
	}
	return nil
}

func (x *OrderItem) GetProperties() map[string]string {
	if x != nil {
		return x.Properties
	}
	return nil
}

type Order struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Shop              string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	OrderNumber       string                 `protobuf:"bytes,2,opt,name=order_number,json=orderNumber,proto3" json:"order_number,omitempty"`
	CustomerName      string                 `protobuf:"bytes,3,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	CustomerEmail     string                 `protobuf:"bytes,4,opt,name=customer_email,json=customerEmail,proto3" json:"customer_email,omitempty"`
	CustomerPhone     string                 `protobuf:"bytes,5,opt,name=customer_phone,json=customerPhone,proto3" json:"customer_phone,omitempty"`
	OrderDate         string                 `protobuf:"bytes,6,opt,name=order_date,json=orderDate,proto3" json:"order_date,omitempty"`
	DeliveryDate      string                 `protobuf:"bytes,7,opt,name=delivery_date,json=deliveryDate,proto3" json:"delivery_date,omitempty"`
	DeliveryTime      string                 `protobuf:"bytes,8,opt,name=delivery_time,json=deliveryTime,proto3" json:"delivery_time,omitempty"`
	DeliveryMethod    string                 `protobuf:"bytes,9,opt,name=delivery_method,json=deliveryMethod,proto3" json:"delivery_method,omitempty"`
	TotalPrice        string                 `protobuf:"bytes,10,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Notes             string                 `protobuf:"bytes,11,opt,name=notes,proto3" json:"notes,omitempty"`
	IsSplit           bool                   `protobuf:"varint,12,opt,name=is_split,json=isSplit,proto3" json:"is_split,omitempty"`
	ParentOrderNumber string                 `protobuf:"bytes,13,opt,name=parent_order_number,json=parentOrderNumber,proto3" json:"parent_order_number,omitempty"`
	Items             []*OrderItem           `protobuf:"bytes,14,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_orders_v1_orders_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{4}
}

func (x *Order) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *Order) GetOrderNumber() string {
	if x != nil {
		return x.OrderNumber
	}
	return ""
}

func (x *Order) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *Order) GetCustomerEmail() string {
	if x != nil {
		return x.CustomerEmail
	}
	return ""
}

func (x *Order) GetCustomerPhone() string {
	if x != nil {
		return x.CustomerPhone
	}
	return ""
}

func (x *Order) GetOrderDate() string {
	if x != nil {
		return x.OrderDate
	}
	return ""
}

func (x *Order) GetDeliveryDate() string {
	if x != nil {
		return x.DeliveryDate
	}
	return ""
}

func (x *Order) GetDeliveryTime() string {
	if x != nil {
		return x.DeliveryTime
	}
	return ""
}

func (x *Order) GetDeliveryMethod() string {
	if x != nil {
		return x.DeliveryMethod
	}
	return ""
}

func (x *Order) GetTotalPrice() string {
	if x != nil {
		return x.TotalPrice
	}
	return ""
}

func (x *Order) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Order) GetIsSplit() bool {
	if x != nil {
		return x.IsSplit
	}
	return false
}

func (x *Order) GetParentOrderNumber() string {
	if x != nil {
		return x.ParentOrderNumber
	}
	return ""
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ProcessWebhookResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	WebhookId        string                 `protobuf:"bytes,1,opt,name=webhook_id,json=webhookId,proto3" json:"webhook_id,omitempty"`
	OrdersCreated    int32                  `protobuf:"varint,2,opt,name=orders_created,json=ordersCreated,proto3" json:"orders_created,omitempty"`
	Orders           []*Order               `protobuf:"bytes,3,rep,name=orders,proto3" json:"orders,omitempty"`
	Method           string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`
	AiUsed           bool                   `protobuf:"varint,5,opt,name=ai_used,json=aiUsed,proto3" json:"ai_used,omitempty"`
	Corrections      []string               `protobuf:"bytes,6,rep,name=corrections,proto3" json:"corrections,omitempty"`
	ValidationIssues []string               `protobuf:"bytes,7,rep,name=validation_issues,json=validationIssues,proto3" json:"validation_issues,omitempty"`
	ProcessingMs     int64                  `protobuf:"varint,8,opt,name=processing_ms,json=processingMs,proto3" json:"processing_ms,omitempty"`
	EstimatedCostUsd float64                `protobuf:"fixed64,9,opt,name=estimated_cost_usd,json=estimatedCostUsd,proto3" json:"estimated_cost_usd,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ProcessWebhookResponse) Reset() {
	*x = ProcessWebhookResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessWebhookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessWebhookResponse) ProtoMessage() {}

func (x *ProcessWebhookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessWebhookResponse.ProtoReflect.Descriptor instead.
func (*ProcessWebhookResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessWebhookResponse) GetWebhookId() string {
	if x != nil {
		return x.WebhookId
	}
	return ""
}

func (x *ProcessWebhookResponse) GetOrdersCreated() int32 {
	if x != nil {
		return x.OrdersCreated
	}
	return 0
}

func (x *ProcessWebhookResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *ProcessWebhookResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ProcessWebhookResponse) GetAiUsed() bool {
	if x != nil {
		return x.AiUsed
	}
	return false
}

func (x *ProcessWebhookResponse) GetCorrections() []string {
	if x != nil {
		return x.Corrections
	}
	return nil
}

func (x *ProcessWebhookResponse) GetValidationIssues() []string {
	if x != nil {
		return x.ValidationIssues
	}
	return nil
}

func (x *ProcessWebhookResponse) GetProcessingMs() int64 {
	if x != nil {
		return x.ProcessingMs
	}
	return 0
}

func (x *ProcessWebhookResponse) GetEstimatedCostUsd() float64 {
	if x != nil {
		return x.EstimatedCostUsd
	}
	return 0
}

type ProcessBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Method        string                 `protobuf:"bytes,3,opt,name=method,proto3" json:"method,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchRequest) Reset() {
	*x = ProcessBatchRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchRequest) ProtoMessage() {}

func (x *ProcessBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchRequest.ProtoReflect.Descriptor instead.
func (*ProcessBatchRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessBatchRequest) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *ProcessBatchRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ProcessBatchRequest) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

type ShopBatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Errors        int32                  `protobuf:"varint,2,opt,name=errors,proto3" json:"errors,omitempty"`
	OrdersCreated int32                  `protobuf:"varint,3,opt,name=orders_created,json=ordersCreated,proto3" json:"orders_created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShopBatch) Reset() {
	*x = ShopBatch{}
	mi := &file_orders_v1_orders_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShopBatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShopBatch) ProtoMessage() {}

func (x *ShopBatch) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShopBatch.ProtoReflect.Descriptor instead.
func (*ShopBatch) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{7}
}

func (x *ShopBatch) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ShopBatch) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

func (x *ShopBatch) GetOrdersCreated() int32 {
	if x != nil {
		return x.OrdersCreated
	}
	return 0
}

type ProcessBatchResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalProcessed int32                  `protobuf:"varint,1,opt,name=total_processed,json=totalProcessed,proto3" json:"total_processed,omitempty"`
	TotalErrors    int32                  `protobuf:"varint,2,opt,name=total_errors,json=totalErrors,proto3" json:"total_errors,omitempty"`
	Skipped        int32                  `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"`
	PerShop        map[string]*ShopBatch  `protobuf:"bytes,4,rep,name=per_shop,json=perShop,proto3" json:"per_shop,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessBatchResponse) Reset() {
	*x = ProcessBatchResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchResponse) ProtoMessage() {}

func (x *ProcessBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchResponse.ProtoReflect.Descriptor instead.
func (*ProcessBatchResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{8}
}

func (x *ProcessBatchResponse) GetTotalProcessed() int32 {
	if x != nil {
		return x.TotalProcessed
	}
	return 0
}

func (x *ProcessBatchResponse) GetTotalErrors() int32 {
	if x != nil {
		return x.TotalErrors
	}
	return 0
}

func (x *ProcessBatchResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ProcessBatchResponse) GetPerShop() map[string]*ShopBatch {
	if x != nil {
		return x.PerShop
	}
	return nil
}

type RetryWebhookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	WebhookId     string                 `protobuf:"bytes,2,opt,name=webhook_id,json=webhookId,proto3" json:"webhook_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryWebhookRequest) Reset() {
	*x = RetryWebhookRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryWebhookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryWebhookRequest) ProtoMessage() {}

func (x *RetryWebhookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryWebhookRequest.ProtoReflect.Descriptor instead.
func (*RetryWebhookRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{9}
}

func (x *RetryWebhookRequest) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *RetryWebhookRequest) GetWebhookId() string {
	if x != nil {
		return x.WebhookId
	}
	return ""
}

type RetryWebhookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reset_        bool                   `protobuf:"varint,1,opt,name=reset,proto3" json:"reset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryWebhookResponse) Reset() {
	*x = RetryWebhookResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryWebhookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryWebhookResponse) ProtoMessage() {}

func (x *RetryWebhookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryWebhookResponse.ProtoReflect.Descriptor instead.
func (*RetryWebhookResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{10}
}

func (x *RetryWebhookResponse) GetReset_() bool {
	if x != nil {
		return x.Reset_
	}
	return false
}

type GetStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsRequest) Reset() {
	*x = GetStatsRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsRequest) ProtoMessage() {}

func (x *GetStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsRequest.ProtoReflect.Descriptor instead.
func (*GetStatsRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{11}
}

type ShopStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pending       int32                  `protobuf:"varint,1,opt,name=pending,proto3" json:"pending,omitempty"`
	Processed     int32                  `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	Errors        int32                  `protobuf:"varint,3,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShopStats) Reset() {
	*x = ShopStats{}
	mi := &file_orders_v1_orders_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShopStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShopStats) ProtoMessage() {}

func (x *ShopStats) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShopStats.ProtoReflect.Descriptor instead.
func (*ShopStats) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{12}
}

func (x *ShopStats) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *ShopStats) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ShopStats) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

type GetStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PerShop       map[string]*ShopStats  `protobuf:"bytes,1,rep,name=per_shop,json=perShop,proto3" json:"per_shop,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Total         *ShopStats             `protobuf:"bytes,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsResponse) Reset() {
	*x = GetStatsResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsResponse) ProtoMessage() {}

func (x *GetStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsResponse.ProtoReflect.Descriptor instead.
func (*GetStatsResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{13}
}

func (x *GetStatsResponse) GetPerShop() map[string]*ShopStats {
	if x != nil {
		return x.PerShop
	}
	return nil
}

func (x *GetStatsResponse) GetTotal() *ShopStats {
	if x != nil {
		return x.Total
	}
	return nil
}

type ExportProductionReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          string                 `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProductionReportRequest) Reset() {
	*x = ExportProductionReportRequest{}
	mi := &file_orders_v1_orders_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProductionReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProductionReportRequest) ProtoMessage() {}

func (x *ExportProductionReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProductionReportRequest.ProtoReflect.Descriptor instead.
func (*ExportProductionReportRequest) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{14}
}

func (x *ExportProductionReportRequest) GetShop() string {
	if x != nil {
		return x.Shop
	}
	return ""
}

func (x *ExportProductionReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportProductionReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportProductionReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProductionReportResponse) Reset() {
	*x = ExportProductionReportResponse{}
	mi := &file_orders_v1_orders_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProductionReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProductionReportResponse) ProtoMessage() {}

func (x *ExportProductionReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_orders_v1_orders_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProductionReportResponse.ProtoReflect.Descriptor instead.
func (*ExportProductionReportResponse) Descriptor() ([]byte, []int) {
	return file_orders_v1_orders_proto_rawDescGZIP(), []int{15}
}

func (x *ExportProductionReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_orders_v1_orders_proto protoreflect.FileDescriptor

const file_orders_v1_orders_proto_rawDesc = "" +
	"\n" +
	"\x16orders/v1/orders.proto\x12\torders.v1\"D\n" +
	"\x14IngestWebhookRequest\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\"6\n" +
	"\x15IngestWebhookResponse\x12\x1d\n" +
	"\n" +
	"webhook_id\x18\x01 \x01(\tR\twebhookId\"b\n" +
	"\x15ProcessWebhookRequest\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12\x1d\n" +
	"\n" +
	"webhook_id\x18\x02 \x01(\tR\twebhookId\x12\x16\n" +
	"\x06method\x18\x03 \x01(\tR\x06method\"\xa8\x02\n" +
	"\tOrderItem\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\avariant\x18\x03 \x01(\tR\avariant\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x05R\bquantity\x12\x14\n" +
	"\x05price\x18\x05 \x01(\tR\x05price\x12 \n" +
	"\vannotations\x18\x06 \x03(\tR\vannotations\x12D\n" +
	"\n" +
	"properties\x18\a \x03(\v2$.orders.v1.OrderItem.PropertiesEntryR\n" +
	"properties\x1a=\n" +
	"\x0fPropertiesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xf1\x03\n" +
	"\x05Order\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12!\n" +
	"\forder_number\x18\x02 \x01(\tR\vorderNumber\x12#\n" +
	"\rcustomer_name\x18\x03 \x01(\tR\fcustomerName\x12%\n" +
	"\x0ecustomer_email\x18\x04 \x01(\tR\rcustomerEmail\x12%\n" +
	"\x0ecustomer_phone\x18\x05 \x01(\tR\rcustomerPhone\x12\x1d\n" +
	"\n" +
	"order_date\x18\x06 \x01(\tR\torderDate\x12#\n" +
	"\rdelivery_date\x18\a \x01(\tR\fdeliveryDate\x12#\n" +
	"\rdelivery_time\x18\b \x01(\tR\fdeliveryTime\x12'\n" +
	"\x0fdelivery_method\x18\t \x01(\tR\x0edeliveryMethod\x12\x1f\n" +
	"\vtotal_price\x18\n" +
	" \x01(\tR\n" +
	"totalPrice\x12\x14\n" +
	"\x05notes\x18\v \x01(\tR\x05notes\x12\x19\n" +
	"\bis_split\x18\f \x01(\bR\aisSplit\x12.\n" +
	"\x13parent_order_number\x18\r \x01(\tR\x11parentOrderNumber\x12*\n" +
	"\x05items\x18\x0e \x03(\v2\x14.orders.v1.OrderItemR\x05items\"\xdb\x02\n" +
	"\x16ProcessWebhookResponse\x12\x1d\n" +
	"\n" +
	"webhook_id\x18\x01 \x01(\tR\twebhookId\x12%\n" +
	"\x0eorders_created\x18\x02 \x01(\x05R\rordersCreated\x12(\n" +
	"\x06orders\x18\x03 \x03(\v2\x10.orders.v1.OrderR\x06orders\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12\x17\n" +
	"\aai_used\x18\x05 \x01(\bR\x06aiUsed\x12 \n" +
	"\vcorrections\x18\x06 \x03(\tR\vcorrections\x12+\n" +
	"\x11validation_issues\x18\a \x03(\tR\x10validationIssues\x12#\n" +
	"\rprocessing_ms\x18\b \x01(\x03R\fprocessingMs\x12,\n" +
	"\x12estimated_cost_usd\x18\t \x01(\x01R\x10estimatedCostUsd\"W\n" +
	"\x13ProcessBatchRequest\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06method\x18\x03 \x01(\tR\x06method\"h\n" +
	"\tShopBatch\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06errors\x18\x02 \x01(\x05R\x06errors\x12%\n" +
	"\x0eorders_created\x18\x03 \x01(\x05R\rordersCreated\"\x97\x02\n" +
	"\x14ProcessBatchResponse\x12'\n" +
	"\x0ftotal_processed\x18\x01 \x01(\x05R\x0etotalProcessed\x12!\n" +
	"\ftotal_errors\x18\x02 \x01(\x05R\vtotalErrors\x12\x18\n" +
	"\askipped\x18\x03 \x01(\x05R\askipped\x12G\n" +
	"\bper_shop\x18\x04 \x03(\v2,.orders.v1.ProcessBatchResponse.PerShopEntryR\aperShop\x1aP\n" +
	"\fPerShopEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12*\n" +
	"\x05value\x18\x02 \x01(\v2\x14.orders.v1.ShopBatchR\x05value:\x028\x01\"H\n" +
	"\x13RetryWebhookRequest\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12\x1d\n" +
	"\n" +
	"webhook_id\x18\x02 \x01(\tR\twebhookId\",\n" +
	"\x14RetryWebhookResponse\x12\x14\n" +
	"\x05reset\x18\x01 \x01(\bR\x05reset\"\x11\n" +
	"\x0fGetStatsRequest\"[\n" +
	"\tShopStats\x12\x18\n" +
	"\apending\x18\x01 \x01(\x05R\apending\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06errors\x18\x03 \x01(\x05R\x06errors\"\xd5\x01\n" +
	"\x10GetStatsResponse\x12C\n" +
	"\bper_shop\x18\x01 \x03(\v2(.orders.v1.GetStatsResponse.PerShopEntryR\aperShop\x12*\n" +
	"\x05total\x18\x02 \x01(\v2\x14.orders.v1.ShopStatsR\x05total\x1aP\n" +
	"\fPerShopEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12*\n" +
	"\x05value\x18\x02 \x01(\v2\x14.orders.v1.ShopStatsR\x05value:\x028\x01\"i\n" +
	"\x1dExportProductionReportRequest\x12\x12\n" +
	"\x04shop\x18\x01 \x01(\tR\x04shop\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"4\n" +
	"\x1eExportProductionReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x90\x04\n" +
	"\rOrdersService\x12R\n" +
	"\rIngestWebhook\x12\x1f.orders.v1.IngestWebhookRequest\x1a .orders.v1.IngestWebhookResponse\x12U\n" +
	"\x0eProcessWebhook\x12 .orders.v1.ProcessWebhookRequest\x1a!.orders.v1.ProcessWebhookResponse\x12O\n" +
	"\fProcessBatch\x12\x1e.orders.v1.ProcessBatchRequest\x1a\x1f.orders.v1.ProcessBatchResponse\x12O\n" +
	"\fRetryWebhook\x12\x1e.orders.v1.RetryWebhookRequest\x1a\x1f.orders.v1.RetryWebhookResponse\x12C\n" +
	"\bGetStats\x12\x1a.orders.v1.GetStatsRequest\x1a\x1b.orders.v1.GetStatsResponse\x12m\n" +
	"\x16ExportProductionReport\x12(.orders.v1.ExportProductionReportRequest\x1a).orders.v1.ExportProductionReportResponseB<Z:github.com/sugarloafbakes/orderpipe/gen/orders/v1;ordersv1b\x06proto3"

var (
	file_orders_v1_orders_proto_rawDescOnce sync.Once
	file_orders_v1_orders_proto_rawDescData []byte
)

func file_orders_v1_orders_proto_rawDescGZIP() []byte {
	file_orders_v1_orders_proto_rawDescOnce.Do(func() {
		file_orders_v1_orders_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_orders_v1_orders_proto_rawDesc), len(file_orders_v1_orders_proto_rawDesc)))
	})
	return file_orders_v1_orders_proto_rawDescData
}

var file_orders_v1_orders_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_orders_v1_orders_proto_goTypes = []any{
	(*IngestWebhookRequest)(nil),           // 0: orders.v1.IngestWebhookRequest
	(*IngestWebhookResponse)(nil),          // 1: orders.v1.IngestWebhookResponse
	(*ProcessWebhookRequest)(nil),          // 2: orders.v1.ProcessWebhookRequest
	(*OrderItem)(nil),                      // 3: orders.v1.OrderItem
	(*Order)(nil),                          // 4: orders.v1.Order
	(*ProcessWebhookResponse)(nil),         // 5: orders.v1.ProcessWebhookResponse
	(*ProcessBatchRequest)(nil),            // 6: orders.v1.ProcessBatchRequest
	(*ShopBatch)(nil),                      // 7: orders.v1.ShopBatch
	(*ProcessBatchResponse)(nil),           // 8: orders.v1.ProcessBatchResponse
	(*RetryWebhookRequest)(nil),            // 9: orders.v1.RetryWebhookRequest
	(*RetryWebhookResponse)(nil),           // 10: orders.v1.RetryWebhookResponse
	(*GetStatsRequest)(nil),                // 11: orders.v1.GetStatsRequest
	(*ShopStats)(nil),                      // 12: orders.v1.ShopStats
	(*GetStatsResponse)(nil),               // 13: orders.v1.GetStatsResponse
	(*ExportProductionReportRequest)(nil),  // 14: orders.v1.ExportProductionReportRequest
	(*ExportProductionReportResponse)(nil), // 15: orders.v1.ExportProductionReportResponse
	nil,                                    // 16: orders.v1.OrderItem.PropertiesEntry
	nil,                                    // 17: orders.v1.ProcessBatchResponse.PerShopEntry
	nil,                                    // 18: orders.v1.GetStatsResponse.PerShopEntry
}
var file_orders_v1_orders_proto_depIdxs = []int32{
	16, // 0: orders.v1.OrderItem.properties:type_name -> orders.v1.OrderItem.PropertiesEntry
	3,  // 1: orders.v1.Order.items:type_name -> orders.v1.OrderItem
	4,  // 2: orders.v1.ProcessWebhookResponse.orders:type_name -> orders.v1.Order
	17, // 3: orders.v1.ProcessBatchResponse.per_shop:type_name -> orders.v1.ProcessBatchResponse.PerShopEntry
	18, // 4: orders.v1.GetStatsResponse.per_shop:type_name -> orders.v1.GetStatsResponse.PerShopEntry
	12, // 5: orders.v1.GetStatsResponse.total:type_name -> orders.v1.ShopStats
	7,  // 6: orders.v1.ProcessBatchResponse.PerShopEntry.value:type_name -> orders.v1.ShopBatch
	12, // 7: orders.v1.GetStatsResponse.PerShopEntry.value:type_name -> orders.v1.ShopStats
	0,  // 8: orders.v1.OrdersService.IngestWebhook:input_type -> orders.v1.IngestWebhookRequest
	2,  // 9: orders.v1.OrdersService.ProcessWebhook:input_type -> orders.v1.ProcessWebhookRequest
	6,  // 10: orders.v1.OrdersService.ProcessBatch:input_type -> orders.v1.ProcessBatchRequest
	9,  // 11: orders.v1.OrdersService.RetryWebhook:input_type -> orders.v1.RetryWebhookRequest
	11, // 12: orders.v1.OrdersService.GetStats:input_type -> orders.v1.GetStatsRequest
	14, // 13: orders.v1.OrdersService.ExportProductionReport:input_type -> orders.v1.ExportProductionReportRequest
	1,  // 14: orders.v1.OrdersService.IngestWebhook:output_type -> orders.v1.IngestWebhookResponse
	5,  // 15: orders.v1.OrdersService.ProcessWebhook:output_type -> orders.v1.ProcessWebhookResponse
	8,  // 16: orders.v1.OrdersService.ProcessBatch:output_type -> orders.v1.ProcessBatchResponse
	10, // 17: orders.v1.OrdersService.RetryWebhook:output_type -> orders.v1.RetryWebhookResponse
	13, // 18: orders.v1.OrdersService.GetStats:output_type -> orders.v1.GetStatsResponse
	15, // 19: orders.v1.OrdersService.ExportProductionReport:output_type -> orders.v1.ExportProductionReportResponse
	14, // [14:20] is the sub-list for method output_type
	8,  // [8:14] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_orders_v1_orders_proto_init() }
func file_orders_v1_orders_proto_init() {
	if File_orders_v1_orders_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_orders_v1_orders_proto_rawDesc), len(file_orders_v1_orders_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_orders_v1_orders_proto_goTypes,
		DependencyIndexes: file_orders_v1_orders_proto_depIdxs,
		MessageInfos:      file_orders_v1_orders_proto_msgTypes,
	}.Build()
	File_orders_v1_orders_proto = out.File
	file_orders_v1_orders_proto_goTypes = nil
	file_orders_v1_orders_proto_depIdxs = nil
}
