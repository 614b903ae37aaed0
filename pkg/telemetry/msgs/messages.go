package msgs

import (
	"github.com/golang/protobuf/proto"
)

// TypeIDs
const (
	DeviceMetaTypeID   uint32 = GroupDevice | TypeIDKindEvent | 0x0000
	AdcSampleTypeID    uint32 = GroupAnalog | TypeIDKindEvent | 0x0000
	AdcChunkTypeID     uint32 = GroupAnalog | TypeIDKindEvent | 0x0001
	GpioStateTypeID    uint32 = GroupDigital | TypeIDKindEvent | 0x0000
	EncoderCountTypeID uint32 = GroupDigital | TypeIDKindEvent | 0x0001
)

// DeviceMeta announces an attached device.
type DeviceMeta struct {
	ID       string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Port     string `protobuf:"bytes,2,opt,name=port,proto3" json:"port,omitempty"`
	BaudRate uint32 `protobuf:"varint,3,opt,name=baud_rate,proto3" json:"baud_rate,omitempty"`
}

// NewMessage implements Message.
func (m *DeviceMeta) NewMessage() Message { return &DeviceMeta{} }

// TypeID implements Message.
func (m *DeviceMeta) TypeID() uint32 { return DeviceMetaTypeID }

// ProtoMessage implements proto.Message.
func (m *DeviceMeta) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DeviceMeta) Reset() { *m = DeviceMeta{} }

// String implements proto.Message.
func (m *DeviceMeta) String() string { return proto.CompactTextString(m) }

// AdcSample is a single analog reading. Line is the raw data line as
// received; its layout is firmware-specific, so it is relayed verbatim.
type AdcSample struct {
	Channel uint32 `protobuf:"varint,1,opt,name=channel,proto3" json:"channel,omitempty"`
	Line    []byte `protobuf:"bytes,2,opt,name=line,proto3" json:"line,omitempty"`
}

// NewMessage implements Message.
func (m *AdcSample) NewMessage() Message { return &AdcSample{} }

// TypeID implements Message.
func (m *AdcSample) TypeID() uint32 { return AdcSampleTypeID }

// ProtoMessage implements proto.Message.
func (m *AdcSample) ProtoMessage() {}

// Reset implements proto.Message.
func (m *AdcSample) Reset() { *m = AdcSample{} }

// String implements proto.Message.
func (m *AdcSample) String() string { return proto.CompactTextString(m) }

// AdcChunk is a block of raw analog samples from one channel.
type AdcChunk struct {
	Channel uint32 `protobuf:"varint,1,opt,name=channel,proto3" json:"channel,omitempty"`
	Data    []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

// NewMessage implements Message.
func (m *AdcChunk) NewMessage() Message { return &AdcChunk{} }

// TypeID implements Message.
func (m *AdcChunk) TypeID() uint32 { return AdcChunkTypeID }

// ProtoMessage implements proto.Message.
func (m *AdcChunk) ProtoMessage() {}

// Reset implements proto.Message.
func (m *AdcChunk) Reset() { *m = AdcChunk{} }

// String implements proto.Message.
func (m *AdcChunk) String() string { return proto.CompactTextString(m) }

// GpioState is a snapshot of the digital port.
type GpioState struct {
	Value uint32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	// Known is false when the device reply could not be parsed.
	Known bool `protobuf:"varint,2,opt,name=known,proto3" json:"known,omitempty"`
}

// NewMessage implements Message.
func (m *GpioState) NewMessage() Message { return &GpioState{} }

// TypeID implements Message.
func (m *GpioState) TypeID() uint32 { return GpioStateTypeID }

// ProtoMessage implements proto.Message.
func (m *GpioState) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GpioState) Reset() { *m = GpioState{} }

// String implements proto.Message.
func (m *GpioState) String() string { return proto.CompactTextString(m) }

// EncoderCount is a quadrature encoder status snapshot.
type EncoderCount struct {
	Channel  uint32 `protobuf:"varint,1,opt,name=channel,proto3" json:"channel,omitempty"`
	Count    int64  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	HasCount bool   `protobuf:"varint,3,opt,name=has_count,proto3" json:"has_count,omitempty"`
	Dir      string `protobuf:"bytes,4,opt,name=dir,proto3" json:"dir,omitempty"`
	Overflow string `protobuf:"bytes,5,opt,name=overflow,proto3" json:"overflow,omitempty"`
	AtEnd    string `protobuf:"bytes,6,opt,name=at_end,proto3" json:"at_end,omitempty"`
}

// NewMessage implements Message.
func (m *EncoderCount) NewMessage() Message { return &EncoderCount{} }

// TypeID implements Message.
func (m *EncoderCount) TypeID() uint32 { return EncoderCountTypeID }

// ProtoMessage implements proto.Message.
func (m *EncoderCount) ProtoMessage() {}

// Reset implements proto.Message.
func (m *EncoderCount) Reset() { *m = EncoderCount{} }

// String implements proto.Message.
func (m *EncoderCount) String() string { return proto.CompactTextString(m) }
