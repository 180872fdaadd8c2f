// Package frame implements the CAN message value type exchanged by
// bus drivers, loggers and other tooling. A Frame is constructed once
// and treated as immutable afterwards.
package frame

import (
	log "github.com/sirupsen/logrus"
)

// Socketcan identifier flags and masks
const (
	CanEffFlag uint32 = 0x80000000
	CanRtrFlag uint32 = 0x40000000
	CanErrFlag uint32 = 0x20000000
	CanSffMask uint32 = 0x000007FF
	CanEffMask uint32 = 0x1FFFFFFF
)

const (
	MaxStandardID uint32 = CanSffMask // Highest 11 bit identifier
	MaxExtendedID uint32 = CanEffMask // Highest 29 bit identifier
	MaxClassicBytes       = 8
	MaxFDBytes            = 64
)

// Frame represents a single CAN message, sent or received.
// Frames can use extended identifiers, be remote or error frames,
// carry data and be associated to a channel. The timestamp is
// informative only and never part of frame identity, see Equal.
// Fields are exported for drivers that fill frames directly, but a
// frame should not be mutated once handed to another component.
type Frame struct {
	Timestamp           float64 // Seconds, e.g. from the driver receive time
	ID                  uint32  // Arbitration id, 11 or 29 bit. Not clamped
	IsExtended          bool
	IsRemote            bool
	IsErrorFrame        bool
	Channel             string // Optional interface name, "" when unset
	IsFD                bool
	BitrateSwitch       bool
	ErrorStateIndicator bool
	DLC                 uint8 // Declared length, may diverge from len(Data)
	Data                []byte
}

// New creates a frame from the given options without validating it,
// the caller is trusted to not create invalid combinations. Remote
// frames never carry a payload, any supplied data is dropped. When no
// DLC is given it defaults to the payload length. The payload is
// copied, the frame owns its data.
// Only a payload source that cannot be converted to bytes makes New
// fail, with a ConversionError.
func New(opts ...Option) (*Frame, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	// Remote frames drop their payload before any conversion happens,
	// an unconvertible source is never even looked at
	if options.dataErr != nil && !options.remote {
		return nil, options.dataErr
	}
	frame := &Frame{
		Timestamp:           options.timestamp,
		ID:                  options.id,
		IsExtended:          options.extended,
		IsRemote:            options.remote,
		IsErrorFrame:        options.errorFrame,
		Channel:             options.channel,
		IsFD:                options.fd,
		BitrateSwitch:       options.brs,
		ErrorStateIndicator: options.esi,
	}
	if options.data == nil || options.remote {
		frame.Data = []byte{}
	} else {
		frame.Data = make([]byte, len(options.data))
		copy(frame.Data, options.data)
	}
	if options.dlc == nil {
		frame.DLC = uint8(len(frame.Data))
	} else {
		frame.DLC = *options.dlc
	}
	return frame, nil
}

// NewChecked creates a frame like New but also runs Validate,
// returning a ValidationError for invalid field combinations.
func NewChecked(opts ...Option) (*Frame, error) {
	frame, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return frame, nil
}

// Validate checks the frame field combinations and returns a
// ValidationError on the first violation. A DLC larger than the frame
// type allows or diverging from the payload length is tolerated so
// that malformed bus traffic can still be represented, it is only
// logged at warn level.
func (frame *Frame) Validate() error {
	if frame.IsRemote && frame.IsErrorFrame {
		return &ValidationError{Reason: "frame cannot be both remote and error frame"}
	}
	if frame.IsRemote && len(frame.Data) > 0 {
		return &ValidationError{Reason: "remote frame cannot carry a payload"}
	}
	if !frame.IsFD && (frame.BitrateSwitch || frame.ErrorStateIndicator) {
		return &ValidationError{Reason: "bitrate switch and error state indicator require an FD frame"}
	}
	if frame.IsFD && frame.DLC > MaxFDBytes {
		log.Warnf("dlc was %v but it should be less than or equal to %v", frame.DLC, MaxFDBytes)
	}
	if !frame.IsFD && frame.DLC > MaxClassicBytes {
		log.Warnf("dlc was %v but it should be less than or equal to %v", frame.DLC, MaxClassicBytes)
	}
	if !frame.IsRemote && int(frame.DLC) != len(frame.Data) {
		log.Warnf("dlc is %v but frame carries %v data bytes", frame.DLC, len(frame.Data))
	}
	return nil
}

// Length returns the number of stored payload bytes, not the DLC.
func (frame *Frame) Length() int {
	return len(frame.Data)
}

// Bytes returns the raw payload, for checksumming or handing to a
// transmit driver. The slice is the frame's own storage and must not
// be modified.
func (frame *Frame) Bytes() []byte {
	return frame.Data
}
