package frame

import (
	sockcan "github.com/brutella/can"
)

// Conversion between Frame and the classic socketcan frame from
// github.com/brutella/can, so drivers built on it can produce and
// consume frames directly. Pure type plumbing, no bus access.

// FromSocketCAN converts a raw socketcan frame. The EFF, RTR and ERR
// flag bits are split out of the identifier word and the identifier
// is masked to its 11 or 29 bit range. Remote frames keep their DLC
// but carry no payload.
func FromSocketCAN(raw sockcan.Frame) *Frame {
	frame := &Frame{
		IsExtended:   raw.ID&CanEffFlag != 0,
		IsRemote:     raw.ID&CanRtrFlag != 0,
		IsErrorFrame: raw.ID&CanErrFlag != 0,
		DLC:          raw.Length,
	}
	if frame.IsExtended {
		frame.ID = raw.ID & CanEffMask
	} else {
		frame.ID = raw.ID & CanSffMask
	}
	count := int(raw.Length)
	if count > len(raw.Data) {
		count = len(raw.Data)
	}
	if frame.IsRemote {
		count = 0
	}
	frame.Data = make([]byte, count)
	copy(frame.Data, raw.Data[:count])
	return frame
}

// ToSocketCAN converts the frame to the classic socketcan layout,
// folding the flags back into the identifier word. FD frames and
// payloads over 8 bytes do not fit and fail with a ConversionError.
func (frame *Frame) ToSocketCAN() (sockcan.Frame, error) {
	if frame.IsFD {
		return sockcan.Frame{}, &ConversionError{Value: frame, Reason: "FD frames do not fit a classic socketcan frame"}
	}
	if len(frame.Data) > MaxClassicBytes {
		return sockcan.Frame{}, &ConversionError{Value: frame, Reason: "payload exceeds 8 bytes"}
	}
	// The value type tolerates an oversized DLC, the wire format does not
	if frame.DLC > MaxClassicBytes {
		return sockcan.Frame{}, &ConversionError{Value: frame, Reason: "dlc exceeds 8"}
	}
	id := frame.ID
	if frame.IsExtended {
		id = (id & CanEffMask) | CanEffFlag
	} else {
		id = id & CanSffMask
	}
	if frame.IsRemote {
		id |= CanRtrFlag
	}
	if frame.IsErrorFrame {
		id |= CanErrFlag
	}
	raw := sockcan.Frame{ID: id, Length: frame.DLC}
	copy(raw.Data[:], frame.Data)
	return raw, nil
}
