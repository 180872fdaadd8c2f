package frame

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
)

// Equal reports whether v is a frame with the same content. The
// timestamp is not compared, two frames captured at different times
// with identical content are equal. Any non frame value compares as
// not equal, Equal never panics.
func (frame *Frame) Equal(v any) bool {
	var other *Frame
	switch value := v.(type) {
	case *Frame:
		other = value
	case Frame:
		other = &value
	default:
		return false
	}
	if other == nil {
		return false
	}
	return frame.ID == other.ID &&
		frame.IsExtended == other.IsExtended &&
		frame.IsRemote == other.IsRemote &&
		frame.IsErrorFrame == other.IsErrorFrame &&
		frame.Channel == other.Channel &&
		frame.DLC == other.DLC &&
		bytes.Equal(frame.Data, other.Data) &&
		frame.IsFD == other.IsFD &&
		frame.BitrateSwitch == other.BitrateSwitch &&
		frame.ErrorStateIndicator == other.ErrorStateIndicator
}

// Hash returns an FNV-1a hash over exactly the fields compared by
// Equal, so equal frames always hash the same and frames can key a
// map through their hash.
func (frame *Frame) Hash() uint64 {
	hash := fnv.New64a()
	var id [4]byte
	binary.LittleEndian.PutUint32(id[:], frame.ID)
	hash.Write(id[:])
	hash.Write([]byte{
		boolByte(frame.IsExtended),
		boolByte(frame.IsRemote),
		boolByte(frame.IsErrorFrame),
		boolByte(frame.IsFD),
		boolByte(frame.BitrateSwitch),
		boolByte(frame.ErrorStateIndicator),
		frame.DLC,
	})
	hash.Write([]byte(frame.Channel))
	// Zero byte keeps channel and payload from blending into each other
	hash.Write([]byte{0})
	hash.Write(frame.Data)
	return hash.Sum64()
}

func boolByte(value bool) byte {
	if value {
		return 1
	}
	return 0
}
