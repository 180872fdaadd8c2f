package frame

import (
	"errors"
	"testing"

	sockcan "github.com/brutella/can"
	"github.com/stretchr/testify/assert"
)

func TestFromSocketCANStandard(t *testing.T) {
	raw := sockcan.Frame{ID: 0x123, Length: 2, Data: [8]uint8{0xAB, 0xCD}}
	f := FromSocketCAN(raw)
	assert.Equal(t, uint32(0x123), f.ID)
	assert.False(t, f.IsExtended)
	assert.False(t, f.IsRemote)
	assert.False(t, f.IsErrorFrame)
	assert.Equal(t, uint8(2), f.DLC)
	assert.Equal(t, []byte{0xAB, 0xCD}, f.Data)
}

func TestFromSocketCANExtended(t *testing.T) {
	raw := sockcan.Frame{ID: 0x18DAF110 | CanEffFlag, Length: 1, Data: [8]uint8{0x01}}
	f := FromSocketCAN(raw)
	assert.True(t, f.IsExtended)
	assert.Equal(t, uint32(0x18DAF110), f.ID)
}

func TestFromSocketCANRemote(t *testing.T) {
	raw := sockcan.Frame{ID: 0x77 | CanRtrFlag, Length: 4, Data: [8]uint8{1, 2, 3, 4}}
	f := FromSocketCAN(raw)
	assert.True(t, f.IsRemote)
	assert.Equal(t, uint8(4), f.DLC)
	assert.Equal(t, []byte{}, f.Data)
}

func TestFromSocketCANErrorFrame(t *testing.T) {
	raw := sockcan.Frame{ID: 0x20 | CanErrFlag}
	f := FromSocketCAN(raw)
	assert.True(t, f.IsErrorFrame)
	assert.Equal(t, uint32(0x20), f.ID)
}

func TestToSocketCANRoundTrip(t *testing.T) {
	f, _ := New(WithID(0x123), WithStandardID(), WithData([]byte{0xDE, 0xAD}))
	raw, err := f.ToSocketCAN()
	assert.Nil(t, err)
	assert.Equal(t, uint32(0x123), raw.ID)
	assert.Equal(t, uint8(2), raw.Length)

	back := FromSocketCAN(raw)
	assert.True(t, f.Equal(back))
}

func TestToSocketCANExtendedFlag(t *testing.T) {
	f, _ := New(WithID(0x18DAF110))
	raw, err := f.ToSocketCAN()
	assert.Nil(t, err)
	assert.Equal(t, uint32(0x18DAF110)|CanEffFlag, raw.ID)

	back := FromSocketCAN(raw)
	assert.True(t, f.Equal(back))
}

func TestToSocketCANRejectsFD(t *testing.T) {
	var convErr *ConversionError

	f, _ := New(WithID(0x1), WithFD(), WithData(make([]byte, 12)))
	_, err := f.ToSocketCAN()
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &convErr))

	f = &Frame{ID: 0x1, Data: make([]byte, 9)}
	_, err = f.ToSocketCAN()
	assert.NotNil(t, err)
}

func TestToSocketCANRejectsOversizedDLC(t *testing.T) {
	var convErr *ConversionError

	// Representable in the value type but not on the classic wire
	f, _ := New(WithID(0x1), WithStandardID(), WithData([]byte{1, 2}), WithDLC(9))
	_, err := f.ToSocketCAN()
	assert.NotNil(t, err)
	assert.True(t, errors.As(err, &convErr))

	f, _ = New(WithID(0x1), WithStandardID(), WithData(make([]byte, 8)))
	raw, err := f.ToSocketCAN()
	assert.Nil(t, err)
	assert.Equal(t, uint8(8), raw.Length)
}
