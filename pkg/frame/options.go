package frame

// Option configures a frame under construction
type Option func(*frameOptions)

// Collects the supplied fields before the frame is assembled. Keeping
// dlc behind a pointer distinguishes "not given" from an explicit 0.
type frameOptions struct {
	timestamp  float64
	id         uint32
	extended   bool
	remote     bool
	errorFrame bool
	channel    string
	dlc        *uint8
	data       []byte
	dataErr    error
	fd         bool
	brs        bool
	esi        bool
}

func defaultOptions() *frameOptions {
	// Extended identifiers are the default, like most tooling assumes
	return &frameOptions{extended: true}
}

// WithTimestamp sets the receive or send time in seconds.
func WithTimestamp(timestamp float64) Option {
	return func(options *frameOptions) {
		options.timestamp = timestamp
	}
}

// WithID sets the arbitration id. The id is not clamped to the
// standard or extended range.
func WithID(id uint32) Option {
	return func(options *frameOptions) {
		options.id = id
	}
}

// WithStandardID selects the 11 bit identifier format.
func WithStandardID() Option {
	return func(options *frameOptions) {
		options.extended = false
	}
}

// WithExtendedID selects the 29 bit identifier format, the default.
func WithExtendedID() Option {
	return func(options *frameOptions) {
		options.extended = true
	}
}

// WithRemote marks the frame as a remote transmission request.
// Remote frames never carry a payload.
func WithRemote() Option {
	return func(options *frameOptions) {
		options.remote = true
	}
}

// WithErrorFrame marks the frame as a bus error condition frame.
func WithErrorFrame() Option {
	return func(options *frameOptions) {
		options.errorFrame = true
	}
}

// WithChannel associates the frame with an interface name, e.g. "can0".
func WithChannel(channel string) Option {
	return func(options *frameOptions) {
		options.channel = channel
	}
}

// WithDLC sets the declared data length code explicitly. Without this
// option the DLC defaults to the payload length.
func WithDLC(dlc uint8) Option {
	return func(options *frameOptions) {
		options.dlc = &dlc
	}
}

// WithData sets the payload. The bytes are copied at construction.
func WithData(data []byte) Option {
	return func(options *frameOptions) {
		options.data = data
	}
}

// WithDataFrom sets the payload from a convertible source : a byte
// slice, a string or an integer slice with values in byte range.
// Construction fails with a ConversionError for anything else.
func WithDataFrom(value any) Option {
	return func(options *frameOptions) {
		data, err := payloadFrom(value)
		if err != nil {
			options.dataErr = err
			return
		}
		options.data = data
	}
}

// WithFD marks the frame as CAN FD, allowing up to 64 payload bytes.
func WithFD() Option {
	return func(options *frameOptions) {
		options.fd = true
	}
}

// WithBitrateSwitch sets the FD bitrate switch flag.
func WithBitrateSwitch() Option {
	return func(options *frameOptions) {
		options.brs = true
	}
}

// WithErrorStateIndicator sets the FD error state indicator flag.
func WithErrorStateIndicator() Option {
	return func(options *frameOptions) {
		options.esi = true
	}
}

func payloadFrom(value any) ([]byte, error) {
	switch source := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return source, nil
	case string:
		return []byte(source), nil
	case []int:
		data := make([]byte, len(source))
		for i, element := range source {
			if element < 0 || element > 0xFF {
				return nil, &ConversionError{Value: value, Reason: "element out of byte range"}
			}
			data[i] = byte(element)
		}
		return data, nil
	case []uint32:
		data := make([]byte, len(source))
		for i, element := range source {
			if element > 0xFF {
				return nil, &ConversionError{Value: value, Reason: "element out of byte range"}
			}
			data[i] = byte(element)
		}
		return data, nil
	default:
		return nil, &ConversionError{Value: value}
	}
}
