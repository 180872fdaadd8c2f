package frame

import (
	"fmt"
	"strings"
)

// String returns the fixed width single line form used for tabular
// log output. Field widths, ordering and padding are a contract for
// external log parsers and must not change.
func (frame *Frame) String() string {
	fields := []string{fmt.Sprintf("Timestamp: %15.6f", frame.Timestamp)}

	if frame.IsExtended {
		fields = append(fields, fmt.Sprintf("%12s", fmt.Sprintf("ID: %08x", frame.ID)))
	} else {
		fields = append(fields, fmt.Sprintf("%12s", fmt.Sprintf("ID: %04x", frame.ID)))
	}

	// Six tokens, always present in this order
	flags := []string{"S", " ", " ", " ", "  ", "  "}
	if frame.IsExtended {
		flags[0] = "X"
	}
	if frame.IsErrorFrame {
		flags[1] = "E"
	}
	if frame.IsRemote {
		flags[2] = "R"
	}
	if frame.IsFD {
		flags[3] = "F"
	}
	if frame.BitrateSwitch {
		flags[4] = "BS"
	}
	if frame.ErrorStateIndicator {
		flags[5] = "EI"
	}
	fields = append(fields, strings.Join(flags, " "))

	fields = append(fields, fmt.Sprintf("DLC: %d", frame.DLC))

	// Show at most DLC bytes, the DLC may exceed the stored payload
	count := int(frame.DLC)
	if count > len(frame.Data) {
		count = len(frame.Data)
	}
	if count > 0 {
		hex := make([]string, count)
		for i := 0; i < count; i++ {
			hex[i] = fmt.Sprintf("%02x", frame.Data[i])
		}
		fields = append(fields, fmt.Sprintf("%-24s", strings.Join(hex, " ")))
	} else {
		fields = append(fields, strings.Repeat(" ", 24))
	}

	if isAlnum(frame.Data) {
		fields = append(fields, fmt.Sprintf("'%s'", frame.Data))
	}

	if frame.Channel != "" {
		fields = append(fields, fmt.Sprintf("Channel: %s", frame.Channel))
	}

	return strings.TrimSpace(strings.Join(fields, "    "))
}

// GoString returns an unambiguous struct literal form listing every
// field that carries information, in a fixed order. Used by %#v.
func (frame *Frame) GoString() string {
	args := []string{
		fmt.Sprintf("Timestamp: %v", frame.Timestamp),
		fmt.Sprintf("ID: %#x", frame.ID),
		fmt.Sprintf("IsExtended: %v", frame.IsExtended),
	}
	if frame.IsRemote {
		args = append(args, "IsRemote: true")
	}
	if frame.IsErrorFrame {
		args = append(args, "IsErrorFrame: true")
	}
	if frame.Channel != "" {
		args = append(args, fmt.Sprintf("Channel: %q", frame.Channel))
	}
	hex := make([]string, len(frame.Data))
	for i, element := range frame.Data {
		hex[i] = fmt.Sprintf("%#02x", element)
	}
	args = append(args,
		fmt.Sprintf("DLC: %d", frame.DLC),
		fmt.Sprintf("Data: []byte{%s}", strings.Join(hex, ", ")))
	if frame.IsFD {
		args = append(args,
			"IsFD: true",
			fmt.Sprintf("BitrateSwitch: %v", frame.BitrateSwitch),
			fmt.Sprintf("ErrorStateIndicator: %v", frame.ErrorStateIndicator))
	}
	return fmt.Sprintf("frame.Frame{%s}", strings.Join(args, ", "))
}

// ASCII letters and digits only, an empty payload does not count
func isAlnum(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, element := range data {
		switch {
		case element >= '0' && element <= '9':
		case element >= 'a' && element <= 'z':
		case element >= 'A' && element <= 'Z':
		default:
			return false
		}
	}
	return true
}
