package storage

import (
	"strconv"
	"strings"
)

// The blob codec: a numeric sequence becomes "n:v1,v2,...,vn" with every
// value in decimal. The leading element count makes a truncated blob
// detectable on decode.

// Encode serializes a numeric sequence as text.
func Encode(data []uint32) (text string) {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(data)))
	sb.WriteByte(':')
	for n, value := range data {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(value), 10))
	}
	text = sb.String()

	return
}

// Decode parses a serialized numeric sequence. Any malformation, including
// a count that disagrees with the values present, is an error; callers
// treat that as absence.
func Decode(text string) (data []uint32, err error) {
	head, tail, found := strings.Cut(text, ":")
	if !found {
		err = ErrMalformedBlob
		return
	}

	count, perr := strconv.Atoi(head)
	if perr != nil || count < 0 {
		err = ErrMalformedBlob
		return
	}

	if count == 0 {
		if tail != "" {
			err = ErrMalformedBlob
		} else {
			data = []uint32{}
		}
		return
	}

	parts := strings.Split(tail, ",")
	if len(parts) != count {
		err = ErrMalformedBlob
		return
	}

	data = make([]uint32, count)
	for n, part := range parts {
		value, perr := strconv.ParseUint(part, 10, 32)
		if perr != nil {
			data = nil
			err = ErrMalformedBlob
			return
		}
		data[n] = uint32(value)
	}

	return
}
