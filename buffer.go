package ereport

import (
	"strconv"
	"sync"
	"unicode/utf8"
)

// buffer is a growing byte buffer recycled through bufPool.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

func (buf *buffer) writeSpaces(n int) {
	for ; n > 0; n-- {
		buf.b = append(buf.b, ' ')
	}
}

// writeCentered pads s with spaces to width; the odd space goes right.
func (buf *buffer) writeCentered(s string, width int) {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		buf.writeString(s)
		return
	}
	left := pad / 2
	buf.writeSpaces(left)
	buf.writeString(s)
	buf.writeSpaces(pad - left)
}

// writeLeft truncates s to width runes, then right-pads it when pad is set.
func (buf *buffer) writeLeft(s string, width int, pad bool) {
	n := 0
	for i := range s {
		if n == width {
			s = s[:i]
			break
		}
		n++
	}
	buf.writeString(s)
	if pad {
		buf.writeSpaces(width - n)
	}
}

// writeZeroPadded writes v with at least width digits.
func (buf *buffer) writeZeroPadded(v, width int) {
	var tmp [20]byte
	d := strconv.AppendInt(tmp[:0], int64(v), 10)
	for i := len(d); i < width; i++ {
		buf.writeByte('0')
	}
	buf.b = append(buf.b, d...)
}

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 256)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
