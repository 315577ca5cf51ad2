// Package mcwire implements the Minecraft protocol's primitive wire
// encodings: VarInt, a signed 32-bit integer packed into one to five bytes
// (seven value bits per byte, 0x80 continuation flag, least significant
// segment first, always minimal), and String, a VarInt byte-length prefix
// followed by raw UTF-8 content.
//
// Components:
//   - VarInt, String: value types pairing a native value with its exact
//     wire bytes.
//   - Type: the capability both implement - Bytes() returns a fresh copy
//     of the wire form, Size() its byte count, and the two always agree.
//   - Reader / Writer: sequential field decoding and encoding over a byte
//     buffer, with an optional Logger and a string size limit.
//
// Decode failures are ordinary error values (ErrMalformed, ErrShort,
// ErrTooLarge, *RangeError), surfaced synchronously and never retried.
// Translating a failure into a protocol decision - dropping the packet or
// closing the connection - is the caller's job; the codec never substitutes
// a default.
package mcwire
