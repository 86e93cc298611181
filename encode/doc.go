// Package encode renders decoded entries as text, JSON or YAML.
//
// # Usage
//
//	// Human readable text, colored
//	err := encode.Encode(entry, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// One JSON object per line
//	err := encode.Encode(entry, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// The text rendering is for reading and diffing; it is not the record
// syntax and cannot be decoded again.
package encode
