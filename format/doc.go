// Package format enumerates the serialization formats the toolkit reads and
// writes: XML and binary property lists on the input side, plus JSON, YAML
// and CBOR renderings of decoded output.
//
// # Related Packages
//
//   - github.com/nskeyed-format/go-nskeyed/parse - Parse plist bytes to IR
//   - github.com/nskeyed-format/go-nskeyed/encode - Encode IR to any format
package format
