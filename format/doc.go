// Package format names the document formats that can be annotated.
//
//	f, err := format.FromPath("config.toml")  // TOMLFormat
//	f, err = format.ParseFormat("yaml")       // YAMLFormat
package format
