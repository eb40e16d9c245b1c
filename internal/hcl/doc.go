// Package hcl provides the HCL implementation of config.Loader. It parses
// catalog files, decodes them into the schema structs and translates those
// into the format-agnostic config.Model.
package hcl
