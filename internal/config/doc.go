// Package config defines the format-agnostic catalog model and the Loader
// interface that concrete file formats implement.
//
// The `config.Model` is the single input of catalog.Build. Concrete loaders,
// such as the HCL and YAML ones, live in separate packages and only ever
// produce a Model; they know nothing about parsing requisite text.
package config
