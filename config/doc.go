// SPDX-License-Identifier: MIT
// Package: gfp/config

// Package config loads pipeline settings for the gfp command.
//
// Sources, lowest priority first:
//  1. Default(): the documented numeric defaults.
//  2. A YAML file passed to Load (optional).
//  3. GFP_* environment variables.
//
// The merged Config is validated with struct tags before use; MetricOptions
// and Logger turn it into values the gfp pipeline accepts.
package config
