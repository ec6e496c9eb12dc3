// Package config provides configuration loading, merging, and validation
// facilities for the vaultshare SDK.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources only fill fields the earlier ones left unset):
//  1. Environment variables
//  2. Built-in defaults
//
// The main entry point is [GetSDKConfig], which returns the merged and
// validated configuration view consumed by the SDK composition root.
package config
