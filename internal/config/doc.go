// Package config provides configuration types and loading for gsmdata.
package config
