package api

import "time"

const DEFAULT_MAX_FORM_SIZE_BYTES = 64 * 1024

type Configuration struct {
	Env                 string
	AppName             string
	AppVersion          string
	Port                string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	MaxFormSizeBytes    int64
	EnablePrometheus    bool
}
