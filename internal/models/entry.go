// Package models defines the raw and canonical shapes of a log record.
package models

import (
	"bytes"
	"encoding/json"
	"sort"

	"logscrub/internal/literal"
)

// Field names of the fixed raw schema.
const (
	FieldLogID     = "log_id"
	FieldTimestamp = "timestamp"
	FieldUserID    = "user_id"
	FieldPlatform  = "device_platform"
	FieldEventType = "event_type"
	FieldDuration  = "session_duration_sec"
)

// knownFields is the canonical field order, used for stable JSON dumps.
var knownFields = []string{
	FieldLogID,
	FieldTimestamp,
	FieldUserID,
	FieldPlatform,
	FieldEventType,
	FieldDuration,
}

// RawEntry is one log record as found in the source, before any cleaning.
// Fields may be absent entirely, not merely null.
type RawEntry map[string]literal.Value

// Field returns the named field and whether it was present in the source.
func (e RawEntry) Field(name string) (literal.Value, bool) {
	v, ok := e[name]
	return v, ok
}

// MarshalJSON renders the entry with known fields first, in canonical order,
// then any extra fields sorted by name.
func (e RawEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	wrote := 0
	write := func(name string, v literal.Value) error {
		if wrote > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(val)
		wrote++
		return nil
	}

	for _, name := range knownFields {
		if v, ok := e[name]; ok {
			if err := write(name, v); err != nil {
				return nil, err
			}
		}
	}

	var extras []string
	for name := range e {
		known := false
		for _, k := range knownFields {
			if name == k {
				known = true
				break
			}
		}
		if !known {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		if err := write(name, e[name]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Platform is the closed device-platform enumeration.
type Platform string

// Canonical platforms.
const (
	PlatformAndroid Platform = "Android"
	PlatformIOS     Platform = "iOS"
	PlatformWeb     Platform = "Web"
	PlatformOther   Platform = "Other"
)

// DeviceType is the device-class enumeration derived from the platform.
type DeviceType string

// Device classes.
const (
	DeviceMobile  DeviceType = "Mobile"
	DeviceDesktop DeviceType = "Desktop"
	DeviceOther   DeviceType = "Other"
)

// DeviceType derives the device class. It is a pure function of the
// canonical platform.
func (p Platform) DeviceType() DeviceType {
	switch p {
	case PlatformAndroid, PlatformIOS:
		return DeviceMobile
	case PlatformWeb:
		return DeviceDesktop
	default:
		return DeviceOther
	}
}

// CleanEntry is a fully normalized log record. Every field holds a single
// closed representation.
type CleanEntry struct {
	LogID              string     `json:"log_id"`
	Timestamp          string     `json:"timestamp"`
	UserID             string     `json:"user_id"`
	DeviceType         DeviceType `json:"device_type"`
	DevicePlatform     Platform   `json:"device_platform"`
	EventType          string     `json:"event_type"`
	SessionDurationSec int        `json:"session_duration_sec"`
}
