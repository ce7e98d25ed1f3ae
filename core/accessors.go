package core

import "encoding/binary"

// Get returns the raw bytes stored for key or nil when the key is absent.
func Get(s Session, key string) []byte {
	v, ok := s.TryGetValue(key)
	if !ok {
		return nil
	}
	return v
}

// SetString stores value as UTF-8 bytes.
func SetString(s Session, key, value string) {
	s.Set(key, []byte(value))
}

// GetString decodes the UTF-8 value stored for key.
func GetString(s Session, key string) (string, bool) {
	v, ok := s.TryGetValue(key)
	if !ok {
		return "", false
	}
	return string(v), true
}

// SetInt32 stores value as 4 big-endian two's complement bytes.
func SetInt32(s Session, key string, value int32) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(value))
	s.Set(key, buf)
}

// GetInt32 decodes a value written by SetInt32. Values shorter than 4 bytes
// are reported as missing.
func GetInt32(s Session, key string) (int32, bool) {
	v, ok := s.TryGetValue(key)
	if !ok || len(v) < 4 {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(v)), true
}
