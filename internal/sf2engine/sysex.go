package sf2engine

import "encoding/base64"

// decodeSysExPath decodes the base64-url payload carried by a load-and-select
// SysEx frame (F0 7E 00 bb pp <base64-url> F7) into the path it names.
// sf2midi.DecodeSysExLoad deliberately leaves this encoding's decoding to the
// caller (spec §1); the engine is that caller.
func decodeSysExPath(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", errEmptyPayload
	}
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(string(payload))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
