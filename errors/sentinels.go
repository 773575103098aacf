package errors

// Sentinel patterns used with Is()/Has() throughout the emulation core. A
// pattern is just the format string passed to Errorf() - storing them here
// keeps every package referring to the same string rather than inventing
// typos independently.
const (
	// memory
	BadROMSize        = "bad rom image size: %s (%d bytes)"
	UnmappedAddress   = "unmapped address: %#04x"
	NoROMLoaded        = "no rom image loaded for %s"

	// cpu6502
	UnimplementedOpcode = "unimplemented opcode: %#02x"
	BRKEncountered       = "BRK encountered at %#04x"

	// iec / drive
	DeviceNotPresent = "iec device %d not present"
	DriveNotReady    = "drive not ready: %s"
	BadJobCode       = "unrecognised job code: %#02x"
	GCRDecodeError   = "invalid GCR nibble group at track %d sector %d"

	// disk images
	UnsupportedDiskFormat = "unsupported disk image format: %s"
	BadDiskImageSize      = "bad disk image size: %s (%d bytes)"
	TrackOutOfRange       = "track out of range: %d"
	SectorOutOfRange      = "sector out of range: track %d sector %d"

	// snapshot
	BadSnapshotHeader  = "not a snapshot file: %s"
	BadSnapshotVersion = "unsupported snapshot version: %d"

	// prefs
	NoPrefsFile = "no prefs file: %s"

	// machine
	NotPaused = "operation requires the machine to be paused: %s"
)
