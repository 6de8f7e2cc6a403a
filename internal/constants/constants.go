package constants

import "time"

// Mount-related constants
const (
	// SourceMountPoint is where the host source directory appears inside
	// the helper container. The mount is read-only.
	SourceMountPoint = "/host"

	// VolumeMountPoint is where the named volume appears inside the
	// helper container. The mount is read-write.
	VolumeMountPoint = "/volume"
)

// Runtime-related constants
const (
	// DefaultRuntime is the container runtime binary invoked for every
	// helper process.
	DefaultRuntime = "docker"

	// DefaultImage is the helper image. It only needs to carry cp, rm,
	// ls and a shell.
	DefaultImage = "busybox:stable"

	// DefaultUser is the user the helper process runs as. Files created
	// in the volume are owned by this user, so volumes populated with
	// the default stay readable by any later consumer.
	DefaultUser = "root"

	// ContainerNamePrefix prefixes the unique name given to each helper
	// container, keeping them identifiable in `docker ps` output.
	ContainerNamePrefix = "volfs-"

	// PingTimeout bounds the daemon reachability probe. The helper run
	// itself is never bounded; a terminal session lives as long as the
	// user keeps it open.
	PingTimeout = 30 * time.Second
)

// Environment variables
const (
	// EnvImage overrides the helper image.
	EnvImage = "VOLFS_IMAGE"

	// EnvUser overrides the helper user.
	EnvUser = "VOLFS_USER"

	// EnvRuntime overrides the container runtime binary.
	EnvRuntime = "VOLFS_RUNTIME"

	// EnvConfig points at a settings file, like --config.
	EnvConfig = "VOLFS_CONFIG"

	// EnvLogLevel overrides the diagnostic level when neither -v nor -q
	// is given. Accepts zerolog level names.
	EnvLogLevel = "VOLFS_LOG_LEVEL"
)

// Settings file locations
const (
	// LocalConfigFile is looked up in the working directory first.
	LocalConfigFile = ".volfs.toml"

	// UserConfigDir is the directory under os.UserConfigDir holding the
	// per-user settings file.
	UserConfigDir = "volfs"

	// UserConfigFile is the per-user settings file name.
	UserConfigFile = "config.toml"
)

// Exit codes
const (
	// ExitOK is the status for a fully successful invocation.
	ExitOK = 0

	// ExitUsage is the status for arguments that violate the command
	// contract. It matches EX_USAGE from sysexits.h.
	ExitUsage = 64

	// ExitInfrastructure is the status when no helper process could run
	// at all. It matches the code `docker run` reserves for its own
	// failures, so it can never collide with a helper exit code.
	ExitInfrastructure = 125
)
