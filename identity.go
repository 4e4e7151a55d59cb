package execlogger

import (
	"os"
	"os/user"
	"path/filepath"
)

// unknownIdentity is substituted for any identity field whose lookup fails.
// Lookup failures never propagate to the caller.
const unknownIdentity = "Unknown"

// IdentitySource resolves the process and environment identity recorded in
// log messages. The default implementation queries the operating system; a
// fake can be injected through NewConfigWithIdentity for tests.
type IdentitySource interface {
	ExecutableName() (string, error)
	Hostname() (string, error)
	Username() (string, error)
}

// systemIdentity resolves identity from the running process and OS.
type systemIdentity struct{}

func (systemIdentity) ExecutableName() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Base(path), nil
}

func (systemIdentity) Hostname() (string, error) {
	return os.Hostname()
}

func (systemIdentity) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// resolveIdentity performs the one-time lookups for a new Config. The user
// name is prefixed with "DOMAIN\" when the USERDOMAIN environment variable is
// set and the user lookup itself succeeds.
func resolveIdentity(src IdentitySource) (exeName, systemName, userName string) {
	exeName, err := src.ExecutableName()
	if err != nil {
		exeName = unknownIdentity
	}

	systemName, err = src.Hostname()
	if err != nil {
		systemName = unknownIdentity
	}

	userName, err = src.Username()
	if err != nil {
		userName = unknownIdentity
	} else if domain := os.Getenv("USERDOMAIN"); domain != "" {
		userName = domain + `\` + userName
	}

	return exeName, systemName, userName
}
