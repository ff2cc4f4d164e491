package airutil

import (
	"fmt"
	"os"

	"github.com/drone/envsubst"
)

const (
	EnvFullName = "DEBFULLNAME"
	EnvEmail    = "DEBEMAIL"
)

func ExpandEnv(s string) string {
	val, _ := envsubst.EvalEnv(s)
	return val
}

// Maintainer returns the maintainer identity the way the Debian tooling
// derives it from the environment. It returns an empty string if neither
// variable is set.
func Maintainer() string {
	name := os.Getenv(EnvFullName)
	email := os.Getenv(EnvEmail)
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case email != "":
		return fmt.Sprintf("<%s>", email)
	default:
		return name
	}
}
