package driver

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_InstallsDriverOnce(t *testing.T) {
	Register()
	Register()

	found := false
	for _, name := range sql.Drivers() {
		if name == DriverName {
			found = true
		}
	}
	require.True(t, found)
}
