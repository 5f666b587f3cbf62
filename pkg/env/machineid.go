package env

import (
	"fmt"

	"github.com/denisbrodbeck/machineid"
)

// AppID salts the machine ID so it is not exposed on the network.
const AppID = "uwb.go"

// DeviceName derives a default device name from the machine ID.
func DeviceName() string {
	id, err := machineid.ProtectedID(AppID)
	if err != nil || len(id) < 8 {
		return "uwb0"
	}
	return fmt.Sprintf("uwb-%s", id[:8])
}
