package env

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uwb.go/pkg/sim"
)

func TestNewHAL(t *testing.T) {
	testCases := []struct {
		url  string
		fail bool
	}{
		{url: "sim:"},
		{url: "sim://"},
		{url: "serial:///dev/ttyUSB0?baud=921600"},
		{url: "serial:COM3"},
		{url: "spi:///dev/spidev0.0?irq=GPIO24"},
		{url: "ws://localhost:8080/uci"},
		{url: "wss://localhost/uci"},
		{url: "usb://x", fail: true},
		{url: "serial:///dev/ttyUSB0?baud=x", fail: true},
		{url: "%zz", fail: true},
	}
	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			conf := NewConfig()
			conf.HALURL = tc.url
			h, err := conf.NewHAL()
			if tc.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestNewDeviceSim(t *testing.T) {
	conf := NewConfig()
	conf.HALURL = "sim:"
	h, err := conf.NewHAL()
	require.NoError(t, err)
	_, ok := h.(*sim.Controller)
	require.True(t, ok)

	dev, err := conf.NewDevice()
	require.NoError(t, err)
	require.NotNil(t, dev)
}

func TestNewQueue(t *testing.T) {
	conf := NewConfig()
	conf.Name = "uwb-test"
	conf.MQTTBrokerURL = ""
	q, err := conf.NewQueue()
	require.NoError(t, err)
	require.Nil(t, q)

	conf.MQTTBrokerURL = "mqtt://localhost:1883/uwb/"
	q, err = conf.NewQueue()
	require.NoError(t, err)
	require.Equal(t, "uwb/", q.TopicPrefix)

	conf.MQTTBrokerURL = "ftp://localhost"
	_, err = conf.NewQueue()
	require.Error(t, err)
}

func TestDeviceName(t *testing.T) {
	name := DeviceName()
	require.True(t, name == "uwb0" || strings.HasPrefix(name, "uwb-"), name)
}
