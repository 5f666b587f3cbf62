package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/sim"
	"github.com/robotalks/uwb.go/pkg/uci"
)

func TestRemoteController(t *testing.T) {
	ctrl := sim.New()
	server := httptest.NewServer(Handler(ctrl))
	defer server.Close()

	_, err := New("tcp://" + server.Listener.Addr().String())
	require.Error(t, err)
	client, err := New("ws" + strings.TrimPrefix(server.URL, "http"))
	require.NoError(t, err)

	events := make(chan hal.Event, 4)
	pkts := make(chan []byte, 16)
	require.NoError(t, client.Open(func(ev hal.Event, err error) {
		events <- ev
	}, func(pkt []byte) {
		pkts <- pkt
	}))
	require.Equal(t, hal.EventOpenComplete, <-events)

	recv := func() *uci.Message {
		select {
		case pkt := <-pkts:
			msg, err := uci.ParsePacket(pkt)
			require.NoError(t, err)
			return msg
		case <-time.After(time.Second):
			t.Fatal("no packet")
			return nil
		}
	}
	ntf := recv()
	require.Equal(t, uci.MTNotification, ntf.MT)
	require.Equal(t, uci.OIDCoreDeviceStatus, ntf.OID)

	cmd, err := uci.EncodePacket(uci.MTCommand, uci.GIDCore, uci.OIDCoreGetDeviceInfo, false, nil)
	require.NoError(t, err)
	require.NoError(t, client.Write(cmd))
	rsp := recv()
	require.Equal(t, uci.MTResponse, rsp.MT)
	info, err := uci.ParseDeviceInfo(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, ctrl.Info.VendorInfo, info.VendorInfo)

	require.NoError(t, client.Close())
	require.Equal(t, hal.EventCloseComplete, <-events)
	require.Eventually(t, func() bool {
		return ctrl.Open(func(hal.Event, error) {}, func([]byte) {}) == nil
	}, time.Second, 10*time.Millisecond)
}
